package locrecord

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudflare/cloudflare-go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/gwbres/dms-coordinates/coords"
)

// DNSAPI is the part of *cloudflare.API the syncer uses.
type DNSAPI interface {
	DNSRecords(zoneID string, rr cloudflare.DNSRecord) ([]cloudflare.DNSRecord, error)
	CreateDNSRecord(zoneID string, rr cloudflare.DNSRecord) (*cloudflare.DNSRecordResponse, error)
	UpdateDNSRecord(zoneID, recordID string, rr cloudflare.DNSRecord) error
	DeleteDNSRecord(zoneID, recordID string) error
}

type Config struct {
	ZoneID string
	// Domain is appended to every site slug, e.g. "isfound.at".
	Domain string
	TTL    int
	// DryRun only logs the changes it would make.
	DryRun         bool
	RequestsPerSec float64
}

// Site is one named position to publish.
type Site struct {
	Slug     string
	Position coords.Position
	Size     float64
}

type Counter struct {
	NewCount  int
	ModCount  int
	DelCount  int
	PassCount int
}

func (c *Counter) New() {
	c.NewCount++
}
func (c *Counter) Modify() {
	c.ModCount++
}
func (c *Counter) Delete() {
	c.DelCount++
}
func (c *Counter) Pass() {
	c.PassCount++
}

// Syncer makes the LOC records of a zone match a list of sites: missing
// records are created, drifted ones updated and orphans deleted.
type Syncer struct {
	api     DNSAPI
	cfg     Config
	limiter *rate.Limiter
	log     log.FieldLogger
}

func NewSyncer(api DNSAPI, cfg Config, logger log.FieldLogger) *Syncer {
	if cfg.TTL == 0 {
		cfg.TTL = 120
	}
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = 4
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Syncer{
		api:     api,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		log:     logger,
	}
}

// Record builds the LOC record for site.
func (s *Syncer) Record(site Site) cloudflare.DNSRecord {
	return cloudflare.DNSRecord{
		Type: "LOC",
		Name: fmt.Sprintf("%s.%s", site.Slug, s.cfg.Domain),
		TTL:  s.cfg.TTL,
		Data: Data(site.Position, site.Size),
	}
}

func (s *Syncer) Sync(ctx context.Context, sites []Site) (Counter, error) {
	var counter Counter

	if err := s.limiter.Wait(ctx); err != nil {
		return counter, err
	}
	recs, err := s.api.DNSRecords(s.cfg.ZoneID, cloudflare.DNSRecord{Type: "LOC"})
	if err != nil {
		return counter, fmt.Errorf("list records: %w", err)
	}

	// Create a lookup of existing LOC records
	recMap := make(map[string]*cloudflare.DNSRecord)
	for i, r := range recs {
		if r.Type != "LOC" {
			continue
		}
		baseName := strings.Split(r.Name, ".")[0]
		recMap[baseName] = &recs[i]
	}

	for _, site := range sites {
		if err := s.processSite(ctx, site, recMap[site.Slug], &counter); err != nil {
			return counter, err
		}
		delete(recMap, site.Slug)
	}

	s.log.Infof("Cleaning up records")

	for slug, record := range recMap {
		siteLogger := s.log.WithFields(log.Fields{"slug": slug})
		if s.cfg.DryRun {
			siteLogger.Infof("DRY RUN: Would delete record for %s", record.Name)
		} else {
			if err := s.limiter.Wait(ctx); err != nil {
				return counter, err
			}
			if err := s.api.DeleteDNSRecord(s.cfg.ZoneID, record.ID); err != nil {
				return counter, fmt.Errorf("delete %s: %w", record.Name, err)
			}
			siteLogger.Infof("Deleted record %s", record.Name)
		}
		counter.Delete()
	}

	return counter, nil
}

func (s *Syncer) processSite(ctx context.Context, site Site, existing *cloudflare.DNSRecord, counter *Counter) error {
	siteLogger := s.log.WithFields(log.Fields{"slug": site.Slug})
	record := s.Record(site)

	if existing == nil {
		siteLogger.Debugf("No record found for %s", site.Slug)
		if s.cfg.DryRun {
			siteLogger.WithFields(log.Fields{"record": record}).Infof("DRY RUN: Would add record for %s", record.Name)
		} else {
			if err := s.limiter.Wait(ctx); err != nil {
				return err
			}
			resp, err := s.api.CreateDNSRecord(s.cfg.ZoneID, record)
			if err != nil {
				return fmt.Errorf("create %s: %w", record.Name, err)
			}
			siteLogger.WithFields(log.Fields{
				"content": resp.Result.Content,
				"data":    resp.Result.Data,
			}).Infof("Added record for %s", resp.Result.Name)
		}
		counter.New()
		return nil
	}

	local := record.Data.(map[string]interface{})
	remote, _ := existing.Data.(map[string]interface{})
	needsUpdating := compareLocations(siteLogger, local, remote)
	if len(needsUpdating) == 0 {
		siteLogger.Infof("%s is correct", site.Slug)
		counter.Pass()
		return nil
	}

	siteLogger.WithFields(log.Fields{"fields": needsUpdating}).Infof("%s needs to be updated", site.Slug)
	updated := *existing
	updated.Data = local
	if s.cfg.DryRun {
		siteLogger.WithFields(log.Fields{"record": updated}).Infof("DRY RUN: Would update record to %s", updated.Name)
	} else {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
		if err := s.api.UpdateDNSRecord(s.cfg.ZoneID, updated.ID, updated); err != nil {
			return fmt.Errorf("update %s: %w", updated.Name, err)
		}
		siteLogger.WithFields(log.Fields{"data": updated.Data}).Infof("Updated record for %s", updated.Name)
	}
	counter.Modify()
	return nil
}

// compareLocations returns the keys of local whose remote value differs.
func compareLocations(logger log.FieldLogger, local, remote map[string]interface{}) []string {
	incorrectFields := []string{}

	for k, v := range local {
		r := remote[k]
		isEq := v == r
		if !isEq {
			incorrectFields = append(incorrectFields, k)
		}

		logger.WithFields(log.Fields{
			"field":         k,
			"needsUpdating": !isEq,
			"wewant":        v,
			"wefound":       r,
		}).Debug("Testing LOC property")
	}

	return incorrectFields
}
