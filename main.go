package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/cloudflare/cloudflare-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/gwbres/dms-coordinates/citadel"
	"github.com/gwbres/dms-coordinates/coords"
	"github.com/gwbres/dms-coordinates/locrecord"
	"github.com/gwbres/dms-coordinates/waypoint"
)

func main() {
	// Load ENV vars
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file, using the environment only")
	}

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	// Get the list of cities to publish
	cities, err := citadel.Parse(cfg.CitiesFile)
	if err != nil {
		log.Fatal(err)
	}

	if err := writeReport(os.Stdout, cfg, cities); err != nil {
		log.Fatal(err)
	}

	if cfg.GPXDir != "" {
		for _, c := range cities {
			path := filepath.Join(cfg.GPXDir, c.Slug+".gpx")
			if err := waypoint.WriteGPX(path, c.Position()); err != nil {
				log.Fatal(err)
			}
			log.WithFields(log.Fields{"slug": c.Slug, "path": path}).Debug("Wrote waypoint")
		}
	}

	if cfg.Token == "" {
		log.Infof("CF_TOKEN not set, skipping LOC records")
		return
	}

	// Connect to CloudFlare with token
	api, err := cloudflare.NewWithAPIToken(cfg.Token)
	if err != nil {
		log.Fatal(err)
	}

	syncer := locrecord.NewSyncer(api, locrecord.Config{
		ZoneID:         cfg.ZoneID,
		Domain:         cfg.Domain,
		DryRun:         cfg.DryRun,
		RequestsPerSec: cfg.RequestsPerS,
	}, log.StandardLogger())

	counter, err := syncer.Sync(context.Background(), sites(cities))
	if err != nil {
		log.Fatal(err)
	}

	log.WithFields(log.Fields{
		"passed":   counter.PassCount,
		"created":  counter.NewCount,
		"modified": counter.ModCount,
		"deleted":  counter.DelCount,
	}).Infof("Done ✨")
}

func sites(cities []*citadel.City) []locrecord.Site {
	out := make([]locrecord.Site, 0, len(cities))
	for _, c := range cities {
		out = append(out, locrecord.Site{
			Slug:     c.Slug,
			Position: c.Position(),
			Size:     c.Diameter,
		})
	}
	return out
}

type reportEntry struct {
	City       string          `json:"city" yaml:"city"`
	Slug       string          `json:"slug" yaml:"slug"`
	DMS        string          `json:"dms" yaml:"dms"`
	Position   coords.Position `json:"position" yaml:"position"`
	DistanceKm *float64        `json:"distance_km,omitempty" yaml:"distance_km,omitempty"`
	Azimuth    *float64        `json:"azimuth,omitempty" yaml:"azimuth,omitempty"`
}

// writeReport prints every city in D°M'S", with distance and azimuth from
// the reference position when one is configured.
func writeReport(w io.Writer, cfg config, cities []*citadel.City) error {
	entries := make([]reportEntry, 0, len(cities))
	for _, c := range cities {
		pos := c.Position()
		e := reportEntry{
			City:     c.City,
			Slug:     c.Slug,
			DMS:      pos.String(),
			Position: pos,
		}
		if cfg.Reference != nil {
			km := cfg.Reference.Distance(pos) / 1000
			az := cfg.Reference.Azimuth(pos)
			e.DistanceKm, e.Azimuth = &km, &az
		}
		entries = append(entries, e)
	}

	if cfg.ReportFormat == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}
