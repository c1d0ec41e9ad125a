package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/gwbres/dms-coordinates/coords"
)

type config struct {
	CitiesFile   string
	Token        string
	ZoneID       string
	Domain       string
	DryRun       bool
	RequestsPerS float64
	LogLevel     log.Level
	ReportFormat string
	GPXDir       string
	// Reference is the origin of the distance/azimuth report, if any.
	Reference *coords.Position
}

// loadConfig reads the settings from the environment, see .env.example.
func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		CitiesFile:   getenv("CITIES_FILE"),
		Token:        getenv("CF_TOKEN"),
		ZoneID:       getenv("CF_ZONE"),
		Domain:       getenv("LOC_DOMAIN"),
		DryRun:       getenv("RUN_TYPE") != "full",
		RequestsPerS: 4,
		LogLevel:     log.InfoLevel,
		ReportFormat: getenv("REPORT_FORMAT"),
		GPXDir:       getenv("GPX_DIR"),
	}
	if cfg.CitiesFile == "" {
		cfg.CitiesFile = "../cities.csv"
	}
	if cfg.Domain == "" {
		cfg.Domain = "isfound.at"
	}
	if cfg.ReportFormat == "" {
		cfg.ReportFormat = "yaml"
	}
	if cfg.ReportFormat != "yaml" && cfg.ReportFormat != "json" {
		return config{}, fmt.Errorf("REPORT_FORMAT must be yaml or json, got %q", cfg.ReportFormat)
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			return config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if v := getenv("CF_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			return config{}, fmt.Errorf("CF_RPS must be a positive number, got %q", v)
		}
		cfg.RequestsPerS = rps
	}

	if cfg.Token != "" && cfg.ZoneID == "" {
		return config{}, fmt.Errorf("CF_ZONE is required with CF_TOKEN")
	}

	lat, lon := getenv("REFERENCE_LAT"), getenv("REFERENCE_LON")
	if lat != "" || lon != "" {
		la, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return config{}, fmt.Errorf("REFERENCE_LAT: %w", err)
		}
		lo, err := strconv.ParseFloat(lon, 64)
		if err != nil {
			return config{}, fmt.Errorf("REFERENCE_LON: %w", err)
		}
		ref := coords.PositionFromDDeg(la, lo, nil)
		cfg.Reference = &ref
	}

	return cfg, nil
}
