// Package citadel reads and writes the CSV list of cities to publish.
package citadel

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/gosimple/slug"

	"github.com/gwbres/dms-coordinates/coords"
)

type City struct {
	City      string  `csv:"city"`
	Slug      string  `csv:"-"`
	Latitude  float64 `csv:"lat"`
	Longitude float64 `csv:"long"`
	Country   string  `csv:"country"`
	Altitude  float64 `csv:"alt"`
	Diameter  float64 `csv:"diameter"`
}

// Position converts the decimal-degree columns of c.
func (c *City) Position() coords.Position {
	return coords.PositionFromDDeg(c.Latitude, c.Longitude, coords.Alt(c.Altitude))
}

// Parse reads the cities in filename and fills in their slugs.
func Parse(filename string) ([]*City, error) {
	citiesFile, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer citiesFile.Close()

	var cities []*City
	if err := gocsv.UnmarshalFile(citiesFile, &cities); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	for _, c := range cities {
		c.Slug = slug.Make(c.City)
	}
	return cities, nil
}

// Write stores cities in filename, replacing it.
func Write(filename string, cities []*City) error {
	citiesFile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer citiesFile.Close()

	return gocsv.MarshalFile(&cities, citiesFile)
}

// FromPosition builds a city row from pos. The altitude is 0 when unknown.
func FromPosition(name, country string, pos coords.Position, diameter float64) *City {
	lat, lon := pos.ToDDeg()
	alt := 0.0
	if pos.Altitude != nil {
		alt = *pos.Altitude
	}
	return &City{
		City:      name,
		Slug:      slug.Make(name),
		Latitude:  lat,
		Longitude: lon,
		Country:   country,
		Altitude:  alt,
		Diameter:  diameter,
	}
}
