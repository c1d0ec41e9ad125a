// Package nmeafix turns NMEA 0183 RMC and GGA sentences into positions.
package nmeafix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
	log "github.com/sirupsen/logrus"

	"github.com/gwbres/dms-coordinates/coords"
)

var (
	ErrNoFix               = errors.New("no fix")
	ErrUnsupportedSentence = errors.New("unsupported sentence")
)

// Parse decodes one sentence. RMC fixes have no altitude, GGA fixes carry
// the antenna altitude above mean sea level.
func Parse(line string) (coords.Position, error) {
	sentence, err := nmea.Parse(strings.TrimSpace(line))
	if err != nil {
		return coords.Position{}, err
	}

	switch sentence.DataType() {
	case nmea.TypeRMC:
		m := sentence.(nmea.RMC)
		if m.Validity != nmea.ValidRMC {
			return coords.Position{}, fmt.Errorf("RMC validity %q: %w", m.Validity, ErrNoFix)
		}
		return coords.PositionFromDDeg(m.Latitude, m.Longitude, nil), nil
	case nmea.TypeGGA:
		m := sentence.(nmea.GGA)
		if m.FixQuality == nmea.Invalid {
			return coords.Position{}, fmt.Errorf("GGA fix quality %q: %w", m.FixQuality, ErrNoFix)
		}
		return coords.PositionFromDDeg(m.Latitude, m.Longitude, coords.Alt(m.Altitude)), nil
	}
	return coords.Position{}, fmt.Errorf("%s: %w", sentence.DataType(), ErrUnsupportedSentence)
}

// Scan reads sentences from r and calls fn for every fix. Noise, partial
// sentences and sentences without a fix are skipped. Scan stops at the
// first error returned by fn.
func Scan(r io.Reader, fn func(coords.Position) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "$") {
			continue
		}

		pos, err := Parse(line)
		if err != nil {
			log.WithFields(log.Fields{"line": line}).Debugf("skipping sentence: %v", err)
			continue
		}
		if err := fn(pos); err != nil {
			return err
		}
	}
	return scanner.Err()
}
