package catalog

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
)

// Star is a catalog point source. RA and Decl are ICRS degrees.
type Star struct {
	RA        float64
	Decl      float64
	Magnitude float64
	Name      string
}

// LoadStars reads a point shapefile of catalog sources. Longitude is
// RA and latitude is declination. The magnitude and name come from the
// attribute table when present; sources without a magnitude field get
// NaN and survive any magnitude cut.
func LoadStars(path string) ([]Star, error) {
	shape, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	defer shape.Close()

	magIdx, nameIdx := -1, -1
	for i, field := range shape.Fields() {
		// Field names in shapefiles are fixed-size byte arrays padded
		// with nulls.
		fieldName := strings.TrimRight(string(field.Name[:]), "\x00 ")
		switch fieldName {
		case "MAG", "VMAG", "MAGNITUDE":
			if magIdx < 0 {
				magIdx = i
			}
		case "NAME", "NAMEASCII", "PROPER":
			if nameIdx < 0 {
				nameIdx = i
			}
		}
	}

	stars := make([]Star, 0)
	for shape.Next() {
		n, p := shape.Shape()
		point, ok := p.(*shp.Point)
		if !ok {
			continue
		}

		star := Star{RA: point.X, Decl: point.Y, Magnitude: math.NaN()}
		if magIdx >= 0 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(shape.ReadAttribute(n, magIdx)), 64); err == nil {
				star.Magnitude = v
			}
		}
		if nameIdx >= 0 {
			star.Name = strings.TrimSpace(shape.ReadAttribute(n, nameIdx))
		}
		stars = append(stars, star)
	}
	return stars, nil
}

// BrighterThan keeps stars at or brighter than magLimit. Smaller
// magnitudes are brighter; NaN magnitudes always pass.
func BrighterThan(stars []Star, magLimit float64) []Star {
	kept := make([]Star, 0, len(stars))
	for _, s := range stars {
		if math.IsNaN(s.Magnitude) || s.Magnitude <= magLimit {
			kept = append(kept, s)
		}
	}
	return kept
}

// LoadMapValues reads a whole-sky healpix map from a text file of
// whitespace-separated pixel values in RING order. The tokens "nan"
// and "unseen" (any case) mark missing pixels as NaN.
func LoadMapValues(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []float64
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<22)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := scanner.Text()
		switch strings.ToLower(tok) {
		case "nan", "unseen":
			values = append(values, math.NaN())
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("map value %d: %w", len(values), err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
