package healpix

import (
	"math"
	"sort"
)

// SparseMap holds values for a subset of pixels at one resolution,
// indexed in NEST ordering (so degrading stays a local operation).
type SparseMap struct {
	nside  int
	pixels map[int]float64
}

// NewSparseMap returns an empty sparse map at the given nside.
func NewSparseMap(nside int) *SparseMap {
	return &SparseMap{nside: nside, pixels: make(map[int]float64)}
}

// Nside returns the map resolution.
func (m *SparseMap) Nside() int { return m.nside }

// Set stores a value for a NEST pixel index.
func (m *SparseMap) Set(pix int, value float64) { m.pixels[pix] = value }

// Value returns the value for a NEST pixel index and whether it is set.
func (m *SparseMap) Value(pix int) (float64, bool) {
	v, ok := m.pixels[pix]
	return v, ok
}

// ValidPixels returns the set NEST pixel indices in ascending order.
func (m *SparseMap) ValidPixels() []int {
	pix := make([]int, 0, len(m.pixels))
	for p := range m.pixels {
		pix = append(pix, p)
	}
	sort.Ints(pix)
	return pix
}

// Len returns the number of set pixels.
func (m *SparseMap) Len() int { return len(m.pixels) }

// Degrade returns a new sparse map at a coarser nside, averaging the
// set children of each parent pixel.
func (m *SparseMap) Degrade(nsideOut int) *SparseMap {
	if nsideOut >= m.nside {
		return m
	}
	ratio := (m.nside / nsideOut) * (m.nside / nsideOut)
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for pix, v := range m.pixels {
		if math.IsNaN(v) {
			continue
		}
		parent := pix / ratio
		sums[parent] += v
		counts[parent]++
	}
	out := NewSparseMap(nsideOut)
	for parent, sum := range sums {
		out.Set(parent, sum/float64(counts[parent]))
	}
	return out
}

// SplitByResolution splits a RING-ordered map into a coarse component
// covering regions where every fine pixel within a coarse pixel shares
// one value, and a fine component with everything else. Rendering the
// coarse component as large patches and only the remainder at full
// resolution keeps boundary tables small for mostly-uniform maps.
func SplitByResolution(values []float64, nsideLow int) (high, low *SparseMap, err error) {
	nsideHigh, err := NpixToNside(len(values))
	if err != nil {
		return nil, nil, err
	}

	lowVals, err := UDGradeNaN(values, nsideLow)
	if err != nil {
		return nil, nil, err
	}
	rev, err := UDGradeNaN(lowVals, nsideHigh)
	if err != nil {
		return nil, nil, err
	}

	// A coarse pixel is usable when every fine pixel under it survives
	// the round trip through the coarse resolution.
	matches := make([]float64, len(values))
	for i := range values {
		same := values[i] == rev[i] || (math.IsNaN(values[i]) && math.IsNaN(rev[i]))
		if same {
			matches[i] = 1
		}
	}
	matchLow, err := UDGrade(matches, nsideLow)
	if err != nil {
		return nil, nil, err
	}

	high = NewSparseMap(nsideHigh)
	low = NewSparseMap(nsideLow)
	ratio := (nsideHigh / nsideLow) * (nsideHigh / nsideLow)
	for lowPix, usable := range matchLow {
		lowNest := RingToNest(nsideLow, lowPix)
		if usable == 1 {
			if v := lowVals[lowPix]; !math.IsNaN(v) {
				low.Set(lowNest, v)
			}
			continue
		}
		for child := lowNest * ratio; child < (lowNest+1)*ratio; child++ {
			v := values[NestToRing(nsideHigh, child)]
			if !math.IsNaN(v) {
				high.Set(child, v)
			}
		}
	}
	return high, low, nil
}
