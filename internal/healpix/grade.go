package healpix

import (
	"fmt"
	"math"
)

// Reorder converts a full map between orderings. ringToNest selects
// the direction.
func Reorder(values []float64, nside int, ringToNest bool) []float64 {
	out := make([]float64, len(values))
	for pix := range values {
		if ringToNest {
			out[RingToNest(nside, pix)] = values[pix]
		} else {
			out[NestToRing(nside, pix)] = values[pix]
		}
	}
	return out
}

// UDGrade regrids a RING-ordered map to another resolution.
// Degrading averages child pixels, skipping Unseen values; a parent
// whose children are all Unseen stays Unseen. Upgrading copies the
// parent value into every child. Callers that carry NaN must swap it
// for Unseen first: NaN would otherwise poison every average it
// touches. The result is RING-ordered.
func UDGrade(values []float64, nsideOut int) ([]float64, error) {
	nsideIn, err := NpixToNside(len(values))
	if err != nil {
		return nil, err
	}
	if !ValidNside(nsideOut) {
		return nil, fmt.Errorf("healpix: invalid target nside %d", nsideOut)
	}
	if nsideIn == nsideOut {
		out := make([]float64, len(values))
		copy(out, values)
		return out, nil
	}

	nested := Reorder(values, nsideIn, true)
	var graded []float64
	if nsideOut < nsideIn {
		ratio := (nsideIn / nsideOut) * (nsideIn / nsideOut)
		graded = make([]float64, Npix(nsideOut))
		for parent := range graded {
			sum, n := 0.0, 0
			for child := parent * ratio; child < (parent+1)*ratio; child++ {
				if nested[child] != Unseen && !math.IsNaN(nested[child]) {
					sum += nested[child]
					n++
				}
			}
			if n == 0 {
				graded[parent] = Unseen
			} else {
				graded[parent] = sum / float64(n)
			}
		}
	} else {
		ratio := (nsideOut / nsideIn) * (nsideOut / nsideIn)
		graded = make([]float64, Npix(nsideOut))
		for child := range graded {
			graded[child] = nested[child/ratio]
		}
	}
	return Reorder(graded, nsideOut, false), nil
}

// UDGradeNaN regrids like UDGrade but treats NaN as the missing-value
// marker on both sides, substituting the Unseen sentinel around the
// regrid so NaN never participates in an average.
func UDGradeNaN(values []float64, nsideOut int) ([]float64, error) {
	masked := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			masked[i] = Unseen
		} else {
			masked[i] = v
		}
	}
	graded, err := UDGrade(masked, nsideOut)
	if err != nil {
		return nil, err
	}
	for i, v := range graded {
		if v == Unseen {
			graded[i] = math.NaN()
		}
	}
	return graded, nil
}
