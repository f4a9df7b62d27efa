// Package healpix implements the subset of the HEALPix sphere
// pixelization needed to draw pixelized sky maps: index conversions
// between the RING and NEST orderings, pixel centers, pixel boundary
// vertices, and resolution regridding.
package healpix

import (
	"fmt"
	"math"

	"asciisky/internal/sphere"
)

// Unseen is the sentinel for missing pixels, matching the HEALPix
// convention so maps regridded elsewhere round-trip cleanly.
const Unseen = -1.6375e30

// Face layout constants of the HEALPix sphere: ring index and phi
// offset of the corner of each of the 12 base faces.
var (
	jrll = [12]int{2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4}
	jpll = [12]int{1, 3, 5, 7, 0, 2, 4, 6, 1, 3, 5, 7}
)

// ValidNside reports whether nside is a power of two.
func ValidNside(nside int) bool {
	return nside > 0 && nside&(nside-1) == 0
}

// Npix returns the pixel count for an nside.
func Npix(nside int) int {
	return 12 * nside * nside
}

// NpixToNside returns the nside for a pixel count, or an error if the
// count does not correspond to any valid resolution.
func NpixToNside(npix int) (int, error) {
	nside := int(math.Round(math.Sqrt(float64(npix) / 12)))
	if !ValidNside(nside) || Npix(nside) != npix {
		return 0, fmt.Errorf("healpix: %d is not a valid pixel count", npix)
	}
	return nside, nil
}

// Resolution returns the approximate angular size of a pixel in
// degrees (the square root of the per-pixel solid angle).
func Resolution(nside int) float64 {
	return math.Sqrt(4*math.Pi/float64(Npix(nside))) * 180 / math.Pi
}

func order(nside int) uint {
	o := uint(0)
	for n := nside; n > 1; n >>= 1 {
		o++
	}
	return o
}

func isqrt(v int) int {
	r := int(math.Sqrt(float64(v)))
	for (r+1)*(r+1) <= v {
		r++
	}
	for r*r > v {
		r--
	}
	return r
}

// compressBits extracts the even-position bits of v.
func compressBits(v int) int {
	out, bit := 0, 0
	for v != 0 {
		out |= (v & 1) << bit
		v >>= 2
		bit++
	}
	return out
}

// spreadBits spaces the bits of v into even positions.
func spreadBits(v int) int {
	out, bit := 0, 0
	for v != 0 {
		out |= (v & 1) << bit
		v >>= 1
		bit += 2
	}
	return out
}

func nestToXYF(nside, pix int) (ix, iy, face int) {
	npface := nside * nside
	face = pix / npface
	p := pix & (npface - 1)
	return compressBits(p), compressBits(p >> 1), face
}

func xyfToNest(nside, ix, iy, face int) int {
	return face*nside*nside + spreadBits(ix) + spreadBits(iy)<<1
}

func ringToXYF(nside, pix int) (ix, iy, face int) {
	npix := Npix(nside)
	ncap := 2 * nside * (nside - 1)
	nl2 := 2 * nside

	var iring, iphi, kshift, nr int
	switch {
	case pix < ncap: // north polar cap
		iring = (1 + isqrt(1+2*pix)) >> 1
		iphi = (pix + 1) - 2*iring*(iring-1)
		kshift = 0
		nr = iring
		face = (iphi - 1) / nr
	case pix < npix-ncap: // equatorial belt
		ip := pix - ncap
		tmp := ip / (4 * nside)
		iring = tmp + nside
		iphi = ip - tmp*4*nside + 1
		kshift = (iring + nside) & 1
		nr = nside
		ire := iring - nside + 1
		irm := nl2 + 2 - ire
		ifm := (iphi - ire/2 + nside - 1) / nside
		ifp := (iphi - irm/2 + nside - 1) / nside
		switch {
		case ifp == ifm:
			face = ifp | 4
		case ifp < ifm:
			face = ifp
		default:
			face = ifm + 8
		}
	default: // south polar cap
		ip := npix - pix
		iring = (1 + isqrt(2*ip-1)) >> 1
		iphi = 4*iring + 1 - (ip - 2*iring*(iring-1))
		kshift = 0
		nr = iring
		iring = 2*nl2 - iring
		face = 8 + (iphi-1)/nr
	}

	irt := iring - jrll[face]*nside + 1
	ipt := 2*iphi - jpll[face]*nr - kshift - 1
	if ipt >= nl2 {
		ipt -= 8 * nside
	}
	ix = (ipt - irt) >> 1
	iy = (-ipt - irt) >> 1
	return ix, iy, face
}

func xyfToRing(nside, ix, iy, face int) int {
	npix := Npix(nside)
	ncap := 2 * nside * (nside - 1)
	nl4 := 4 * nside

	jr := jrll[face]*nside - ix - iy - 1
	var nr, kshift, nBefore int
	switch {
	case jr < nside:
		nr = jr
		nBefore = 2 * nr * (nr - 1)
		kshift = 0
	case jr > 3*nside:
		nr = nl4 - jr
		nBefore = npix - 2*(nr+1)*nr
		kshift = 0
	default:
		nr = nside
		nBefore = ncap + (jr-nside)*nl4
		kshift = (jr - nside) & 1
	}

	jp := (jpll[face]*nr + ix - iy + 1 + kshift) / 2
	if jp > nl4 {
		jp -= nl4
	} else if jp < 1 {
		jp += nl4
	}
	return nBefore + jp - 1
}

// RingToNest converts a RING pixel index to NEST.
func RingToNest(nside, pix int) int {
	ix, iy, face := ringToXYF(nside, pix)
	return xyfToNest(nside, ix, iy, face)
}

// NestToRing converts a NEST pixel index to RING.
func NestToRing(nside, pix int) int {
	ix, iy, face := nestToXYF(nside, pix)
	return xyfToRing(nside, ix, iy, face)
}

// xyfToLoc maps fractional in-face coordinates (x, y in [0,1]) to a
// location on the sphere expressed as (z, phi).
func xyfToLoc(x, y float64, face int) (z, phi float64) {
	jr := float64(jrll[face]) - x - y
	var nr float64
	switch {
	case jr < 1: // north polar cap
		nr = jr
		z = 1 - nr*nr/3
	case jr > 3: // south polar cap
		nr = 4 - jr
		z = nr*nr/3 - 1
	default: // equatorial
		nr = 1
		z = (2 - jr) * 2 / 3
	}

	tmp := float64(jpll[face])*nr + x - y
	if tmp < 0 {
		tmp += 8
	}
	if tmp >= 8 {
		tmp -= 8
	}
	if nr < 1e-15 {
		phi = 0
	} else {
		phi = (math.Pi / 4) * tmp / nr
	}
	return z, phi
}

func locToVec(z, phi float64) sphere.Vec {
	st := math.Sqrt(math.Max(0, (1-z)*(1+z)))
	return sphere.Vec{X: st * math.Cos(phi), Y: st * math.Sin(phi), Z: z}
}

func locToAng(z, phi float64) (raDeg, decDeg float64) {
	ra := phi * 180 / math.Pi
	if ra < 0 {
		ra += 360
	}
	return ra, math.Asin(math.Max(-1, math.Min(1, z))) * 180 / math.Pi
}

// PixToAng returns the equatorial coordinates in degrees of the center
// of a pixel.
func PixToAng(nside, pix int, nest bool) (raDeg, decDeg float64) {
	var ix, iy, face int
	if nest {
		ix, iy, face = nestToXYF(nside, pix)
	} else {
		ix, iy, face = ringToXYF(nside, pix)
	}
	z, phi := xyfToLoc((float64(ix)+0.5)/float64(nside), (float64(iy)+0.5)/float64(nside), face)
	return locToAng(z, phi)
}

// PixToVec returns the unit vector of the center of a pixel.
func PixToVec(nside, pix int, nest bool) sphere.Vec {
	var ix, iy, face int
	if nest {
		ix, iy, face = nestToXYF(nside, pix)
	} else {
		ix, iy, face = ringToXYF(nside, pix)
	}
	z, phi := xyfToLoc((float64(ix)+0.5)/float64(nside), (float64(iy)+0.5)/float64(nside), face)
	return locToVec(z, phi)
}

// AngToPix returns the RING pixel index containing the given
// equatorial coordinates in degrees.
func AngToPix(nside int, raDeg, decDeg float64) int {
	z := math.Sin(decDeg * math.Pi / 180)
	phi := raDeg * math.Pi / 180
	npix := Npix(nside)
	ncap := 2 * nside * (nside - 1)

	za := math.Abs(z)
	tt := math.Mod(phi, 2*math.Pi)
	if tt < 0 {
		tt += 2 * math.Pi
	}
	tt /= math.Pi / 2 // in [0,4)

	if za <= 2.0/3.0 { // equatorial belt
		temp1 := float64(nside) * (0.5 + tt)
		temp2 := float64(nside) * z * 0.75
		jp := int(temp1 - temp2)
		jm := int(temp1 + temp2)

		ir := nside + 1 + jp - jm
		kshift := 1 - ir&1
		ip := (jp + jm - nside + kshift + 1) >> 1
		ip %= 4 * nside
		return ncap + (ir-1)*4*nside + ip
	}

	// polar caps
	tp := tt - math.Floor(tt)
	tmp := float64(nside) * math.Sqrt(3*(1-za))
	jp := int(tp * tmp)
	jm := int((1 - tp) * tmp)

	ir := jp + jm + 1
	ip := int(tt * float64(ir))
	ip %= 4 * ir
	if z > 0 {
		return 2*ir*(ir-1) + ip
	}
	return npix - 2*ir*(ir+1) + ip
}

// Boundaries returns 4*step points along the boundary of a pixel as
// unit vectors, one edge at a time starting from the northern corner.
func Boundaries(nside, pix, step int, nest bool) []sphere.Vec {
	var ix, iy, face int
	if nest {
		ix, iy, face = nestToXYF(nside, pix)
	} else {
		ix, iy, face = ringToXYF(nside, pix)
	}

	out := make([]sphere.Vec, 4*step)
	dc := 0.5 / float64(nside)
	xc := (float64(ix) + 0.5) / float64(nside)
	yc := (float64(iy) + 0.5) / float64(nside)
	d := 1.0 / (float64(step) * float64(nside))
	for i := 0; i < step; i++ {
		fi := float64(i)
		z, phi := xyfToLoc(xc+dc-fi*d, yc+dc, face)
		out[i] = locToVec(z, phi)
		z, phi = xyfToLoc(xc-dc, yc+dc-fi*d, face)
		out[step+i] = locToVec(z, phi)
		z, phi = xyfToLoc(xc-dc+fi*d, yc-dc, face)
		out[2*step+i] = locToVec(z, phi)
		z, phi = xyfToLoc(xc+dc, yc-dc+fi*d, face)
		out[3*step+i] = locToVec(z, phi)
	}
	return out
}
