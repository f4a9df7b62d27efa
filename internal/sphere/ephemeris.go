package sphere

import "math"

// Low-precision solar and lunar positions, good to a few arcminutes
// for the sun and a fraction of a degree for the moon. Plenty for
// placing markers on a whole-sky map.

func sind(d float64) float64 { return math.Sin(d * math.Pi / 180) }
func cosd(d float64) float64 { return math.Cos(d * math.Pi / 180) }

// obliquity of the ecliptic in degrees.
func obliquity(n float64) float64 { return 23.439 - 0.0000004*n }

func eclipticToEq(lonDeg, latDeg, n float64) (raDeg, decDeg float64) {
	eps := obliquity(n) * math.Pi / 180
	lon := lonDeg * math.Pi / 180
	lat := latDeg * math.Pi / 180

	x := math.Cos(lat) * math.Cos(lon)
	y := math.Cos(eps)*math.Cos(lat)*math.Sin(lon) - math.Sin(eps)*math.Sin(lat)
	z := math.Sin(eps)*math.Cos(lat)*math.Sin(lon) + math.Cos(eps)*math.Sin(lat)

	return VecToAng(Vec{X: x, Y: y, Z: z})
}

// SunPosition returns the equatorial coordinates of the sun in degrees
// at the given MJD.
func SunPosition(mjd float64) (raDeg, decDeg float64) {
	n := mjd - J2000
	meanLon := math.Mod(280.460+0.9856474*n, 360)
	meanAnom := math.Mod(357.528+0.9856003*n, 360)
	lon := meanLon + 1.915*sind(meanAnom) + 0.020*sind(2*meanAnom)
	return eclipticToEq(lon, 0, n)
}

// MoonPosition returns the equatorial coordinates of the moon in
// degrees at the given MJD.
func MoonPosition(mjd float64) (raDeg, decDeg float64) {
	n := mjd - J2000
	lon := 218.32 + 13.176396*n +
		6.29*sind(134.9+13.064993*n) -
		1.27*sind(259.2-0.185195*n) +
		0.66*sind(235.7+24.381421*n) +
		0.21*sind(269.9+26.014310*n) -
		0.19*sind(357.5+0.985600*n) -
		0.11*sind(186.6+966.404605*n)
	lat := 5.13*sind(93.3+13.229350*n) +
		0.28*sind(228.2+25.855*n) -
		0.28*sind(318.3+1.115*n) -
		0.17*sind(217.6-0.880*n)
	return eclipticToEq(math.Mod(lon, 360), lat, n)
}
