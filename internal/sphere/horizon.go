package sphere

import "math"

// TransformKind selects the equatorial/horizon transform flavor.
// The fast transform uses the linear sidereal expansion; the precise
// one adds the slow polynomial terms. Both share the same spherical
// triangle, so swapping kinds never changes culling behavior.
type TransformKind int

const (
	TransformFast TransformKind = iota
	TransformPrecise
)

func lstFor(mjd float64, site Site, kind TransformKind) float64 {
	if kind == TransformPrecise {
		lst := math.Mod(GMSTPrecise(mjd)+site.LongitudeDeg, 360)
		if lst < 0 {
			lst += 360
		}
		return lst
	}
	return LST(mjd, site)
}

// EqToHorizon converts equatorial coordinates (degrees) to altitude
// and azimuth (degrees, azimuth east of north) for the given time and
// site.
func EqToHorizon(raDeg, decDeg, mjd float64, site Site, kind TransformKind) (altDeg, azDeg float64) {
	lst := lstFor(mjd, site, kind)
	ha := (lst - raDeg) * math.Pi / 180
	dec := decDeg * math.Pi / 180
	lat := site.LatitudeDeg * math.Pi / 180

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	sinAlt = math.Max(-1, math.Min(1, sinAlt))
	alt := math.Asin(sinAlt)

	cosAz := (math.Sin(dec) - sinAlt*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	cosAz = math.Max(-1, math.Min(1, cosAz))
	az := math.Acos(cosAz)
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return alt * 180 / math.Pi, az * 180 / math.Pi
}

// HorizonToEq converts altitude and azimuth (degrees) to equatorial
// coordinates (degrees) for the given time and site.
func HorizonToEq(altDeg, azDeg, mjd float64, site Site, kind TransformKind) (raDeg, decDeg float64) {
	lst := lstFor(mjd, site, kind)
	alt := altDeg * math.Pi / 180
	az := azDeg * math.Pi / 180
	lat := site.LatitudeDeg * math.Pi / 180

	sinDec := math.Sin(alt)*math.Sin(lat) + math.Cos(alt)*math.Cos(lat)*math.Cos(az)
	sinDec = math.Max(-1, math.Min(1, sinDec))
	dec := math.Asin(sinDec)

	sinHa := -math.Sin(az) * math.Cos(alt) / math.Cos(dec)
	cosHa := (math.Sin(alt) - sinDec*math.Sin(lat)) / (math.Cos(dec) * math.Cos(lat))
	ha := math.Atan2(sinHa, cosHa) * 180 / math.Pi

	raDeg = math.Mod(lst-ha, 360)
	if raDeg < 0 {
		raDeg += 360
	}
	return raDeg, dec * 180 / math.Pi
}
