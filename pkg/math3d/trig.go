package math3d

import "github.com/chewxy/math32"

// sinTableSteps is the number of samples per 360 degrees; one sample
// per degree leaves the worst-case linear-interpolation error at about
// 4e-5 (h*h/8 with h one degree in radians), well under the 1e-3
// accuracy the rotation builders require.
const sinTableSteps = 360

var sinTable [sinTableSteps + 1]float32

func init() {
	for i := range sinTable {
		deg := float32(i)
		sinTable[i] = math32.Sin(deg * math32.Pi / 180)
	}
}

// lookupSine returns an interpolated sine of degrees, tolerating any
// input (including negative values and values beyond 360) by reducing
// modulo 360.
func lookupSine(degrees float32) float32 {
	return tableLookup(degrees, 0)
}

// lookupCosine returns an interpolated cosine of degrees, via the
// identity cos(x) = sin(x + 90).
func lookupCosine(degrees float32) float32 {
	return tableLookup(degrees, 90)
}

func tableLookup(degrees, phase float32) float32 {
	d := reduceDegrees(degrees + phase)
	lo := int(math32.Floor(d))
	frac := d - float32(lo)
	hi := lo + 1
	return sinTable[lo] + (sinTable[hi]-sinTable[lo])*frac
}

// reduceDegrees folds any float32 degree value into [0, 360).
func reduceDegrees(degrees float32) float32 {
	d := math32.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}
