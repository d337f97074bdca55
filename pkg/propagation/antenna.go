package propagation

import "math"

// ApertureEfficiency is the dish efficiency assumed by the parabolic
// gain model.
const ApertureEfficiency = 0.6

// IsotropicGain returns the linear gain of an ideal isotropic radiator.
func IsotropicGain() float64 {
	return 1.0
}

// ParabolicGain returns the linear gain of a parabolic dish of the
// given diameter at the given wavelength, both in meters:
//
//	G = eta * (pi * D / lambda)^2
//
// with eta = ApertureEfficiency.
func ParabolicGain(diameterM, wavelengthM float64) float64 {
	r := math.Pi * diameterM / wavelengthM
	return ApertureEfficiency * r * r
}

// ParabolicGainDBi is ParabolicGain expressed in dBi.
func ParabolicGainDBi(diameterM, wavelengthM float64) float64 {
	return 10 * math.Log10(ParabolicGain(diameterM, wavelengthM))
}
