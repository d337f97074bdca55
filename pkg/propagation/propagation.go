// Package propagation implements the closed-form radio propagation
// formulas used by the link planner: free-space (Friis) and two-ray
// ground-reflection received power, free-space path loss, first
// Fresnel-zone geometry and simple antenna gain models.
//
// Everything here is a pure function of its parameters. Unit
// conventions: meters for distances and heights, Hz for frequencies,
// watts for powers and linear (not dB) values for gains unless a name
// says otherwise.
package propagation

import "math"

// SpeedOfLight is the propagation speed used for wavelength
// conversions, in m/s.
const SpeedOfLight = 3e8

// Wavelength returns the wavelength in meters for a carrier frequency
// in Hz.
func Wavelength(freqHz float64) float64 {
	return SpeedOfLight / freqHz
}

// FresnelRadius returns the first Fresnel-zone radius in meters at a
// point d1 meters from one endpoint and d2 meters from the other.
func FresnelRadius(wavelengthM, d1M, d2M float64) float64 {
	return math.Sqrt(wavelengthM * d1M * d2M / (d1M + d2M))
}

// WattsToDBm converts a power in watts to dBm.
func WattsToDBm(w float64) float64 {
	return 30 + 10*math.Log10(w)
}

// DBmToWatts converts a power in dBm to watts.
func DBmToWatts(dbm float64) float64 {
	return math.Pow(10, dbm/10) / 1000
}
