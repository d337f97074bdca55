package propagation

import "math"

// FreeSpaceReceivedPowerW returns the Friis free-space received power
// in watts:
//
//	Pr = Pt * Gt * Gr * lambda^2 / (4*pi*d)^2
//
// Gains are linear. Distance must be positive.
func FreeSpaceReceivedPowerW(ptW, gainTx, gainRx, freqHz, distanceM float64) float64 {
	lambda := Wavelength(freqHz)
	denom := 4 * math.Pi * distanceM
	return ptW * gainTx * gainRx * lambda * lambda / (denom * denom)
}

// FreeSpacePathLossDB returns the free-space path loss in dB,
// 20*log10(4*pi*d/lambda).
func FreeSpacePathLossDB(freqHz, distanceM float64) float64 {
	lambda := Wavelength(freqHz)
	return 20 * math.Log10(4*math.Pi*distanceM/lambda)
}

// LegacyPathLossDB is the constant-form free-space loss used by the
// clearance report diagnostic:
//
//	92.5 + 20*log10((fHz * d / 1e9) / 1000)
//
// The unit folding only behaves sensibly for frequency in Hz and
// distance in meters; it is kept verbatim for report compatibility
// rather than offered as a general utility.
func LegacyPathLossDB(freqHz, distanceM float64) float64 {
	return 92.5 + 20*math.Log10((freqHz*distanceM/1e9)/1000)
}
