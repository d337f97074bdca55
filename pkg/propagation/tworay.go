package propagation

import "math"

// TwoRayReceivedPowerW returns the two-ray ground-reflection received
// power in watts for the large-distance approximation:
//
//	Pr = Pt * Gt * Gr * (ht*hr)^2 / d^4
//
// Gains are linear; antenna heights and distance are in meters. The
// model is frequency-independent, which is what makes it useful past
// the crossover distance where the ground reflection dominates.
func TwoRayReceivedPowerW(ptW, gainTx, gainRx, txHeightM, rxHeightM, distanceM float64) float64 {
	h := txHeightM * rxHeightM
	return ptW * gainTx * gainRx * h * h / math.Pow(distanceM, 4)
}
