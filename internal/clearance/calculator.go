package clearance

import (
	"github.com/RMahshie/linkplan/pkg/models"
	"github.com/RMahshie/linkplan/pkg/propagation"
)

// Clearance factors: full line of sight requires 60% of the first
// Fresnel-zone radius to be clear above each obstruction, near line of
// sight relaxes that to 40%.
const (
	losClearanceFactor  = 0.6
	nlosClearanceFactor = 0.4
)

// Compute derives the minimum antenna heights for a deployment. It is
// a single pass over the obstructions: each one yields a LOS and an
// NLOS height candidate (how far above building A's roof the antenna
// must sit to clear it), and the answer is the running maximum, seeded
// at zero so a result can never go negative. Antenna B's height
// follows from the rooftop height difference, and per-obstruction gaps
// record the slack of each candidate against the binding one.
func Compute(cfg *models.PathConfiguration) *models.ClearanceResult {
	freqHz := cfg.FrequencyMHz * 1e6
	lambda := propagation.Wavelength(freqHz)

	n := len(cfg.Obstructions)
	losCandidates := make([]float64, n)
	nlosCandidates := make([]float64, n)

	var losMax, nlosMax float64
	for i, o := range cfg.Obstructions {
		d2 := o.DistanceFromB(cfg.PathDistanceM)
		radius := propagation.FresnelRadius(lambda, o.DistanceFromA, d2)

		losCandidates[i] = o.Height - cfg.BuildingAHeight + losClearanceFactor*radius
		if losCandidates[i] > losMax {
			losMax = losCandidates[i]
		}

		nlosCandidates[i] = o.Height - cfg.BuildingAHeight + nlosClearanceFactor*radius
		if nlosCandidates[i] > nlosMax {
			nlosMax = nlosCandidates[i]
		}
	}

	res := &models.ClearanceResult{
		LOSHeightA:  losMax,
		NLOSHeightA: nlosMax,
		LOSHeightB:  cfg.BuildingAHeight - cfg.BuildingBHeight + losMax,
		NLOSHeightB: cfg.BuildingAHeight - cfg.BuildingBHeight + nlosMax,
		LOSGaps:     make([]float64, n),
		NLOSGaps:    make([]float64, n),
		PathLossDB:  propagation.LegacyPathLossDB(freqHz, cfg.PathDistanceM),
	}
	for i := 0; i < n; i++ {
		res.LOSGaps[i] = losCandidates[i] - losMax
		res.NLOSGaps[i] = nlosCandidates[i] - nlosMax
	}
	return res
}
