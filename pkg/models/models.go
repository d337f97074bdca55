package models

// PathConfiguration describes one transmitter/receiver deployment: two
// rooftop buildings separated by a straight path with zero or more
// obstructing buildings between them. It is read once at startup and
// never mutated afterwards.
type PathConfiguration struct {
	BuildingAHeight float64       `json:"building_a_height"`
	BuildingBHeight float64       `json:"building_b_height"`
	PathDistanceM   float64       `json:"path_distance_m"`
	FrequencyMHz    float64       `json:"frequency_mhz"`
	Obstructions    []Obstruction `json:"obstructions"`
}

// Obstruction is a single building between the two endpoints, located
// by its distance from building A along the path.
type Obstruction struct {
	DistanceFromA float64 `json:"distance_from_a"`
	Height        float64 `json:"height"`
}

// DistanceFromB returns the obstruction's distance from building B.
func (o Obstruction) DistanceFromB(pathDistanceM float64) float64 {
	return pathDistanceM - o.DistanceFromA
}

// ClearanceResult holds the minimum antenna heights and per-obstruction
// clearance margins computed for one deployment. Derived once, never
// mutated; gap slices follow the obstruction input order.
type ClearanceResult struct {
	RunID string `json:"run_id"`

	LOSHeightA  float64 `json:"los_height_a"`
	LOSHeightB  float64 `json:"los_height_b"`
	NLOSHeightA float64 `json:"nlos_height_a"`
	NLOSHeightB float64 `json:"nlos_height_b"`

	// LOSGaps[i] is losCandidate[i] - LOSHeightA: zero for the binding
	// obstruction, negative (slack) for the rest.
	LOSGaps  []float64 `json:"los_gaps"`
	NLOSGaps []float64 `json:"nlos_gaps"`

	// PathLossDB is the free-space path loss diagnostic for the full
	// path at the configured frequency. Logged, not written to the
	// report file.
	PathLossDB float64 `json:"path_loss_db"`
}

// SweepPoint is a single x/y sample emitted by a sweep run.
type SweepPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GridPoint is one sample of a two-ray (txHeight, rxHeight) grid sweep.
type GridPoint struct {
	TxHeightM float64 `json:"tx_height_m"`
	RxHeightM float64 `json:"rx_height_m"`
	PowerDBm  float64 `json:"power_dbm"`
}
