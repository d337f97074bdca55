// Package sweep generates received-power tables from the propagation
// models: power vs. frequency at a fixed distance, power vs. distance
// at a fixed frequency, and power vs. antenna heights for the two-ray
// model. Output rows are gnuplot-friendly "x y" lines.
package sweep

import (
	"errors"
	"fmt"
	"io"

	"github.com/RMahshie/linkplan/pkg/models"
	"github.com/RMahshie/linkplan/pkg/propagation"
)

// Model selects the path-loss model for a sweep.
type Model string

// Antenna selects the transmit antenna model; the receiver is always
// isotropic.
type Antenna string

const (
	ModelFreeSpace Model = "freespace"
	ModelTwoRay    Model = "tworay"

	AntennaIsotropic Antenna = "isotropic"
	AntennaParabolic Antenna = "parabolic"
)

// ErrInvalidSweep marks sweep configurations or ranges that cannot be
// evaluated.
var ErrInvalidSweep = errors.New("invalid sweep")

// Range is an inclusive start..stop interval walked in step increments.
type Range struct {
	Start float64
	Stop  float64
	Step  float64
}

func (r Range) validate(name string) error {
	if r.Step <= 0 {
		return fmt.Errorf("%w: %s step %g must be positive", ErrInvalidSweep, name, r.Step)
	}
	if r.Start > r.Stop {
		return fmt.Errorf("%w: %s start %g exceeds stop %g", ErrInvalidSweep, name, r.Start, r.Stop)
	}
	return nil
}

// Config holds the fixed parameters of a sweep. Fields not used by the
// selected model are ignored.
type Config struct {
	Model   Model
	Antenna Antenna

	TxPowerW      float64
	DishDiameterM float64 // parabolic antenna only

	FrequencyHz float64 // fixed carrier for distance and height sweeps
	DistanceM   float64 // fixed distance for frequency sweeps
	TxHeightM   float64 // two-ray only
	RxHeightM   float64 // two-ray only
}

func (c Config) validate() error {
	switch c.Model {
	case ModelFreeSpace, ModelTwoRay:
	default:
		return fmt.Errorf("%w: unknown model %q", ErrInvalidSweep, c.Model)
	}
	switch c.Antenna {
	case AntennaIsotropic:
	case AntennaParabolic:
		if c.DishDiameterM <= 0 {
			return fmt.Errorf("%w: parabolic antenna needs a positive dish diameter, got %g", ErrInvalidSweep, c.DishDiameterM)
		}
	default:
		return fmt.Errorf("%w: unknown antenna %q", ErrInvalidSweep, c.Antenna)
	}
	if c.TxPowerW <= 0 {
		return fmt.Errorf("%w: tx power %g W must be positive", ErrInvalidSweep, c.TxPowerW)
	}
	return nil
}

// txGain returns the linear transmit gain at the given carrier.
func (c Config) txGain(freqHz float64) float64 {
	if c.Antenna == AntennaParabolic {
		return propagation.ParabolicGain(c.DishDiameterM, propagation.Wavelength(freqHz))
	}
	return propagation.IsotropicGain()
}

// receivedDBm evaluates the configured model at one operating point.
func (c Config) receivedDBm(freqHz, distanceM float64) float64 {
	gt := c.txGain(freqHz)
	gr := propagation.IsotropicGain()

	var prW float64
	switch c.Model {
	case ModelTwoRay:
		prW = propagation.TwoRayReceivedPowerW(c.TxPowerW, gt, gr, c.TxHeightM, c.RxHeightM, distanceM)
	default:
		prW = propagation.FreeSpaceReceivedPowerW(c.TxPowerW, gt, gr, freqHz, distanceM)
	}
	return propagation.WattsToDBm(prW)
}

// FrequencySweep evaluates the model at a fixed distance across a
// frequency range. X values are in MHz, Y in dBm.
func FrequencySweep(cfg Config, freqsMHz Range) ([]models.SweepPoint, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := freqsMHz.validate("frequency"); err != nil {
		return nil, err
	}
	if cfg.DistanceM <= 0 {
		return nil, fmt.Errorf("%w: distance %g m must be positive", ErrInvalidSweep, cfg.DistanceM)
	}

	var pts []models.SweepPoint
	for f := freqsMHz.Start; f <= freqsMHz.Stop+1e-9; f += freqsMHz.Step {
		pts = append(pts, models.SweepPoint{X: f, Y: cfg.receivedDBm(f*1e6, cfg.DistanceM)})
	}
	return pts, nil
}

// DistanceSweep evaluates the model at a fixed frequency across a
// distance range. X values are in meters, Y in dBm.
func DistanceSweep(cfg Config, distsM Range) ([]models.SweepPoint, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := distsM.validate("distance"); err != nil {
		return nil, err
	}
	if cfg.FrequencyHz <= 0 {
		return nil, fmt.Errorf("%w: frequency %g Hz must be positive", ErrInvalidSweep, cfg.FrequencyHz)
	}
	if distsM.Start <= 0 {
		return nil, fmt.Errorf("%w: distance sweep must start above zero, got %g", ErrInvalidSweep, distsM.Start)
	}

	var pts []models.SweepPoint
	for d := distsM.Start; d <= distsM.Stop+1e-9; d += distsM.Step {
		pts = append(pts, models.SweepPoint{X: d, Y: cfg.receivedDBm(cfg.FrequencyHz, d)})
	}
	return pts, nil
}

// HeightGrid evaluates the two-ray model over a (txHeight, rxHeight)
// grid at the configured fixed distance.
func HeightGrid(cfg Config, txHeightsM, rxHeightsM Range) ([]models.GridPoint, error) {
	if cfg.Model != ModelTwoRay {
		return nil, fmt.Errorf("%w: height grid applies to the two-ray model only", ErrInvalidSweep)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := txHeightsM.validate("tx height"); err != nil {
		return nil, err
	}
	if err := rxHeightsM.validate("rx height"); err != nil {
		return nil, err
	}
	if cfg.DistanceM <= 0 {
		return nil, fmt.Errorf("%w: distance %g m must be positive", ErrInvalidSweep, cfg.DistanceM)
	}

	gt := cfg.txGain(cfg.FrequencyHz)
	gr := propagation.IsotropicGain()

	var pts []models.GridPoint
	for ht := txHeightsM.Start; ht <= txHeightsM.Stop+1e-9; ht += txHeightsM.Step {
		for hr := rxHeightsM.Start; hr <= rxHeightsM.Stop+1e-9; hr += rxHeightsM.Step {
			prW := propagation.TwoRayReceivedPowerW(cfg.TxPowerW, gt, gr, ht, hr, cfg.DistanceM)
			pts = append(pts, models.GridPoint{TxHeightM: ht, RxHeightM: hr, PowerDBm: propagation.WattsToDBm(prW)})
		}
	}
	return pts, nil
}

// Write emits sweep points as "x y" lines.
func Write(w io.Writer, pts []models.SweepPoint) error {
	for _, p := range pts {
		if _, err := fmt.Fprintf(w, "%g %.4f\n", p.X, p.Y); err != nil {
			return fmt.Errorf("writing sweep output: %w", err)
		}
	}
	return nil
}

// WriteGrid emits grid points as "ht hr power" lines.
func WriteGrid(w io.Writer, pts []models.GridPoint) error {
	for _, p := range pts {
		if _, err := fmt.Fprintf(w, "%g %g %.4f\n", p.TxHeightM, p.RxHeightM, p.PowerDBm); err != nil {
			return fmt.Errorf("writing sweep output: %w", err)
		}
	}
	return nil
}
