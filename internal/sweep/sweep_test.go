package sweep

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/linkplan/pkg/models"
	"github.com/RMahshie/linkplan/pkg/propagation"
)

func TestFrequencySweep_FreeSpaceIsotropic(t *testing.T) {
	// 50 W over 10 km, 100..900 MHz in 100 MHz steps.
	cfg := Config{
		Model:     ModelFreeSpace,
		Antenna:   AntennaIsotropic,
		TxPowerW:  50,
		DistanceM: 10000,
	}

	pts, err := FrequencySweep(cfg, Range{Start: 100, Stop: 900, Step: 100})
	require.NoError(t, err)
	require.Len(t, pts, 9)

	assert.Equal(t, 100.0, pts[0].X)
	assert.Equal(t, 900.0, pts[8].X)

	want := propagation.WattsToDBm(propagation.FreeSpaceReceivedPowerW(50, 1, 1, 1e8, 10000))
	assert.InDelta(t, want, pts[0].Y, 1e-9)

	// Free-space loss grows with frequency: each step loses power.
	for i := 1; i < len(pts); i++ {
		assert.Less(t, pts[i].Y, pts[i-1].Y)
	}

	// Doubling the frequency costs exactly 6.02 dB.
	assert.InDelta(t, 20*math.Log10(2), pts[0].Y-pts[1].Y, 1e-9)
}

func TestDistanceSweep_FreeSpace(t *testing.T) {
	cfg := Config{
		Model:       ModelFreeSpace,
		Antenna:     AntennaIsotropic,
		TxPowerW:    50,
		FrequencyHz: 9e8,
	}

	pts, err := DistanceSweep(cfg, Range{Start: 100, Stop: 1000, Step: 200})
	require.NoError(t, err)
	require.Len(t, pts, 5)
	assert.Equal(t, []float64{100, 300, 500, 700, 900}, xs(pts))

	for i := 1; i < len(pts); i++ {
		assert.Less(t, pts[i].Y, pts[i-1].Y)
	}
}

func TestFrequencySweep_ParabolicBeatsIsotropic(t *testing.T) {
	base := Config{
		Model:     ModelFreeSpace,
		Antenna:   AntennaIsotropic,
		TxPowerW:  50,
		DistanceM: 1000,
	}
	dish := base
	dish.Antenna = AntennaParabolic
	dish.DishDiameterM = 3

	r := Range{Start: 100, Stop: 900, Step: 100}
	iso, err := FrequencySweep(base, r)
	require.NoError(t, err)
	par, err := FrequencySweep(dish, r)
	require.NoError(t, err)

	require.Len(t, par, len(iso))
	for i := range iso {
		gainDB := propagation.ParabolicGainDBi(3, propagation.Wavelength(iso[i].X*1e6))
		assert.InDelta(t, iso[i].Y+gainDB, par[i].Y, 1e-9)
	}
}

func TestFrequencySweep_TwoRayIsFrequencyFlat(t *testing.T) {
	// The two-ray approximation has no frequency term; with an
	// isotropic antenna every sample is identical.
	cfg := Config{
		Model:     ModelTwoRay,
		Antenna:   AntennaIsotropic,
		TxPowerW:  50,
		DistanceM: 1000,
		TxHeightM: 50,
		RxHeightM: 2,
	}

	pts, err := FrequencySweep(cfg, Range{Start: 100, Stop: 900, Step: 200})
	require.NoError(t, err)
	require.NotEmpty(t, pts)
	for _, p := range pts {
		assert.InDelta(t, pts[0].Y, p.Y, 1e-12)
	}
}

func TestDistanceSweep_TwoRayFalloff(t *testing.T) {
	cfg := Config{
		Model:       ModelTwoRay,
		Antenna:     AntennaIsotropic,
		TxPowerW:    50,
		FrequencyHz: 9e8,
		TxHeightM:   50,
		RxHeightM:   2,
	}

	pts, err := DistanceSweep(cfg, Range{Start: 500, Stop: 1000, Step: 500})
	require.NoError(t, err)
	require.Len(t, pts, 2)

	// d^-4: doubling the distance costs 40*log10(2) ~ 12.04 dB.
	assert.InDelta(t, 40*math.Log10(2), pts[0].Y-pts[1].Y, 1e-9)
}

func TestHeightGrid(t *testing.T) {
	cfg := Config{
		Model:     ModelTwoRay,
		Antenna:   AntennaIsotropic,
		TxPowerW:  50,
		DistanceM: 1000,
	}

	pts, err := HeightGrid(cfg, Range{Start: 10, Stop: 50, Step: 10}, Range{Start: 1, Stop: 5, Step: 1})
	require.NoError(t, err)
	require.Len(t, pts, 25)

	// Row-major: tx height varies slowest.
	assert.Equal(t, models.GridPoint{TxHeightM: 10, RxHeightM: 1, PowerDBm: pts[0].PowerDBm}, pts[0])
	assert.Equal(t, 50.0, pts[24].TxHeightM)
	assert.Equal(t, 5.0, pts[24].RxHeightM)

	want := propagation.WattsToDBm(propagation.TwoRayReceivedPowerW(50, 1, 1, 10, 1, 1000))
	assert.InDelta(t, want, pts[0].PowerDBm, 1e-9)

	// Taller antennas always help.
	assert.Greater(t, pts[24].PowerDBm, pts[0].PowerDBm)
}

func TestHeightGrid_RejectsFreeSpace(t *testing.T) {
	cfg := Config{Model: ModelFreeSpace, Antenna: AntennaIsotropic, TxPowerW: 50, DistanceM: 1000}
	_, err := HeightGrid(cfg, Range{Start: 1, Stop: 2, Step: 1}, Range{Start: 1, Stop: 2, Step: 1})
	assert.ErrorIs(t, err, ErrInvalidSweep)
}

func TestSweepValidation(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{"unknown model", func() error {
			_, err := FrequencySweep(Config{Model: "hata", Antenna: AntennaIsotropic, TxPowerW: 1, DistanceM: 1}, Range{Start: 1, Stop: 2, Step: 1})
			return err
		}},
		{"unknown antenna", func() error {
			_, err := FrequencySweep(Config{Model: ModelFreeSpace, Antenna: "horn", TxPowerW: 1, DistanceM: 1}, Range{Start: 1, Stop: 2, Step: 1})
			return err
		}},
		{"parabolic without dish diameter", func() error {
			_, err := FrequencySweep(Config{Model: ModelFreeSpace, Antenna: AntennaParabolic, TxPowerW: 1, DistanceM: 1}, Range{Start: 1, Stop: 2, Step: 1})
			return err
		}},
		{"zero tx power", func() error {
			_, err := FrequencySweep(Config{Model: ModelFreeSpace, Antenna: AntennaIsotropic, DistanceM: 1}, Range{Start: 1, Stop: 2, Step: 1})
			return err
		}},
		{"zero step", func() error {
			_, err := FrequencySweep(Config{Model: ModelFreeSpace, Antenna: AntennaIsotropic, TxPowerW: 1, DistanceM: 1}, Range{Start: 1, Stop: 2})
			return err
		}},
		{"start beyond stop", func() error {
			_, err := DistanceSweep(Config{Model: ModelFreeSpace, Antenna: AntennaIsotropic, TxPowerW: 1, FrequencyHz: 1e8}, Range{Start: 10, Stop: 1, Step: 1})
			return err
		}},
		{"distance sweep from zero", func() error {
			_, err := DistanceSweep(Config{Model: ModelFreeSpace, Antenna: AntennaIsotropic, TxPowerW: 1, FrequencyHz: 1e8}, Range{Start: 0, Stop: 10, Step: 1})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), ErrInvalidSweep)
		})
	}
}

func TestWrite(t *testing.T) {
	var b strings.Builder
	err := Write(&b, []models.SweepPoint{{X: 100, Y: -51.25}, {X: 200, Y: -57.5}})
	require.NoError(t, err)
	assert.Equal(t, "100 -51.2500\n200 -57.5000\n", b.String())
}

func TestWriteGrid(t *testing.T) {
	var b strings.Builder
	err := WriteGrid(&b, []models.GridPoint{{TxHeightM: 10, RxHeightM: 1, PowerDBm: -60.125}})
	require.NoError(t, err)
	assert.Equal(t, "10 1 -60.1250\n", b.String())
}

func xs(pts []models.SweepPoint) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.X
	}
	return out
}
