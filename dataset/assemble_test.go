package dataset_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/welltie/dataset"
	"github.com/katalvlaran/welltie/window"
)

func ptr(v float64) *float64 { return &v }

// ramp returns [from, from+1, ..., from+n-1].
func ramp(from float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)
	}

	return out
}

// threeWells returns wells of length 5, 2 (too short for W=3) and 4.
func threeWells() []dataset.Series {
	return []dataset.Series{
		{Name: "a", X: ramp(0, 5), Y: ramp(100, 5)},
		{Name: "short", X: ramp(0, 2), Y: ramp(0, 2)},
		{Name: "c", X: ramp(10, 4), Y: ramp(200, 4)},
	}
}

// TestAssemble_OrderAndCounts verifies row order and per-well row counts.
func TestAssemble_OrderAndCounts(t *testing.T) {
	ds, rep, err := dataset.Assemble(threeWells(), 3)
	require.NoError(t, err)

	assert.Equal(t, 3+0+2, ds.Rows())
	assert.Equal(t, 3, ds.Cols())
	assert.Equal(t, [][]float64{
		{0, 1, 2}, {1, 2, 3}, {2, 3, 4},
		{10, 11, 12}, {11, 12, 13},
	}, ds.Features())
	assert.Equal(t, []float64{101, 102, 103, 201, 202}, ds.Labels())

	require.Len(t, rep.Outcomes, 3)
	assert.Equal(t, dataset.Outcome{Name: "a", Rows: 3, Reason: dataset.Contributed}, rep.Outcomes[0])
	assert.Equal(t, dataset.SkipNoWindows, rep.Outcomes[1].Reason)
	assert.Equal(t, []string{"a", "c"}, rep.Contributed())
	assert.Equal(t, []string{"short"}, rep.Skipped())
	assert.Equal(t, "no windows", dataset.SkipNoWindows.String())

	sum := 0
	for _, s := range threeWells() {
		sum += window.Count(len(s.X), 3, 1)
	}
	assert.Equal(t, sum, ds.Rows())
}

// TestAssemble_FirstWellEmpty verifies that an empty first well does not fix the shape.
func TestAssemble_FirstWellEmpty(t *testing.T) {
	series := []dataset.Series{
		{Name: "empty", X: nil, Y: nil},
		{Name: "b", X: ramp(0, 4), Y: ramp(0, 4), Velocity: ptr(3000)},
	}
	ds, rep, err := dataset.Assemble(series, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Cols())
	assert.Equal(t, 2, ds.Rows())
	assert.True(t, rep.Outcomes[0].Skipped())
}

// TestAssemble_Velocity verifies the appended per-well velocity.
func TestAssemble_Velocity(t *testing.T) {
	series := []dataset.Series{
		{Name: "a", X: ramp(0, 4), Y: ramp(0, 4), Velocity: ptr(2500)},
		{Name: "b", X: ramp(0, 3), Y: ramp(0, 3), Velocity: ptr(3100)},
	}
	ds, _, err := dataset.Assemble(series, 3)
	require.NoError(t, err)
	require.Equal(t, 3, ds.Rows())

	want := []float64{2500, 2500, 3100}
	for i := 0; i < ds.Rows(); i++ {
		v, err := ds.At(i, ds.Cols()-1)
		require.NoError(t, err)
		assert.Equal(t, want[i], v)
	}
}

// TestAssemble_ShapeMismatch verifies column-count and length checks.
func TestAssemble_ShapeMismatch(t *testing.T) {
	missingVelocity := []dataset.Series{
		{Name: "a", X: ramp(0, 4), Y: ramp(0, 4), Velocity: ptr(2500)},
		{Name: "b", X: ramp(0, 4), Y: ramp(0, 4)},
	}
	_, _, err := dataset.Assemble(missingVelocity, 3)
	assert.ErrorIs(t, err, dataset.ErrShapeMismatch)
	assert.Contains(t, err.Error(), `well "b"`)

	unequal := []dataset.Series{{Name: "a", X: ramp(0, 4), Y: ramp(0, 3)}}
	_, _, err = dataset.Assemble(unequal, 3)
	assert.ErrorIs(t, err, dataset.ErrShapeMismatch)
	assert.ErrorIs(t, err, window.ErrShapeMismatch)
}

// TestAssemble_Errors covers invalid width and velocity.
func TestAssemble_Errors(t *testing.T) {
	_, _, err := dataset.Assemble(threeWells(), 0)
	assert.ErrorIs(t, err, dataset.ErrInvalidWindow)

	bad := []dataset.Series{{Name: "a", X: ramp(0, 4), Y: ramp(0, 4), Velocity: ptr(math.Inf(1))}}
	_, _, err = dataset.Assemble(bad, 3)
	assert.ErrorIs(t, err, dataset.ErrBadVelocity)
}

// TestAssemble_NothingContributes verifies an empty but well-shaped result.
func TestAssemble_NothingContributes(t *testing.T) {
	ds, rep, err := dataset.Assemble([]dataset.Series{{Name: "s", X: ramp(0, 2), Y: ramp(0, 2)}}, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Rows())
	assert.Equal(t, 5, ds.Cols())
	assert.Empty(t, ds.Labels())
	assert.Equal(t, []string{"s"}, rep.Skipped())

	ds, _, err = dataset.Assemble(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Rows())
}

// TestAssemble_StepAppliesToEveryWell verifies the step is not limited to the first well.
func TestAssemble_StepAppliesToEveryWell(t *testing.T) {
	series := []dataset.Series{
		{Name: "a", X: ramp(0, 7), Y: ramp(0, 7)},
		{Name: "b", X: ramp(0, 7), Y: ramp(10, 7)},
	}
	ds, _, err := dataset.Assemble(series, 3, dataset.WithStep(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5, 11, 13, 15}, ds.Labels())
}

// TestAssemble_ParallelMatchesSequential verifies ordered fan-out.
func TestAssemble_ParallelMatchesSequential(t *testing.T) {
	var series []dataset.Series
	for i := 0; i < 40; i++ {
		n := 3 + i%9
		series = append(series, dataset.Series{
			Name:     strings.Repeat("w", i+1),
			X:        ramp(float64(i*100), n),
			Y:        ramp(float64(-i), n),
			Velocity: ptr(float64(2000 + i)),
		})
	}

	seq, seqRep, err := dataset.Assemble(series, 5)
	require.NoError(t, err)
	par, parRep, err := dataset.Assemble(series, 5, dataset.WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, seq.Fingerprint(), par.Fingerprint())
	assert.Equal(t, seq.Features(), par.Features())
	assert.Equal(t, seqRep, parRep)
}

// TestAssemble_ParallelReportsFirstErrorInOrder verifies deterministic errors under fan-out.
func TestAssemble_ParallelReportsFirstErrorInOrder(t *testing.T) {
	series := []dataset.Series{
		{Name: "ok", X: ramp(0, 4), Y: ramp(0, 4)},
		{Name: "bad1", X: ramp(0, 4), Y: ramp(0, 1)},
		{Name: "bad2", X: ramp(0, 4), Y: ramp(0, 2)},
	}
	for i := 0; i < 10; i++ {
		_, _, err := dataset.Assemble(series, 3, dataset.WithWorkers(3))
		require.ErrorIs(t, err, dataset.ErrShapeMismatch)
		assert.Contains(t, err.Error(), `"bad1"`)
	}
}

// TestAssemble_Idempotent verifies repeated calls give the same fingerprint.
func TestAssemble_Idempotent(t *testing.T) {
	a, _, err := dataset.Assemble(threeWells(), 3)
	require.NoError(t, err)
	b, _, err := dataset.Assemble(threeWells(), 3)
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	c, _, err := dataset.Assemble(threeWells(), 3, dataset.WithStep(2))
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

// TestAssemble_LogsSkips verifies skipped wells are logged.
func TestAssemble_LogsSkips(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	_, _, err := dataset.Assemble(threeWells(), 3, dataset.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "well=short")
	assert.NotContains(t, buf.String(), "well=a ")
}

// TestOptions_Panics verifies option validation.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dataset.WithStep(0) })
	assert.Panics(t, func() { dataset.WithWorkers(0) })
}
