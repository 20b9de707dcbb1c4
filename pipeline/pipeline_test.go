package pipeline_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/welltie/curve"
	"github.com/katalvlaran/welltie/pipeline"
	"github.com/katalvlaran/welltie/survey"
	"github.com/katalvlaran/welltie/well"
)

// fixtureCube is 2×2 traces of 8 samples; trace (y,x) holds 100*(2y+x) + k.
func fixtureCube(t *testing.T) *survey.Cube {
	t.Helper()
	data := make([]float64, 0, 32)
	for tr := 0; tr < 4; tr++ {
		for k := 0; k < 8; k++ {
			data = append(data, float64(100*tr+k))
		}
	}
	c, err := survey.NewCube(2, 2, 8, data)
	require.NoError(t, err)

	return c
}

// fixtureWells: with TopT=0, BottomT=10, TopZ=0, BottomZ=-10 depth equals time.
func fixtureWells() *well.Table {
	iv := func(name string, x, y float64) well.Well {
		return well.Well{Name: name, X: x, Y: y, TopZ: 0, BottomZ: -10, TopT: 0, BottomT: 10}
	}
	flat := iv("c", 0, 10)
	flat.TopT, flat.BottomT = 5, 5

	return well.NewTable([]well.Well{
		iv("a", 0, 0),
		iv("b", 100, 0),
		flat,
		iv("d", 10, 0),
		iv("e", 10, 10),
	})
}

func fixtureCurves() curve.Reader {
	ramp := func(n int) ([]float64, []float64) {
		z, v := make([]float64, n), make([]float64, n)
		for i := range z {
			z[i], v[i] = float64(i), float64(10*i)
		}
		return z, v
	}
	return curve.ReaderFunc(func(w, _ string) (curve.Curve, error) {
		switch w {
		case "a", "b", "c":
			z, v := ramp(8)
			return curve.Curve{Index: z, Values: v}, nil
		case "e":
			z, v := ramp(4)
			return curve.Curve{Index: z, Values: v}, nil
		}
		return curve.Curve{}, curve.ErrNoWell
	})
}

func fixtureConfig() pipeline.Config {
	cfg := pipeline.Default()
	cfg.Geometry = survey.Geometry{XOrigin: 0, XSpacing: 10, YOrigin: 0, YSpacing: 10}
	cfg.IndexTop = 0
	cfg.SampleInterval = 1
	cfg.Width = 3
	cfg.WithVelocity = true
	cfg.Workers = 2

	return cfg
}

// TestRun_EndToEnd walks the fixture through every stage.
func TestRun_EndToEnd(t *testing.T) {
	in := pipeline.Inputs{Wells: fixtureWells(), Cube: fixtureCube(t), Curves: fixtureCurves()}

	ds, rep, err := pipeline.Run(fixtureConfig(), in, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, ds.Cols())
	assert.Equal(t, 9, ds.Rows())
	assert.Equal(t, 3, rep.Dropped)
	assert.Equal(t, []float64{10, 20, 30, 40, 50, 60, 10, 20, 30}, ds.Labels())

	first, err := ds.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 2000}, first)
	seventh, err := ds.Row(6)
	require.NoError(t, err)
	assert.Equal(t, []float64{300, 301, 302, 2000}, seventh)

	stages := map[string]pipeline.Stage{}
	for _, s := range rep.Skips {
		stages[s.Well] = s.Stage
	}
	assert.Equal(t, map[string]pipeline.Stage{
		"d": pipeline.StageCurve,
		"b": pipeline.StageGrid,
		"c": pipeline.StageDepth,
	}, stages)
	for _, s := range rep.Skips {
		if s.Well == "b" {
			assert.ErrorIs(t, s.Err, pipeline.ErrOffGrid)
		}
	}
	assert.Equal(t, []string{"a", "e"}, rep.Assembly.Contributed())
}

// TestRun_ReaderWellIDIgnored verifies curves stay with the well they were
// requested for when the reader reports its own well identifier.
func TestRun_ReaderWellIDIgnored(t *testing.T) {
	iv := func(name string, x float64) well.Well {
		return well.Well{Name: name, X: x, Y: 0, TopZ: 0, BottomZ: -10, TopT: 0, BottomT: 10}
	}
	wells := well.NewTable([]well.Well{iv("a", 0), iv("b", 10)})
	reader := curve.ReaderFunc(func(w, _ string) (curve.Curve, error) {
		z, v := make([]float64, 8), make([]float64, 8)
		base, id := 1000.0, "A-1"
		if w == "b" {
			base, id = 2000, "b"
		}
		for k := range z {
			z[k], v[k] = float64(k), base+float64(k)
		}
		return curve.Curve{Well: id, Index: z, Values: v}, nil
	})
	cfg := fixtureConfig()
	cfg.WithVelocity = false
	cfg.Workers = 1

	ds, rep, err := pipeline.Run(cfg, pipeline.Inputs{Wells: wells, Cube: fixtureCube(t), Curves: reader}, nil)
	require.NoError(t, err)
	assert.Empty(t, rep.Skips)
	assert.Equal(t, []string{"a", "b"}, rep.Assembly.Contributed())
	require.Equal(t, 12, ds.Rows())

	row, err := ds.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, row)
	assert.Equal(t, 1001.0, ds.Labels()[0])

	row, err = ds.Row(6)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 101, 102}, row)
	assert.Equal(t, 2001.0, ds.Labels()[6])
}

// TestRun_KeepMissing verifies the missing-label filter can be turned off.
func TestRun_KeepMissing(t *testing.T) {
	cfg := fixtureConfig()
	cfg.DropMissingLabels = false
	cfg.WithVelocity = false
	in := pipeline.Inputs{Wells: fixtureWells(), Cube: fixtureCube(t), Curves: fixtureCurves()}

	ds, rep, err := pipeline.Run(cfg, in, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, ds.Rows())
	assert.Equal(t, 3, ds.Cols())
	assert.Zero(t, rep.Dropped)
}

// TestRun_Errors covers missing inputs and bad configuration.
func TestRun_Errors(t *testing.T) {
	_, _, err := pipeline.Run(fixtureConfig(), pipeline.Inputs{}, nil)
	assert.ErrorIs(t, err, pipeline.ErrMissingInput)

	cfg := fixtureConfig()
	cfg.Width = 0
	in := pipeline.Inputs{Wells: fixtureWells(), Cube: fixtureCube(t), Curves: fixtureCurves()}
	_, _, err = pipeline.Run(cfg, in, nil)
	assert.ErrorIs(t, err, pipeline.ErrConfig)
}

// TestLoad verifies JSON overlays defaults.
func TestLoad(t *testing.T) {
	cfg, err := pipeline.Load("")
	require.NoError(t, err)
	assert.Equal(t, pipeline.Default(), cfg)

	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 7, "curves": {"signal": "NKT"}}`), 0o600))
	cfg, err = pipeline.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Width)
	assert.Equal(t, "NKT", cfg.Curves.Signal)
	assert.Equal(t, 900, cfg.IndexTop)

	require.NoError(t, os.WriteFile(path, []byte(`{"step": -1}`), 0o600))
	_, err = pipeline.Load(path)
	assert.ErrorIs(t, err, pipeline.ErrConfig)
}

// TestLoadInputs_FromFiles writes the fixture to disk and runs it back.
func TestLoadInputs_FromFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	var coords, tops, bottoms strings.Builder
	coords.WriteString("Well;X;Y;Top;Bottom\n")
	tops.WriteString("Well;Surface;Pick;TWT\n")
	bottoms.WriteString("Well identifier\tBot, ms\n")
	for _, w := range fixtureWells().Wells() {
		fmt.Fprintf(&coords, "%s;%g;%g;%g;%g\n", w.Name, w.X, w.Y, w.TopZ, w.BottomZ)
		fmt.Fprintf(&tops, "%s;J1;1;%g\n", w.Name, w.TopT)
		fmt.Fprintf(&bottoms, "%s\t%g\n", w.Name, w.BottomT)
	}
	curves := filepath.Join(dir, "las")
	require.NoError(t, os.Mkdir(curves, 0o700))
	var gk strings.Builder
	gk.WriteString("DEPT,GK\n")
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&gk, "%d,%d\n", i, 10*i)
	}
	require.NoError(t, os.WriteFile(filepath.Join(curves, "a.csv"), []byte(gk.String()), 0o600))

	var raw bytes.Buffer
	require.NoError(t, survey.WriteRaw(&raw, fixtureCube(t), binary.BigEndian))

	cfg := fixtureConfig()
	cfg.Wells.Coords = write("coords.csv", coords.String())
	cfg.Wells.Tops = write("top.csv", tops.String())
	cfg.Wells.Bottoms = write("bottom.txt", bottoms.String())
	cfg.Cube = pipeline.CubeConfig{Path: write("cube.bin", raw.String()), NY: 2, NX: 2, NT: 8, BigEndian: true}
	cfg.Curves.Dir = curves

	in, err := pipeline.LoadInputs(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, in.Wells.Len())

	ds, rep, err := pipeline.Run(cfg, in, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, ds.Rows())
	assert.Equal(t, []string{"a"}, rep.Assembly.Contributed())
}
