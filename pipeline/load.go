package pipeline

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/katalvlaran/welltie/curve"
	"github.com/katalvlaran/welltie/survey"
	"github.com/katalvlaran/welltie/well"
)

// LoadInputs reads the well tables and the cube named by cfg and sets up a
// CSV curve reader over cfg.Curves.Dir.
func LoadInputs(cfg Config) (Inputs, error) {
	table, err := loadWells(cfg.Wells)
	if err != nil {
		return Inputs{}, err
	}
	cube, err := loadCube(cfg.Cube)
	if err != nil {
		return Inputs{}, err
	}

	return Inputs{
		Wells:  table,
		Cube:   cube,
		Curves: &curve.CSVReader{Dir: cfg.Curves.Dir, IndexColumn: cfg.Curves.IndexColumn},
	}, nil
}

func loadWells(c WellsConfig) (*well.Table, error) {
	cf, err := os.Open(c.Coords)
	if err != nil {
		return nil, err
	}
	defer cf.Close()
	coords, err := well.ReadCoords(cf, well.CSVOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Coords, err)
	}

	tops, err := readTimes(c.Tops, c.TopsColumn, well.CSVOptions{NameColumn: c.TopsName})
	if err != nil {
		return nil, err
	}
	bopts := well.CSVOptions{NameColumn: c.BottomsName}
	if c.BottomsTabbed {
		bopts.Comma = '\t'
	}
	bottoms, err := readTimes(c.Bottoms, c.BottomsColumn, bopts)
	if err != nil {
		return nil, err
	}

	return well.Merge(coords, tops, bottoms), nil
}

func readTimes(path, column string, opts well.CSVOptions) ([]well.TimeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := well.ReadTimes(f, column, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

func loadCube(c CubeConfig) (*survey.Cube, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var order binary.ByteOrder = binary.LittleEndian
	if c.BigEndian {
		order = binary.BigEndian
	}
	cube, err := survey.ReadRaw(f, c.NY, c.NX, c.NT, order, c.Null)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Path, err)
	}

	return cube, nil
}
