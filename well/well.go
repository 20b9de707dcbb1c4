// SPDX-License-Identifier: MIT

package well

import (
	"fmt"
	"math"
	"sort"
)

// Well is one borehole with the markers of the studied interval.
type Well struct {
	Name    string
	X, Y    float64 // meters
	TopZ    float64 // depth of the top marker, meters
	BottomZ float64 // depth of the bottom marker, meters
	TopT    float64 // two-way time of the top marker, ms
	BottomT float64 // two-way time of the bottom marker, ms
}

// DeltaZ is BottomZ − TopZ.
func (w Well) DeltaZ() float64 { return w.BottomZ - w.TopZ }

// DeltaT is TopT − BottomT. It must be nonzero for the well to be usable.
func (w Well) DeltaT() float64 { return w.TopT - w.BottomT }

// Degenerate reports whether the time markers coincide.
func (w Well) Degenerate() bool { return w.DeltaT() == 0 }

// Velocity is the interval velocity in m/s: DeltaZ / DeltaT · 2 · 1000.
// The factor 2 converts two-way time to one-way, 1000 converts ms to s.
// Degenerate wells yield ±Inf or NaN.
func (w Well) Velocity() float64 {
	return w.DeltaZ() / w.DeltaT() * 2 * 1000
}

// complete reports whether every numeric field is finite.
func (w Well) complete() bool {
	for _, v := range []float64{w.X, w.Y, w.TopZ, w.BottomZ, w.TopT, w.BottomT} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Table is an immutable set of wells keyed by name, iterated in name order.
type Table struct {
	byName map[string]Well
	names  []string
}

// NewTable builds a table from wells. Later duplicates of a name are ignored,
// as are wells with a non-finite field.
func NewTable(wells []Well) *Table {
	t := &Table{byName: make(map[string]Well, len(wells))}
	for _, w := range wells {
		if _, dup := t.byName[w.Name]; dup || !w.complete() {
			continue
		}
		t.byName[w.Name] = w
		t.names = append(t.names, w.Name)
	}
	sort.Strings(t.names)

	return t
}

// Len returns the number of wells.
func (t *Table) Len() int { return len(t.names) }

// Names returns the well names in ascending order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Get returns the well called name.
func (t *Table) Get(name string) (Well, error) {
	w, ok := t.byName[name]
	if !ok {
		return Well{}, fmt.Errorf("Get(%q): %w", name, ErrUnknownWell)
	}

	return w, nil
}

// Wells returns all wells in name order.
func (t *Table) Wells() []Well {
	out := make([]Well, len(t.names))
	for i, n := range t.names {
		out[i] = t.byName[n]
	}

	return out
}

// Filter returns a new table holding the wells for which keep is true.
func (t *Table) Filter(keep func(Well) bool) *Table {
	var ws []Well
	for _, w := range t.Wells() {
		if keep(w) {
			ws = append(ws, w)
		}
	}

	return NewTable(ws)
}

// Valid drops wells whose time markers coincide, which cannot be mapped to depth.
func (t *Table) Valid() *Table {
	return t.Filter(func(w Well) bool { return !w.Degenerate() })
}

// Subset returns the wells named in names, in that order, skipping unknown names.
func (t *Table) Subset(names []string) []Well {
	out := make([]Well, 0, len(names))
	for _, n := range names {
		if w, ok := t.byName[n]; ok {
			out = append(out, w)
		}
	}

	return out
}

// CoordRow is one row of the coordinate table.
type CoordRow struct {
	Name    string
	X, Y    float64
	TopZ    float64
	BottomZ float64
}

// TimeRow is one row of a marker-time table.
type TimeRow struct {
	Name string
	T    float64
}

// Merge inner-joins the coordinate, top-time and bottom-time tables on well
// name. Within each source only the first row of a name counts. Rows with a
// non-finite value are dropped before the join.
func Merge(coords []CoordRow, tops, bottoms []TimeRow) *Table {
	top := firstTimes(tops)
	bot := firstTimes(bottoms)

	wells := make([]Well, 0, len(coords))
	for _, c := range coords {
		tt, okTop := top[c.Name]
		bt, okBot := bot[c.Name]
		if !okTop || !okBot {
			continue
		}
		wells = append(wells, Well{
			Name: c.Name, X: c.X, Y: c.Y,
			TopZ: c.TopZ, BottomZ: c.BottomZ,
			TopT: tt, BottomT: bt,
		})
	}

	return NewTable(wells)
}

func firstTimes(rows []TimeRow) map[string]float64 {
	m := make(map[string]float64, len(rows))
	for _, r := range rows {
		if math.IsNaN(r.T) || math.IsInf(r.T, 0) {
			continue
		}
		if _, seen := m[r.Name]; !seen {
			m[r.Name] = r.T
		}
	}

	return m
}
