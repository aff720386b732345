// Package dataview provides the generic 2-D table handed from the score
// builders to presentation code: integer-keyed named rows, integer-keyed
// named columns, optional-value cells.
package dataview

import (
	"sort"

	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

// Row is one table row, keyed by an integer id with a display name
type Row struct {
	id    int
	name  string
	cells map[int]shared.Value
}

// ID returns the row key
func (r *Row) ID() int {
	return r.id
}

// Name returns the row display name
func (r *Row) Name() string {
	return r.name
}

// Set stores a cell value at the given column key
func (r *Row) Set(column int, v shared.Value) {
	r.cells[column] = v
}

// Get returns the cell value at the given column key, unknown if unset
func (r *Row) Get(column int) shared.Value {
	return r.cells[column]
}

// columnKeys returns this row's populated column keys in ascending order
func (r *Row) columnKeys() []int {
	keys := make([]int, 0, len(r.cells))
	for k := range r.cells {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Table is a collection of rows plus per-column display names.
// Rows keep insertion order.
type Table struct {
	rows        []*Row
	columnNames map[int]string
}

// New creates an empty table
func New() *Table {
	return &Table{columnNames: make(map[int]string)}
}

// AddRow appends a row with the given key and display name
func (t *Table) AddRow(id int, name string) *Row {
	row := &Row{id: id, name: name, cells: make(map[int]shared.Value)}
	t.rows = append(t.rows, row)
	return row
}

// Row returns the first row with the given key, nil if none
func (t *Table) Row(id int) *Row {
	for _, r := range t.rows {
		if r.id == id {
			return r
		}
	}
	return nil
}

// Rows returns all rows in insertion order
func (t *Table) Rows() []*Row {
	return t.rows
}

// NumRows returns the number of rows
func (t *Table) NumRows() int {
	return len(t.rows)
}

// SetColumnName sets a column's display name
func (t *Table) SetColumnName(column int, name string) {
	t.columnNames[column] = name
}

// ColumnName returns a column's display name, empty if unset
func (t *Table) ColumnName(column int) string {
	return t.columnNames[column]
}

// ColumnKeys returns the ascending union of all populated or named column keys
func (t *Table) ColumnKeys() []int {
	seen := make(map[int]bool)
	for _, r := range t.rows {
		for k := range r.cells {
			seen[k] = true
		}
	}
	for k := range t.columnNames {
		seen[k] = true
	}
	keys := make([]int, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Stack converts each row into a running total: every cell becomes the sum
// of itself and all cells at lower column keys in the same row. Unknown
// cells stay unknown (a gap, not a zero) but do not reset the running sum.
func (t *Table) Stack() {
	for _, r := range t.rows {
		var sum int32
		for _, k := range r.columnKeys() {
			if v, ok := r.cells[k].Get(); ok {
				sum += v
				r.cells[k] = shared.NewValue(sum)
			}
		}
	}
}

// Add merges another table into this one cell-by-cell, scaling the other
// table's values by the given factor and shifting its column keys by
// columnOffset. Rows are aligned by id; rows missing here are created with
// the other table's name. A cell is known in the result if it is known in
// either operand.
func (t *Table) Add(factor int32, other *Table, columnOffset int) {
	for _, src := range other.rows {
		dst := t.Row(src.id)
		if dst == nil {
			dst = t.AddRow(src.id, src.name)
		}
		for col, v := range src.cells {
			target := col + columnOffset
			dst.cells[target] = dst.cells[target].Add(v.Scale(factor))
		}
	}
	for col, name := range other.columnNames {
		target := col + columnOffset
		if _, ok := t.columnNames[target]; !ok {
			t.columnNames[target] = name
		}
	}
}
