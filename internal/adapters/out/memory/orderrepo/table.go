package orderrepo

import (
	"slices"
)

// Table holds order records in insertion order. It is not safe for concurrent
// use; callers reach it through a TableAccessor.
type Table struct {
	rows []OrderRecord
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{rows: make([]OrderRecord, 0)}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	rows := make([]OrderRecord, len(t.rows))
	for i, rec := range t.rows {
		rec.Dishes = slices.Clone(rec.Dishes)
		rows[i] = rec
	}
	return &Table{rows: rows}
}

// Len reports the number of stored records.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) indexOf(id string) int {
	return slices.IndexFunc(t.rows, func(rec OrderRecord) bool {
		return rec.ID == id
	})
}

func (t *Table) find(id string) (OrderRecord, bool) {
	i := t.indexOf(id)
	if i < 0 {
		return OrderRecord{}, false
	}
	return t.rows[i], true
}

func (t *Table) insert(rec OrderRecord) bool {
	if t.indexOf(rec.ID) >= 0 {
		return false
	}
	t.rows = append(t.rows, rec)
	return true
}

func (t *Table) replace(rec OrderRecord) bool {
	i := t.indexOf(rec.ID)
	if i < 0 {
		return false
	}
	t.rows[i] = rec
	return true
}

func (t *Table) delete(id string) bool {
	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return true
}

func (t *Table) all() []OrderRecord {
	return slices.Clone(t.rows)
}
