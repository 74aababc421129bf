package calc

// Record is one successful calculation.
type Record struct {
	// Expr is the expression as the user entered it.
	Expr string
	// Result is the value of Expr.
	Result float64
}

// History is an ordered log of calculations. The zero value is an empty
// history ready to use. It is not safe to use a History concurrently.
type History struct {
	recs []Record
}

// Append adds a record to the end of the history.
func (h *History) Append(r Record) {
	h.recs = append(h.recs, r)
}

// List returns a copy of the records in the order they were appended.
func (h *History) List() []Record {
	return append(([]Record)(nil), h.recs...)
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.recs)
}

// Clear removes all records.
func (h *History) Clear() {
	h.recs = nil
}
