package domain

// Table is a plain columnar value for fingerprinting tabular data without
// materializing a total order on the raw values. Each row must have exactly
// one cell per column.
type Table struct {
	Columns []string
	Rows    [][]any
}

// TableOptions selects the canonicalization axes applied when fingerprinting
// a Table. Both axes are independent.
type TableOptions struct {
	// SortRows declares row order insignificant: row digests are sorted
	// before being combined.
	SortRows bool

	// SortColumns declares column order insignificant: columns are reordered
	// by name before each row is hashed.
	SortColumns bool
}
