package hashing_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tpvasconcelos/maurice/internal/adapters/hashing"
	"github.com/tpvasconcelos/maurice/internal/core/domain"
)

func sampleTable() domain.Table {
	return domain.Table{
		Columns: []string{"id", "name", "score"},
		Rows: [][]any{
			{1, "ada", 9.5},
			{2, "grace", 8.0},
			{3, "edsger", 7.5},
		},
	}
}

func permuteRows(tbl domain.Table) domain.Table {
	out := domain.Table{Columns: tbl.Columns, Rows: make([][]any, len(tbl.Rows))}
	for i, row := range tbl.Rows {
		out.Rows[(i+1)%len(tbl.Rows)] = row
	}
	return out
}

func permuteColumns(tbl domain.Table) domain.Table {
	// Reverse column order, moving cells along with their columns.
	n := len(tbl.Columns)
	out := domain.Table{Columns: make([]string, n), Rows: make([][]any, len(tbl.Rows))}
	for i := 0; i < n; i++ {
		out.Columns[i] = tbl.Columns[n-1-i]
	}
	for ri, row := range tbl.Rows {
		out.Rows[ri] = make([]any, n)
		for i := 0; i < n; i++ {
			out.Rows[ri][i] = row[n-1-i]
		}
	}
	return out
}

func TestFingerprintTable_RowOrderIndependence(t *testing.T) {
	f := newFingerprinter(t)
	tbl := sampleTable()

	opts := domain.TableOptions{SortRows: true}
	d1, err := f.FingerprintTable(tbl, opts)
	require.NoError(t, err)
	d2, err := f.FingerprintTable(permuteRows(tbl), opts)
	require.NoError(t, err)
	require.Equal(t, d1, d2)

	opts.SortRows = false
	d3, err := f.FingerprintTable(tbl, opts)
	require.NoError(t, err)
	d4, err := f.FingerprintTable(permuteRows(tbl), opts)
	require.NoError(t, err)
	require.NotEqual(t, d3, d4)
}

func TestFingerprintTable_ColumnOrderIndependence(t *testing.T) {
	f := newFingerprinter(t)
	tbl := sampleTable()

	opts := domain.TableOptions{SortColumns: true}
	d1, err := f.FingerprintTable(tbl, opts)
	require.NoError(t, err)
	d2, err := f.FingerprintTable(permuteColumns(tbl), opts)
	require.NoError(t, err)
	require.Equal(t, d1, d2)

	opts.SortColumns = false
	d3, err := f.FingerprintTable(tbl, opts)
	require.NoError(t, err)
	d4, err := f.FingerprintTable(permuteColumns(tbl), opts)
	require.NoError(t, err)
	require.NotEqual(t, d3, d4)
}

func TestFingerprintTable_CellChangeChangesDigest(t *testing.T) {
	f := newFingerprinter(t)

	tbl := sampleTable()
	d1, err := f.FingerprintTable(tbl, domain.TableOptions{SortRows: true, SortColumns: true})
	require.NoError(t, err)

	tbl.Rows[1][2] = 8.5
	d2, err := f.FingerprintTable(tbl, domain.TableOptions{SortRows: true, SortColumns: true})
	require.NoError(t, err)
	require.NotEqual(t, d1, d2)
}

func TestFingerprintTable_RaggedRow(t *testing.T) {
	f := newFingerprinter(t)

	tbl := sampleTable()
	tbl.Rows[2] = []any{3, "edsger"}

	_, err := f.FingerprintTable(tbl, domain.TableOptions{})
	require.ErrorIs(t, err, domain.ErrTableShape)
}

func TestFingerprintTable_EmptyTable(t *testing.T) {
	f := newFingerprinter(t)

	d, err := f.FingerprintTable(domain.Table{Columns: []string{"a"}}, domain.TableOptions{SortRows: true})
	require.NoError(t, err)
	require.NotEmpty(t, d)
}

func TestFingerprint_RoutesTablesThroughCanonicalizer(t *testing.T) {
	// A table passed to the generic path must hash via the configured axes,
	// so a table argument behaves the same as an explicit table fingerprint.
	f, err := hashing.New(domain.AlgorithmXXHash64,
		hashing.WithTableOptions(domain.TableOptions{SortRows: true, SortColumns: true}))
	require.NoError(t, err)

	tbl := sampleTable()
	generic, err := f.Fingerprint(tbl)
	require.NoError(t, err)
	viaPointer, err := f.Fingerprint(&tbl)
	require.NoError(t, err)
	explicit, err := f.FingerprintTable(tbl, domain.TableOptions{SortRows: true, SortColumns: true})
	require.NoError(t, err)

	require.Equal(t, explicit, generic)
	require.Equal(t, explicit, viaPointer)

	permuted, err := f.Fingerprint(permuteRows(tbl))
	require.NoError(t, err)
	require.Equal(t, generic, permuted)
}

type upperCaser struct{}

func (upperCaser) Handles(v any) bool {
	_, ok := v.(rune)
	return ok
}

func (upperCaser) Fingerprint(f *hashing.Fingerprinter, v any) (domain.Fingerprint, error) {
	r := v.(rune)
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return f.FingerprintSeries([]any{string(r)}, false)
}

func TestFingerprint_InjectedShapeHandler(t *testing.T) {
	f, err := hashing.New(domain.AlgorithmXXHash64, hashing.WithShapeHandler(upperCaser{}))
	require.NoError(t, err)

	lower, err := f.Fingerprint('a')
	require.NoError(t, err)
	upper, err := f.Fingerprint('A')
	require.NoError(t, err)
	require.Equal(t, lower, upper)
}
