package hashing

import (
	"sort"

	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"go.trai.ch/zerr"
)

// FingerprintTable hashes each row independently and combines the row
// digests, so large tabular data never flows through the generic codec as
// one byte stream. Column order independence reorders named columns before
// hashing; row order independence sorts the row digests before combining.
func (f *Fingerprinter) FingerprintTable(tbl domain.Table, opts domain.TableOptions) (domain.Fingerprint, error) {
	order := make([]int, len(tbl.Columns))
	for i := range order {
		order[i] = i
	}
	if opts.SortColumns {
		sort.Slice(order, func(a, b int) bool {
			return tbl.Columns[order[a]] < tbl.Columns[order[b]]
		})
	}

	rowDigests := make([]string, len(tbl.Rows))
	for i, row := range tbl.Rows {
		if len(row) != len(tbl.Columns) {
			return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrTableShape, ""), "row", i), "width", len(row))
		}

		rh := f.newDigest()
		rw := newWalker(f, rh)
		for _, ci := range order {
			if err := rw.writeString(tbl.Columns[ci]); err != nil {
				return "", err
			}
			if err := rw.writeAny(row[ci]); err != nil {
				return "", zerr.With(err, "column", tbl.Columns[ci])
			}
		}
		rowDigests[i] = string(f.sum(rh))
	}

	if opts.SortRows {
		sort.Strings(rowDigests)
	}

	h := f.newDigest()
	for _, d := range rowDigests {
		_, _ = h.Write([]byte(d))
		_, _ = h.Write([]byte{0})
	}
	return f.sum(h), nil
}

// tableHandler routes domain.Table values encountered by the generic
// Fingerprint path through FingerprintTable with the configured default axes.
type tableHandler struct{}

func (tableHandler) Handles(v any) bool {
	switch v.(type) {
	case domain.Table, *domain.Table:
		return true
	}
	return false
}

func (tableHandler) Fingerprint(f *Fingerprinter, v any) (domain.Fingerprint, error) {
	tbl, ok := v.(domain.Table)
	if !ok {
		tbl = *(v.(*domain.Table))
	}
	return f.FingerprintTable(tbl, f.tableOpts)
}
