package domain

// StateMap is the captured, restorable representation of a target object's
// externally visible fields at a point in time.
type StateMap map[string]any

// Entry is the unit of storage located at one cache key. Entries are
// immutable once published: an existing entry is never overwritten, only
// read or left alone.
type Entry struct {
	// Result is the encoded return value of the operation.
	Result []byte

	// State is the encoded post-execution state snapshot. Nil when the
	// operation was declared state-independent.
	State []byte

	// Meta is the audit descriptor. It is written for introspection only;
	// a nil Meta never prevents a successful read.
	Meta *Metadata
}

// Metadata is the human-readable descriptor stored next to the snapshots.
type Metadata struct {
	Operation    string `json:"operation"`
	ArgsRepr     string `json:"args_repr"`
	KwargsRepr   string `json:"kwargs_repr"`
	StateMatters bool   `json:"state_matters"`
	StateRepr    string `json:"state_repr,omitzero"`
	StateHash    string `json:"state_hash,omitzero"`
	ResultRepr   string `json:"result_repr"`
	ResultHash   string `json:"result_hash"`
}
