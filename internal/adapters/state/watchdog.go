package state

import (
	"reflect"
	"sort"

	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
)

// ChangeKind classifies how a field moved between two state snapshots.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeModified ChangeKind = "modified"
)

// Change records one field's transition between two snapshots. Old is unset
// for added fields, New for removed ones.
type Change struct {
	Name string
	Kind ChangeKind
	Old  any
	New  any
}

// Changes is a state diff, sorted by field name.
type Changes []Change

// Empty reports whether the diff recorded no transitions.
func (cs Changes) Empty() bool {
	return len(cs) == 0
}

// Added returns the subset of additions.
func (cs Changes) Added() Changes { return cs.kind(ChangeAdded) }

// Removed returns the subset of removals.
func (cs Changes) Removed() Changes { return cs.kind(ChangeRemoved) }

// Modified returns the subset of modifications.
func (cs Changes) Modified() Changes { return cs.kind(ChangeModified) }

func (cs Changes) kind(k ChangeKind) Changes {
	var out Changes
	for _, c := range cs {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// Diff compares two snapshots field by field and reports every addition,
// removal, and value modification between them.
func Diff(before, after domain.StateMap) Changes {
	var out Changes
	for name, old := range before {
		current, ok := after[name]
		switch {
		case !ok:
			out = append(out, Change{Name: name, Kind: ChangeRemoved, Old: old})
		case !reflect.DeepEqual(old, current):
			out = append(out, Change{Name: name, Kind: ChangeModified, Old: old, New: current})
		}
	}
	for name, current := range after {
		if _, ok := before[name]; !ok {
			out = append(out, Change{Name: name, Kind: ChangeAdded, New: current})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Detector watches one target across operations, reporting which of its
// fields each observation window added, removed, or modified. Useful for
// auditing whether an operation declared state-independent actually leaves
// its target untouched.
type Detector struct {
	states   ports.StateAccessor
	target   any
	baseline domain.StateMap
}

// NewDetector captures the target's current state as the first baseline.
// The target must support one of the state capabilities.
func NewDetector(states ports.StateAccessor, target any) (*Detector, error) {
	baseline, err := states.Capture(target)
	if err != nil {
		return nil, err
	}
	return &Detector{states: states, target: target, baseline: baseline}, nil
}

// Observe diffs the target's current state against the baseline and then
// advances the baseline, so consecutive calls report disjoint windows.
func (d *Detector) Observe() (Changes, error) {
	current, err := d.states.Capture(d.target)
	if err != nil {
		return nil, err
	}
	changes := Diff(d.baseline, current)
	d.baseline = current
	return changes, nil
}

// Baseline returns a copy of the snapshot the next Observe will diff
// against.
func (d *Detector) Baseline() domain.StateMap {
	return copyState(d.baseline)
}
