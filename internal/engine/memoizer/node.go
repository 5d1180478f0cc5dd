package memoizer

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tpvasconcelos/maurice/internal/adapters/cas"     //nolint:depguard // Wired in engine wiring
	"github.com/tpvasconcelos/maurice/internal/adapters/codec"   //nolint:depguard // Wired in engine wiring
	"github.com/tpvasconcelos/maurice/internal/adapters/hashing" //nolint:depguard // Wired in engine wiring
	"github.com/tpvasconcelos/maurice/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"github.com/tpvasconcelos/maurice/internal/adapters/state"   //nolint:depguard // Wired in engine wiring
	"github.com/tpvasconcelos/maurice/internal/core/ports"
)

// NodeID is the unique identifier for the memoizer Graft node.
const NodeID graft.ID = "engine.memoizer"

func init() {
	graft.Register(graft.Node[*Memoizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			hashing.NodeID,
			state.NodeID,
			codec.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Memoizer, error) {
			store, err := graft.Dep[ports.EntryStore](ctx)
			if err != nil {
				return nil, err
			}

			fingerprints, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}

			states, err := graft.Dep[ports.StateAccessor](ctx)
			if err != nil {
				return nil, err
			}

			snapshots, err := graft.Dep[ports.Codec](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, fingerprints, states, snapshots, log), nil
		},
	})
}
