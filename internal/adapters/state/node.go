package state

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
)

// NodeID is the unique identifier for the state accessor Graft node.
const NodeID graft.ID = "adapter.state_accessor"

func init() {
	graft.Register(graft.Node[ports.StateAccessor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.StateAccessor, error) {
			return New(), nil
		},
	})
}
