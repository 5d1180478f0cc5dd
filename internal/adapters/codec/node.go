package codec

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
)

// NodeID is the unique identifier for the codec Graft node.
const NodeID graft.ID = "adapter.codec"

func init() {
	graft.Register(graft.Node[ports.Codec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Codec, error) {
			return New(), nil
		},
	})
}
