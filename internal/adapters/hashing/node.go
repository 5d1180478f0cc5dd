package hashing

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tpvasconcelos/maurice/internal/adapters/config"
	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprinter Graft node.
const NodeID graft.ID = "adapter.fingerprinter"

func init() {
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return FromSettings(settings)
		},
	})
}
