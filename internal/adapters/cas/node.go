package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tpvasconcelos/maurice/internal/adapters/config"
	"github.com/tpvasconcelos/maurice/internal/adapters/logger"
	"github.com/tpvasconcelos/maurice/internal/core/domain"
	"github.com/tpvasconcelos/maurice/internal/core/ports"
)

// NodeID is the unique identifier for the entry store Graft node.
const NodeID graft.ID = "adapter.entry_store"

func init() {
	graft.Register(graft.Node[ports.EntryStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.EntryStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.StorePath(), log)
		},
	})
}
