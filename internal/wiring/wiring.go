// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/tpvasconcelos/maurice/internal/adapters/cas"
	_ "github.com/tpvasconcelos/maurice/internal/adapters/codec"
	_ "github.com/tpvasconcelos/maurice/internal/adapters/config"
	_ "github.com/tpvasconcelos/maurice/internal/adapters/hashing"
	_ "github.com/tpvasconcelos/maurice/internal/adapters/logger"
	_ "github.com/tpvasconcelos/maurice/internal/adapters/state"
	// Register app and engine nodes.
	_ "github.com/tpvasconcelos/maurice/internal/app"
	_ "github.com/tpvasconcelos/maurice/internal/engine/memoizer"
)
