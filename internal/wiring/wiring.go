// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/symtab/internal/adapters/cas"
	_ "go.trai.ch/symtab/internal/adapters/config"
	_ "go.trai.ch/symtab/internal/adapters/fs"
	_ "go.trai.ch/symtab/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/symtab/internal/app"
)
