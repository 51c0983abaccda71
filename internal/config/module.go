package config

import "go.uber.org/fx"

// Module makes the loaded configuration available to the fx graph.
var Module = fx.Provide(Load)
