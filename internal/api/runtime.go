package api

import (
	"github.com/JaimeStill/courier/internal/config"
	"github.com/JaimeStill/courier/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Workflow      config.WorkflowConfig
	MaxSubmitSize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Artifacts: infra.Artifacts,
			Transport: infra.Transport,
		},
		Workflow:      cfg.Workflow,
		MaxSubmitSize: cfg.API.MaxSubmitSizeBytes(),
	}
}
