package api

import (
	"net/http"

	"github.com/JaimeStill/courier/internal/config"
	"github.com/JaimeStill/courier/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	emailHandler := NewEmailHandler(
		domain.Workflow,
		runtime.Logger,
		runtime.MaxSubmitSize,
	)

	routes.Register(
		mux,
		emailHandler.Routes(),
		domain.Runs.Handler().Routes(),
	)
}
