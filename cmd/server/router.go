package main

import (
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api"
)

// setupRouter builds the HTTP handler from the application's dependencies.
func (app *application) setupRouter() http.Handler {
	return api.NewRouter(api.RouterConfig{
		Tasks:              api.NewTaskHandler(app.taskService, app.logger),
		Ready:              app.taskStore,
		Logger:             app.logger,
		CORSAllowedOrigins: app.config.Server.CORSAllowedOrigins,
		RateLimitRPS:       app.config.Server.RateLimitRPS,
		RateLimitBurst:     app.config.Server.RateLimitBurst,
	})
}
