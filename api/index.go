// Package handler exposes the service as a single serverless function.
package handler

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
)

var (
	once sync.Once
	app  http.Handler
)

func boot() {
	logger.InitLogger()
	logger.SetLogLevel(config.Get())

	app = di.InitializeService().Adaptor()

	log.Info().Msg("Serverless instance warmed up.")
}

// Handler serves one invocation. The dependency graph is built on the first
// call and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(boot)

	r.RequestURI = r.URL.String()
	app.ServeHTTP(w, r)
}
