package app

import (
	"net/http"

	"github.com/vancomm/blockslide-server/internal/handlers"
)

func (a *App) loadRoutes() {
	level := handlers.NewLevelHandler(a.logger, a.ws, a.board)

	a.router.HandleFunc("GET /v1/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	a.router.HandleFunc("POST /v1/level", level.Generate)
	a.router.HandleFunc("GET /v1/level/connect", level.ConnectWS)
}
