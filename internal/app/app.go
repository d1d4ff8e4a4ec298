package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/blockslide-server/internal/blocks"
	"github.com/vancomm/blockslide-server/internal/config"
	"github.com/vancomm/blockslide-server/internal/middleware"
)

type App struct {
	logger *slog.Logger
	router *http.ServeMux
	board  blocks.BoardConfig
	ws     *config.WebSocket
}

func New(logger *slog.Logger) *App {
	if config.Development() {
		blocks.Log.SetLevel(logrus.DebugLevel)
	}
	return &App{
		logger: logger,
		router: http.NewServeMux(),
		board:  blocks.DefaultBoardConfig(),
	}
}

func (a *App) Start(ctx context.Context) error {
	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	a.loadRoutes()

	var handler http.Handler = a.router
	basePath := config.BasePath()
	if basePath != "" {
		prefixed := http.NewServeMux()
		prefixed.Handle(basePath+"/", http.StripPrefix(basePath, a.router))
		handler = prefixed
	}

	addr := ":" + config.Port()
	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			handler,
			middleware.Logging(a.logger),
			middleware.Cors(),
		),
	}

	a.logger.Info("server listening",
		slog.String("addr", addr), slog.String("base path", basePath))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
