package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/blockslide-server/internal/blocks"
	"github.com/vancomm/blockslide-server/internal/config"
)

// LevelHandler serves level generation over HTTP and websocket. Each
// request runs its own pipeline with fresh grid and RNG state, so no
// locking is needed between concurrent requests.
type LevelHandler struct {
	logger *slog.Logger
	ws     *config.WebSocket
	board  blocks.BoardConfig
}

func NewLevelHandler(
	logger *slog.Logger,
	ws *config.WebSocket,
	board blocks.BoardConfig,
) *LevelHandler {
	return &LevelHandler{
		logger: logger,
		ws:     ws,
		board:  board,
	}
}

func (h LevelHandler) Generate(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseGenerateLevelDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}
	if dto.Level < 1 {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(fmt.Errorf("level must be >= 1")))
		return
	}

	resp := h.generate(dto.RequestID, dto.Level, dto.Width, dto.Height)
	if _, failed := resp.(*LevelErrorDTO); failed {
		w.WriteHeader(http.StatusInternalServerError)
	}
	sendJSONOrLog(w, h.logger, resp)
}

// ConnectWS upgrades the connection and answers generate frames until the
// peer hangs up. Frames are handled one at a time: at most one in-flight
// computation per connection.
func (h LevelHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", slog.Any("error", err))
		return
	}
	defer c.Close()

	for {
		var req GenerateRequest
		if err := c.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read failed", slog.Any("error", err))
			}
			return
		}

		var resp any
		switch req.Type {
		case "generate":
			if req.LevelNumber < 1 {
				resp = NewLevelErrorDTO(req.RequestID, req.LevelNumber,
					errors.New("levelNumber must be >= 1"))
			} else {
				resp = h.generate(req.RequestID, req.LevelNumber, req.ScreenWidth, req.ScreenHeight)
			}
		default:
			resp = NewLevelErrorDTO(req.RequestID, req.LevelNumber,
				fmt.Errorf("unknown request type %q", req.Type))
		}

		if err := c.WriteJSON(resp); err != nil {
			h.logger.Error("websocket write failed", slog.Any("error", err))
			return
		}
	}
}

// generate runs the pipeline and maps the outcome to a response frame.
// Degenerate dimensions come back as a well-formed empty level; only
// internal failures become error frames.
func (h LevelHandler) generate(requestID string, level int, width, height float64) any {
	start := time.Now()
	res, err := blocks.GenerateLevel(level, width, height, h.board)
	duration := time.Since(start)
	if err != nil {
		h.logger.Error(
			"level generation failed",
			slog.Int("level", level),
			slog.Any("error", err),
		)
		return NewLevelErrorDTO(requestID, level, err)
	}

	h.logger.Info(
		"level generated",
		slog.Int("level", level),
		slog.Int("blocks", res.Total),
		slog.Bool("accepted", res.Accepted),
		slog.Float64("score", res.Score),
		slog.Int64("duration (ms)", duration.Milliseconds()),
	)
	return NewLevelReadyDTO(requestID, level, res, duration.Milliseconds())
}
