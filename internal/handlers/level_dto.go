package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/blockslide-server/internal/blocks"
)

type GenerateLevelDTO struct {
	Level     int     `schema:"level,required"`
	Width     float64 `schema:"width,required"`
	Height    float64 `schema:"height,required"`
	RequestID string  `schema:"request_id"`
}

func ParseGenerateLevelDTO(src map[string][]string) (GenerateLevelDTO, error) {
	var dto GenerateLevelDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// GenerateRequest is the websocket request frame.
type GenerateRequest struct {
	Type         string  `json:"type"`
	LevelNumber  int     `json:"levelNumber"`
	ScreenWidth  float64 `json:"screenWidth"`
	ScreenHeight float64 `json:"screenHeight"`
	RequestID    string  `json:"requestId"`
}

type LevelDataDTO struct {
	Blocks []*blocks.Block `json:"blocks"`
	Total  int             `json:"total"`
}

type LevelReadyDTO struct {
	Type        string       `json:"type"`
	RequestID   string       `json:"requestId,omitempty"`
	LevelNumber int          `json:"levelNumber"`
	LevelData   LevelDataDTO `json:"levelData"`
	Duration    int64        `json:"duration"`
}

type LevelErrorDTO struct {
	Type        string `json:"type"`
	RequestID   string `json:"requestId,omitempty"`
	LevelNumber int    `json:"levelNumber"`
	Error       string `json:"error"`
}

func NewLevelReadyDTO(requestID string, level int, res *blocks.GenResult, durationMs int64) *LevelReadyDTO {
	bl := res.Blocks
	if bl == nil {
		bl = []*blocks.Block{}
	}
	return &LevelReadyDTO{
		Type:        "levelReady",
		RequestID:   requestID,
		LevelNumber: level,
		LevelData:   LevelDataDTO{Blocks: bl, Total: res.Total},
		Duration:    durationMs,
	}
}

func NewLevelErrorDTO(requestID string, level int, err error) *LevelErrorDTO {
	return &LevelErrorDTO{
		Type:        "error",
		RequestID:   requestID,
		LevelNumber: level,
		Error:       err.Error(),
	}
}
