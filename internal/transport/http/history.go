package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-ai/internal/domain"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type gameHistoryItem struct {
	GameID          string    `json:"game_id"`
	Result          string    `json:"result"` // "win", "loss", "draw" from the human's side
	Difficulty      string    `json:"difficulty"`
	TotalMoves      int       `json:"total_moves"`
	DurationSeconds int       `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
	FinishedAt      time.Time `json:"finished_at"`
	Board           [][]int   `json:"board_state"`
}

// History lists recently finished games, newest first. ?limit= caps the count.
func (h *GameHandler) History(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	games, err := h.Service.History(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	history := make([]gameHistoryItem, 0, len(games))
	for _, g := range games {
		item := gameHistoryItem{
			GameID:          g.GameID,
			Difficulty:      g.Difficulty,
			TotalMoves:      g.TotalMoves,
			DurationSeconds: g.DurationSeconds,
			CreatedAt:       g.CreatedAt,
			FinishedAt:      g.FinishedAt,
			Board:           g.Board,
		}
		switch g.Winner {
		case domain.Human:
			item.Result = "win"
		case domain.Bot:
			item.Result = "loss"
		default:
			item.Result = "draw"
		}
		history = append(history, item)
	}

	c.JSON(http.StatusOK, history)
}
