package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	"github.com/rs/zerolog/log"
)

type GameHandler struct {
	Service *game.Service
}

func NewGameHandler(svc *game.Service) *GameHandler {
	return &GameHandler{Service: svc}
}

type newGameRequest struct {
	Difficulty string `json:"difficulty"`
}

type moveRequest struct {
	Column *int `json:"column"`
}

type newGameResponse struct {
	GameID        string       `json:"game_id"`
	Board         [][]int      `json:"board"`
	CurrentPlayer int          `json:"current_player"`
	Difficulty    string       `json:"difficulty"`
	Message       string       `json:"message"`
	Stats         domain.Tally `json:"stats"`
}

type moveResponse struct {
	Board          [][]int      `json:"board"`
	Winner         *int         `json:"winner,omitempty"`
	AIMove         *int         `json:"ai_move,omitempty"`
	CurrentPlayer  int          `json:"current_player,omitempty"`
	Message        string       `json:"message"`
	ThinkingTime   *float64     `json:"thinking_time,omitempty"`
	NodesEvaluated *uint64      `json:"nodes_evaluated,omitempty"`
	Moves          int          `json:"moves"`
	Time           float64      `json:"time"`
	Stats          domain.Tally `json:"stats"`
}

type stateResponse struct {
	GameID        string       `json:"game_id"`
	Board         [][]int      `json:"board"`
	CurrentPlayer int          `json:"current_player"`
	MoveCount     int          `json:"move_count"`
	GameEnded     bool         `json:"game_ended"`
	Winner        int          `json:"winner"`
	Difficulty    string       `json:"difficulty"`
	Depth         int          `json:"depth"`
	Stats         domain.Tally `json:"stats"`
}

func (h *GameHandler) NewGame(c *gin.Context) {
	var req newGameRequest
	// an empty body starts a game at the default difficulty
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	state, err := h.Service.NewGame(c.Request.Context(), req.Difficulty)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse{
		GameID:        state.GameID,
		Board:         state.Board,
		CurrentPlayer: int(state.CurrentPlayer),
		Difficulty:    state.Difficulty,
		Message:       "New game started! Your move!",
		Stats:         state.Tally,
	})
}

func (h *GameHandler) MakeMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Column == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid move!"})
		return
	}

	out, err := h.Service.MakeMove(c.Request.Context(), *req.Column)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := moveResponse{
		Board:   out.Board,
		Moves:   out.Moves,
		Time:    round(out.Duration.Seconds(), 1),
		Stats:   out.Tally,
		Message: moveMessage(out),
	}
	if out.AIMove >= 0 {
		aiMove := out.AIMove
		resp.AIMove = &aiMove
	}
	if out.Search != nil {
		thinking := round(out.Search.Elapsed.Seconds(), 2)
		nodes := out.Search.Nodes
		resp.ThinkingTime = &thinking
		resp.NodesEvaluated = &nodes
	}
	if out.GameOver {
		winner := int(out.Winner)
		resp.Winner = &winner
	} else {
		resp.CurrentPlayer = int(domain.Human)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *GameHandler) State(c *gin.Context) {
	state, err := h.Service.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stateResponse{
		GameID:        state.GameID,
		Board:         state.Board,
		CurrentPlayer: int(state.CurrentPlayer),
		MoveCount:     state.MoveCount,
		GameEnded:     state.Ended,
		Winner:        int(state.Winner),
		Difficulty:    state.Difficulty,
		Depth:         state.Depth,
		Stats:         state.Tally,
	})
}

func (h *GameHandler) Stats(c *gin.Context) {
	tally, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tally)
}

func (h *GameHandler) ResetStats(c *gin.Context) {
	tally, err := h.Service.ResetStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Stats reset successfully! 🔄",
		"stats":   tally,
	})
}

func moveMessage(out *game.MoveOutcome) string {
	switch {
	case out.GameOver && out.Winner == domain.Human:
		return "🎉 Congratulations! You won! Ready for another round?"
	case out.GameOver && out.Winner == domain.Bot:
		return "🤖 AI wins this round! Don't give up, try again!"
	case out.GameOver && out.AIMove < 0:
		return "It's a draw! Excellent game! 🤝"
	case out.GameOver:
		return "It's a draw! Great game! 🤝"
	default:
		return fmt.Sprintf("AI played column %d. Your turn!", out.AIMove+1)
	}
}

// writeError maps game errors to the messages the board UI shows. Anything
// else is a storage failure.
func writeError(c *gin.Context, err error) {
	var msg string
	switch {
	case errors.Is(err, domain.ErrNoGame):
		msg = "Please start a new game first!"
	case errors.Is(err, domain.ErrGameOver):
		msg = "Game has ended! Start a new game."
	case errors.Is(err, domain.ErrInvalidMove), errors.Is(err, domain.ErrColumnFull):
		msg = "Invalid move!"
	case errors.Is(err, domain.ErrInvalidLevel):
		msg = "Unknown difficulty! Choose easy, medium or hard."
	default:
		log.Error().Err(err).Str("component", "http").Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
