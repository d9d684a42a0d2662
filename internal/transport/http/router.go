package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-ai/internal/transport/http/middleware"
)

func NewRouter(h *GameHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	router.POST("/new_game", h.NewGame)
	router.POST("/make_move", h.MakeMove)
	router.POST("/reset_stats", h.ResetStats)
	router.GET("/stats", h.Stats)
	router.GET("/state", h.State)
	router.GET("/history", h.History)

	return router
}
