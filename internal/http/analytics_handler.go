package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"empath-llm/internal/service"
)

// AnalyticsHandler expone las consultas de tendencia y resumen por sesion.
type AnalyticsHandler struct {
	logger   *zap.Logger
	chatServ *service.ChatService
}

// NewAnalyticsHandler crea una instancia de AnalyticsHandler.
func NewAnalyticsHandler(logger *zap.Logger, chatServ *service.ChatService) *AnalyticsHandler {
	return &AnalyticsHandler{logger: logger, chatServ: chatServ}
}

// GetTrends maneja GET /session/:id/trends.
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	insights, err := h.chatServ.EmotionTrends(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error("trend analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze trends"})
		return
	}

	c.JSON(http.StatusOK, insights)
}

// GetSummary maneja GET /session/:id/summary.
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.chatServ.ConversationSummary(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error("summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
