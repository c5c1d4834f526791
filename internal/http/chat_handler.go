package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"empath-llm/internal/domain"
	"empath-llm/internal/service"
)

// ChatHandler mantiene dependencias para endpoints de sesiones y mensajes.
type ChatHandler struct {
	logger   *zap.Logger
	chatServ *service.ChatService
	cultures *domain.CultureRegistry
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, chatServ *service.ChatService, cultures *domain.CultureRegistry) *ChatHandler {
	return &ChatHandler{
		logger:   logger,
		chatServ: chatServ,
		cultures: cultures,
	}
}

// CreateSession maneja POST /session.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req struct {
		CulturalContext string `json:"cultural_context"`
	}
	// Body vacio es valido: sesion con contexto default.
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.logger.Warn("invalid create session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.CulturalContext != "" && !h.cultures.Has(req.CulturalContext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown cultural context"})
		return
	}

	session := h.chatServ.Sessions().Create(req.CulturalContext)

	c.JSON(http.StatusCreated, gin.H{
		"session_id":       session.ID,
		"cultural_context": session.CulturalContext(),
		"created_at":       session.CreatedAt,
	})
}

// UpdateContext maneja PUT /session/:id/context.
func (h *ChatHandler) UpdateContext(c *gin.Context) {
	var req struct {
		CulturalContext string `json:"cultural_context" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update context request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !h.cultures.Has(req.CulturalContext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown cultural context"})
		return
	}

	session, err := h.chatServ.Sessions().Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	session.SetCulturalContext(req.CulturalContext)
	c.JSON(http.StatusOK, gin.H{
		"session_id":       session.ID,
		"cultural_context": req.CulturalContext,
	})
}

// PostMessage maneja POST /message.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req struct {
		SessionID       string `json:"session_id" binding:"required"`
		Content         string `json:"content" binding:"required"`
		CulturalContext string `json:"cultural_context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid post message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.chatServ.ProcessMessage(c.Request.Context(), req.SessionID, req.Content, req.CulturalContext)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error("process message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process message"})
		return
	}

	c.JSON(http.StatusCreated, result)
}
