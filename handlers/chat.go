package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"reservas/middleware"
	"reservas/services/chatbot"
	"reservas/utils"
)

// ChatHandler runs one chatbot turn. The session id travels in X-Session-ID;
// a missing id gets a fresh one, returned in the response so the client can
// keep the conversation going.
func ChatHandler(svc *chatbot.Service, store chatbot.ContextStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Question string `json:"question" binding:"required"`
			Page     int    `json:"page"`
			PageSize int    `json:"page_size"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		dctx := store.Get(c.Request.Context(), sessionID)
		resp := svc.Answer(c.Request.Context(), input.Question, dctx, input.Page, input.PageSize)

		if err := store.Set(c.Request.Context(), sessionID, resp.Context); err != nil {
			// The turn already succeeded; a lost context only costs the next
			// turn a clarification.
			logger.Warn("dialogue context save failed", zap.String("sessionID", sessionID), zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"answer":     resp.Answer,
			"kind":       resp.Kind,
			"chips":      resp.Chips,
			"data":       resp.Data,
		})
	}
}

// ChatResetHandler drops the stored dialogue context for the session.
func ChatResetHandler(store chatbot.ContextStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			utils.JSONError(c, http.StatusBadRequest, "missing X-Session-ID header", "")
			return
		}
		if err := store.Clear(c.Request.Context(), sessionID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to reset conversation", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
