package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservas/services/notification"
	"reservas/utils"
)

func MyNotificationsHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.GetForUser(c.Request.Context(), callerID(c))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", "")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func MarkNotificationReadHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to mark notification read", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
