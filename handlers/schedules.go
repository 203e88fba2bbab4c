package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reservas/models"
	"reservas/services/schedule"
	"reservas/utils"
)

type scheduleInput struct {
	SpaceID     string `json:"space_id" binding:"required"`
	Weekday     *int   `json:"weekday" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Description string `json:"description"`
}

func (in scheduleInput) toModel() models.ClassSchedule {
	return models.ClassSchedule{
		SpaceID:     in.SpaceID,
		Weekday:     *in.Weekday,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Description: in.Description,
	}
}

// ListSchedulesHandler lists class blocks, optionally filtered by space
// and/or weekday.
func ListSchedulesHandler(svc schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		weekday := -1
		if w := c.Query("weekday"); w != "" {
			parsed, err := strconv.Atoi(w)
			if err != nil || parsed < 0 || parsed > 6 {
				utils.JSONError(c, http.StatusBadRequest, "weekday must be 0-6 (Monday=0)", "")
				return
			}
			weekday = parsed
		}
		list, err := svc.List(c.Request.Context(), c.Query("space_id"), weekday)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list class schedules", "")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func CreateScheduleHandler(svc schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input scheduleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		created, err := svc.Create(c.Request.Context(), input.toModel())
		if err != nil {
			respondScheduleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func UpdateScheduleHandler(svc schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input scheduleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		updated, err := svc.Update(c.Request.Context(), c.Param("id"), input.toModel())
		if err != nil {
			respondScheduleError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteScheduleHandler(svc schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondScheduleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

func respondScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, schedule.ErrOverlap):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, schedule.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
