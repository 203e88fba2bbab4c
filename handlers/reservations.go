package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reservas/cron"
	"reservas/models"
	"reservas/services/reservation"
	"reservas/utils"
)

// CreateReservationHandler books a space for the authenticated user.
func CreateReservationHandler(svc reservation.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reservation.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		req.UserID = callerID(c)

		r, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondReservationError(c, err)
			return
		}
		c.JSON(http.StatusCreated, r)
	}
}

func MyReservationsHandler(svc reservation.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.GetByUser(c.Request.Context(), callerID(c))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", "")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetReservationHandler(svc reservation.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondReservationError(c, err)
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

// UpdateReservationHandler edits a pending reservation owned by the caller.
func UpdateReservationHandler(svc reservation.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reservation.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		r, err := svc.Update(c.Request.Context(), c.Param("id"), callerID(c), req)
		if err != nil {
			respondReservationError(c, err)
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

func CancelReservationHandler(svc reservation.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Reason string `json:"reason"`
		}
		// The body is optional; a missing reason is logged as such.
		_ = c.ShouldBindJSON(&input)
		if input.Reason == "" {
			input.Reason = "sin motivo registrado"
		}
		if err := svc.CancelByUser(c.Request.Context(), c.Param("id"), callerID(c), input.Reason); err != nil {
			respondReservationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}

func PendingReservationsHandler(svc reservation.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.GetPending(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list pending reservations", "")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// AllReservationsHandler lists every reservation; with space_id and date
// query parameters it narrows to one space's day.
func AllReservationsHandler(svc reservation.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		spaceID, date := c.Query("space_id"), c.Query("date")
		if (spaceID == "") != (date == "") {
			utils.JSONError(c, http.StatusBadRequest, "space_id and date must be provided together", "")
			return
		}

		var (
			list []models.Reservation
			err  error
		)
		if spaceID != "" {
			list, err = svc.GetBySpaceDate(c.Request.Context(), spaceID, date)
		} else {
			list, err = svc.GetAll(c.Request.Context())
		}
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", "")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func ApproveReservationHandler(svc reservation.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Approve(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
			respondReservationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "approved"})
	}
}

func RejectReservationHandler(svc reservation.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Reason string `json:"reason" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if err := svc.Reject(c.Request.Context(), c.Param("id"), callerID(c), input.Reason); err != nil {
			respondReservationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "rejected"})
	}
}

// DeleteReservationHandler removes a reservation with an audit trail entry.
func DeleteReservationHandler(svc reservation.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Reason string `json:"reason"`
		}
		// The body is optional; a missing reason is logged as such.
		_ = c.ShouldBindJSON(&input)
		if input.Reason == "" {
			input.Reason = "sin motivo registrado"
		}
		if err := svc.DeleteByAdmin(c.Request.Context(), c.Param("id"), callerID(c), input.Reason); err != nil {
			respondReservationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// RunRemindersHandler queues a one-off reminder sweep for a date, bypassing
// the daily schedule. An empty date sweeps the day the task runs.
func RunRemindersHandler(enq cron.SweepEnqueuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Date string `json:"date"`
		}
		_ = c.ShouldBindJSON(&input)
		if input.Date != "" {
			if _, err := time.Parse("2006-01-02", input.Date); err != nil {
				utils.JSONError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", "")
				return
			}
		}
		if err := enq.EnqueueSweep(input.Date, time.Now()); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to queue reminder sweep", "")
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
	}
}

// respondReservationError maps service sentinel errors to HTTP statuses.
func respondReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservation.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, reservation.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	case errors.Is(err, reservation.ErrConflict):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, reservation.ErrPastDate),
		errors.Is(err, reservation.ErrNotPending),
		errors.Is(err, reservation.ErrReasonTooShort),
		errors.Is(err, reservation.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
