package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservas/models"
	"reservas/services/scheduling"
	"reservas/services/space"
	"reservas/utils"
)

func ListSpacesHandler(svc space.SpaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if t := c.Query("type"); t != "" {
			list, err := svc.GetByType(c.Request.Context(), models.SpaceType(t))
			if err != nil {
				utils.JSONError(c, http.StatusInternalServerError, "failed to list spaces", "")
				return
			}
			c.JSON(http.StatusOK, list)
			return
		}
		list, err := svc.GetAll(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list spaces", "")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetSpaceHandler(svc space.SpaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sp, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to fetch space", "")
			return
		}
		if sp == nil {
			utils.JSONError(c, http.StatusNotFound, "space not found", "")
			return
		}
		c.JSON(http.StatusOK, sp)
	}
}

// SpacesByFloorHandler returns all spaces grouped by floor in display order.
func SpacesByFloorHandler(svc space.SpaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := svc.GroupedByFloor(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to group spaces", "")
			return
		}
		c.JSON(http.StatusOK, groups)
	}
}

// SpaceOccupancyHandler returns the busy intervals and free blocks of one
// space for a date.
func SpaceOccupancyHandler(svc space.SpaceService, engine *scheduling.Engine, dayStart, dayEnd string) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			utils.JSONError(c, http.StatusBadRequest, "date query parameter is required (YYYY-MM-DD)", "")
			return
		}
		sp, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to fetch space", "")
			return
		}
		if sp == nil {
			utils.JSONError(c, http.StatusNotFound, "space not found", "")
			return
		}

		busy, err := engine.BusyIntervals(c.Request.Context(), sp.ID, date)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to compute occupancy", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"space":       sp,
			"date":        date,
			"busy":        busy,
			"free_blocks": scheduling.ComputeFreeBlocks(busy, dayStart, dayEnd),
		})
	}
}

func CreateSpaceHandler(svc space.SpaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name        string           `json:"name" binding:"required"`
			Type        models.SpaceType `json:"type" binding:"required"`
			Capacity    int              `json:"capacity" binding:"required"`
			Floor       models.Floor     `json:"floor"`
			Description string           `json:"description"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		sp, err := svc.Create(c.Request.Context(), input.Name, input.Type, input.Capacity, input.Description, input.Floor)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		c.JSON(http.StatusCreated, sp)
	}
}
