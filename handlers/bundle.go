package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	// Chatbot endpoints
	ChatHandler      gin.HandlerFunc
	ChatResetHandler gin.HandlerFunc

	// Space endpoints
	ListSpacesHandler     gin.HandlerFunc
	GetSpaceHandler       gin.HandlerFunc
	SpacesByFloorHandler  gin.HandlerFunc
	SpaceOccupancyHandler gin.HandlerFunc
	CreateSpaceHandler    gin.HandlerFunc

	// Reservation endpoints
	CreateReservationHandler   gin.HandlerFunc
	MyReservationsHandler      gin.HandlerFunc
	GetReservationHandler      gin.HandlerFunc
	UpdateReservationHandler   gin.HandlerFunc
	CancelReservationHandler   gin.HandlerFunc
	PendingReservationsHandler gin.HandlerFunc
	AllReservationsHandler     gin.HandlerFunc
	ApproveReservationHandler  gin.HandlerFunc
	RejectReservationHandler   gin.HandlerFunc
	DeleteReservationHandler   gin.HandlerFunc
	RunRemindersHandler        gin.HandlerFunc

	// Class schedule endpoints
	ListSchedulesHandler  gin.HandlerFunc
	CreateScheduleHandler gin.HandlerFunc
	UpdateScheduleHandler gin.HandlerFunc
	DeleteScheduleHandler gin.HandlerFunc

	// Notification endpoints
	MyNotificationsHandler      gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc
}
