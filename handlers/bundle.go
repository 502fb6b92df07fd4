package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every endpoint handler for route registration.
type HandlerBundle struct {
	// Auth endpoints.
	RegisterHandler gin.HandlerFunc
	SigninHandler   gin.HandlerFunc

	// User endpoints.
	MeHandler              gin.HandlerFunc
	UpdateProfileHandler   gin.HandlerFunc
	ChangePasswordHandler  gin.HandlerFunc
	SetAvailabilityHandler gin.HandlerFunc
	SignOutHandler         gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	RespondHandler       gin.HandlerFunc
	StartHandler         gin.HandlerFunc
	CompleteHandler      gin.HandlerFunc
	CancelHandler        gin.HandlerFunc
	UpdateDetailsHandler gin.HandlerFunc
	PayHandler           gin.HandlerFunc

	// Worker discovery.
	MatchCandidatesHandler gin.HandlerFunc

	// Notification endpoints.
	ListNotificationsHandler gin.HandlerFunc
	UnreadCountHandler       gin.HandlerFunc
	MarkReadHandler          gin.HandlerFunc
	MarkAllReadHandler       gin.HandlerFunc

	// Dashboard.
	DashboardHandler gin.HandlerFunc
}
