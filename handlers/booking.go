package handlers

import (
	"net/http"

	"taskturf/models"
	"taskturf/services/booking"
	"taskturf/services/payment"
	"taskturf/services/user"
	"taskturf/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	PaymentSvc payment.PaymentService
	UserSvc    user.UserService
	Logger     *zap.Logger
}

func NewBookingHandler(bookingSvc booking.BookingService, paymentSvc payment.PaymentService, userSvc user.UserService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		BookingSvc: bookingSvc,
		PaymentSvc: paymentSvc,
		UserSvc:    userSvc,
		Logger:     logger,
	}
}

// CreateBookingHandler submits a new service request for the customer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	// Denormalize contact details so fanout payloads do not need a join.
	actor, err := h.UserSvc.GetByID(actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	input.CustomerID = actor.ID
	input.CustomerName = actor.Name
	input.CustomerPhone = actor.Phone

	b, err := h.BookingSvc.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookingsHandler lists the caller's bookings, role-aware.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))

	var (
		bookings []models.Booking
		err      error
	)
	if actorRole(c) == models.RoleWorker {
		bookings, err = h.BookingSvc.ListForWorker(c.Request.Context(), actorID(c), status)
	} else {
		bookings, err = h.BookingSvc.ListForCustomer(c.Request.Context(), actorID(c), status)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBookingHandler fetches one booking the caller participates in.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.BookingSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if b.CustomerID != actorID(c) && b.WorkerID != actorID(c) {
		respondServiceError(c, booking.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RespondHandler records the worker's accept/reject answer.
func (h *BookingHandler) RespondHandler(c *gin.Context) {
	var input models.RespondInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.BookingID = c.Param("id")
	input.WorkerID = actorID(c)

	b, err := h.BookingSvc.WorkerRespond(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// StartHandler marks an accepted booking as in progress.
func (h *BookingHandler) StartHandler(c *gin.Context) {
	b, err := h.BookingSvc.Start(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteHandler finishes an in-progress booking.
func (h *BookingHandler) CompleteHandler(c *gin.Context) {
	var input struct {
		FinalAmount float64 `json:"finalAmount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.BookingSvc.Complete(c.Request.Context(), c.Param("id"), actorID(c), input.FinalAmount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelHandler is customer-initiated cancellation with a reason.
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	// The body is optional; cancellation with no reason is fine.
	_ = c.ShouldBindJSON(&input)

	b, err := h.BookingSvc.Cancel(c.Request.Context(), c.Param("id"), actorID(c), input.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateDetailsHandler edits schedule, description, address or urgency
// while the booking is still editable.
func (h *BookingHandler) UpdateDetailsHandler(c *gin.Context) {
	var patch models.BookingDetailsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.BookingSvc.UpdateDetails(c.Request.Context(), c.Param("id"), actorID(c), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PayHandler settles a completed booking via the payment simulator.
func (h *BookingHandler) PayHandler(c *gin.Context) {
	var input struct {
		Method string `json:"method"`
	}
	_ = c.ShouldBindJSON(&input)

	p, err := h.PaymentSvc.Pay(c.Request.Context(), c.Param("id"), actorID(c), input.Method)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
