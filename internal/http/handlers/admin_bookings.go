package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"flightdesk/internal/domain"
	"flightdesk/internal/domain/models"
	"flightdesk/internal/http/middleware"
	"flightdesk/internal/repositories"
	"flightdesk/internal/services"

	"github.com/gin-gonic/gin"
)

// ListBookings serves the back-office booking list with status filters.
func ListBookings(c *gin.Context) {
	filter := models.BookingFilter{
		Status:        strings.TrimSpace(c.Query("status")),
		PaymentStatus: strings.TrimSpace(c.Query("payment_status")),
		Reference:     strings.TrimSpace(c.Query("reference")),
	}
	if filter.Status != "" && !domain.ValidStatus(filter.Status) {
		RespondError(c, http.StatusBadRequest, "status filter tidak dikenal", nil)
		return
	}
	if uid, err := strconv.ParseInt(c.Query("user_id"), 10, 64); err == nil {
		filter.UserID = uid
	}

	page := domain.Pagination{Page: 1, PageSize: 20}
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page.Page = p
	}
	if ps, err := strconv.Atoi(c.Query("page_size")); err == nil && ps > 0 {
		page.PageSize = ps
	}

	repo := repositories.BookingRepo{}
	bookings, err := repo.List(filter, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "page": page.Page})
}

// GetBookingAdmin returns the admin view with admin-scoped actions.
func GetBookingAdmin(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	b, actions, err := svc.Detail(id, domain.ActorAdmin)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "allowed_actions": actions})
}

type reviewRequest struct {
	Note string `json:"note"`
}

// ApproveCancellation resolves a pending_cancellation with a refund.
func ApproveCancellation(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req reviewRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.LifecycleService{RequestID: middleware.GetRequestID(c)}
	b, err := svc.ApproveCancellation(id, req.Note)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// RejectCancellation keeps the booking alive; payment untouched.
func RejectCancellation(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req reviewRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.LifecycleService{RequestID: middleware.GetRequestID(c)}
	b, err := svc.RejectCancellation(id, req.Note)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ConfirmPaymentAdmin lets the back office validate a manual transfer.
func ConfirmPaymentAdmin(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req paymentProofRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.LifecycleService{RequestID: middleware.GetRequestID(c)}
	b, err := svc.ConfirmPayment(id, req.Method, req.ProofFile, req.IdempotencyKey)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":          b,
		"payment_recorded": len(b.Payments) > 0,
	})
}

// CompleteBooking is called by the trip scheduler after the flight flew.
func CompleteBooking(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	svc := services.LifecycleService{RequestID: middleware.GetRequestID(c)}
	b, err := svc.Complete(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
