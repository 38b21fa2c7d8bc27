package handlers

import (
	"net/http"
	"strings"

	"flightdesk/internal/domain"
	"flightdesk/internal/draft"
	"flightdesk/internal/http/middleware"
	"flightdesk/internal/repositories"
	"flightdesk/internal/services"
	"flightdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

// CreateBooking finalizes the session draft into a pending booking. Amounts
// are recomputed server-side; the draft is reset only after the insert
// committed.
func CreateBooking(c *gin.Context) {
	sid := SessionID(c)
	if sid == "" {
		RespondError(c, http.StatusBadRequest, "session tidak ditemukan", nil)
		return
	}

	it, err := Drafts().Get(c.Request.Context(), sid)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusBadRequest, "draft itinerary kosong", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	reqID := middleware.GetRequestID(c)
	svc := services.BookingService{RequestID: reqID}
	b, err := svc.CreateFromDraft(middleware.GetUserID(c), it)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := Drafts().Reset(c.Request.Context(), sid); err != nil {
		utils.LogEvent(reqID, "booking", "create", "draft reset warning: "+err.Error())
	}

	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// CreateBookingDirect accepts a full itinerary in the body, for API clients
// that do not keep a server-side draft.
func CreateBookingDirect(c *gin.Context) {
	var it draft.Itinerary
	if !BindJSONOrError(c, &it) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	b, err := svc.CreateFromDraft(middleware.GetUserID(c), it)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// GetBooking returns the booking detail plus the actions the customer may
// take from the authoritative state.
func GetBooking(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	b, actions, err := svc.Detail(id, domain.ActorCustomer)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":            b,
		"allowed_actions":    actions,
		"can_request_cancel": domain.CanRequestCancel(domain.BookingStatus(b.Status)),
	})
}

// GetBookingByReference looks a booking up by PNR.
func GetBookingByReference(c *gin.Context) {
	ref := strings.TrimSpace(c.Param("reference"))
	repo := repositories.BookingRepo{}

	b, err := repo.GetByReference(ref)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

// RequestCancellation handles the customer cancel request.
func RequestCancellation(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var req cancelRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.LifecycleService{RequestID: middleware.GetRequestID(c)}
	b, err := svc.RequestCancellation(id, req.Reason)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

type paymentProofRequest struct {
	Method         string `json:"method"`
	ProofFile      string `json:"proof_file"`
	IdempotencyKey string `json:"idempotency_key"`
}

// SubmitPayment is driven by the payment collaborator once the customer
// settled; it confirms the booking.
func SubmitPayment(c *gin.Context) {
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
	// payment_recorded false berarti booking confirmed tapi baris settlement
	// gagal ditulis dan perlu rekonsiliasi manual.
	c.JSON(http.StatusOK, gin.H{
		"booking":          b,
		"payment_recorded": len(b.Payments) > 0,
	})
}
