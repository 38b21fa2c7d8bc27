package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "flightdesk/internal/config"
	"flightdesk/internal/domain"
	"flightdesk/internal/domain/models"
	"flightdesk/internal/metrics"
	"flightdesk/internal/repositories"
	"flightdesk/internal/utils"

	"github.com/google/uuid"
)

// LifecycleService drives booking status transitions. Every transition is
// resolved against the authoritative stored status and applied with an
// optimistic precondition, so two actors racing on the same booking can
// never both win; the loser sees a conflict and must re-fetch.
type LifecycleService struct {
	BookingRepo repositories.BookingRepo
	PaymentRepo repositories.PaymentRepo
	DB          *sql.DB
	RequestID   string
}

func (s LifecycleService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s LifecycleService) bookings() repositories.BookingRepo {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepo{DB: s.db()}
}

func (s LifecycleService) payments() repositories.PaymentRepo {
	if s.PaymentRepo.DB != nil {
		return s.PaymentRepo
	}
	return repositories.PaymentRepo{DB: s.db()}
}

// apply reads the current status, resolves the transition and persists it.
func (s LifecycleService) apply(bookingID int64, event domain.BookingEvent, actor domain.Actor, reason *string) (models.Booking, error) {
	b, err := s.bookings().GetByID(bookingID)
	if err != nil {
		metrics.LifecycleTransitions.WithLabelValues(string(event), "error").Inc()
		return models.Booking{}, err
	}

	tr, err := domain.NextTransition(domain.BookingStatus(b.Status), event, actor)
	if err != nil {
		metrics.LifecycleTransitions.WithLabelValues(string(event), "rejected").Inc()
		return models.Booking{}, err
	}

	if err := s.bookings().UpdateStatusIf(bookingID, tr, reason); err != nil {
		metrics.LifecycleTransitions.WithLabelValues(string(event), "conflict").Inc()
		return models.Booking{}, err
	}

	metrics.LifecycleTransitions.WithLabelValues(string(event), "applied").Inc()
	utils.LogEvent(s.RequestID, "lifecycle", string(event),
		fmt.Sprintf("booking_id=%d %s->%s", bookingID, tr.From, tr.To))

	return s.bookings().GetByID(bookingID)
}

// ConfirmPayment moves pending -> confirmed/paid and records the payment.
// The payment row is written after the status flip: a duplicate idempotency
// key or a status conflict both leave the booking unpaid exactly once. The
// recorded row rides back on Booking.Payments; an empty slice tells the
// caller the settlement record is missing and needs operator follow-up.
func (s LifecycleService) ConfirmPayment(bookingID int64, method, proofFile, idempotencyKey string) (models.Booking, error) {
	b, err := s.apply(bookingID, domain.EventPaymentSucceeded, domain.ActorPayment, nil)
	if err != nil {
		return models.Booking{}, err
	}

	key := strings.TrimSpace(idempotencyKey)
	if key == "" {
		key = uuid.NewString()
	}
	p := models.Payment{
		BookingID:      bookingID,
		IdempotencyKey: key,
		Method:         method,
		Amount:         b.Amounts.Final,
		Status:         "settled",
		ProofFile:      proofFile,
	}
	id, err := s.payments().Add(p)
	if err != nil {
		utils.LogEvent(s.RequestID, "lifecycle", "payment_record",
			fmt.Sprintf("booking_id=%d warning: %v", bookingID, err))
		return b, nil
	}
	p.ID = id
	b.Payments = append(b.Payments, p)
	return b, nil
}

// RequestCancellation is the customer edge pending|confirmed ->
// pending_cancellation. The reason is recorded on the booking.
func (s LifecycleService) RequestCancellation(bookingID int64, reason string) (models.Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.Booking{}, domain.ValidationError{Field: "reason", Msg: "alasan pembatalan wajib diisi"}
	}
	return s.apply(bookingID, domain.EventRequestCancel, domain.ActorCustomer, &reason)
}

// ApproveCancellation resolves a pending request: cancelled + refunded, with
// the admin note overwriting the customer reason.
func (s LifecycleService) ApproveCancellation(bookingID int64, note string) (models.Booking, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		note = "disetujui admin"
	}
	return s.apply(bookingID, domain.EventApproveCancel, domain.ActorAdmin, &note)
}

// RejectCancellation resolves a pending request the other way; payment status
// is untouched.
func (s LifecycleService) RejectCancellation(bookingID int64, note string) (models.Booking, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		note = "ditolak admin"
	}
	return s.apply(bookingID, domain.EventRejectCancel, domain.ActorAdmin, &note)
}

// Complete marks a flown trip, driven by the external scheduler.
func (s LifecycleService) Complete(bookingID int64) (models.Booking, error) {
	return s.apply(bookingID, domain.EventComplete, domain.ActorScheduler, nil)
}
