package domain

import "fmt"

// BookingStatus is the authoritative lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending              BookingStatus = "pending"
	StatusConfirmed            BookingStatus = "confirmed"
	StatusCompleted            BookingStatus = "completed"
	StatusPendingCancellation  BookingStatus = "pending_cancellation"
	StatusCancelled            BookingStatus = "cancelled"
	StatusCancellationRejected BookingStatus = "cancellation_rejected"
)

// PaymentStatus moves together with BookingStatus; the pair is always
// persisted in one statement so a refund can never land on a pending row.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Actor identifies who is driving a lifecycle event.
type Actor string

const (
	ActorCustomer  Actor = "customer"
	ActorAdmin     Actor = "admin"
	ActorPayment   Actor = "payment"
	ActorScheduler Actor = "scheduler"
)

// BookingEvent is a lifecycle trigger.
type BookingEvent string

const (
	EventPaymentSucceeded BookingEvent = "payment_succeeded"
	EventRequestCancel    BookingEvent = "request_cancel"
	EventApproveCancel    BookingEvent = "approve_cancel"
	EventRejectCancel     BookingEvent = "reject_cancel"
	EventComplete         BookingEvent = "complete"
)

// Transition is the outcome of a lifecycle event. Payment stays nil when the
// event does not touch payment status.
type Transition struct {
	From    BookingStatus
	To      BookingStatus
	Payment *PaymentStatus
}

type transitionRule struct {
	from    []BookingStatus
	actor   Actor
	to      BookingStatus
	payment *PaymentStatus
}

func paymentPtr(p PaymentStatus) *PaymentStatus { return &p }

var transitionRules = map[BookingEvent]transitionRule{
	EventPaymentSucceeded: {
		from:    []BookingStatus{StatusPending},
		actor:   ActorPayment,
		to:      StatusConfirmed,
		payment: paymentPtr(PaymentPaid),
	},
	EventRequestCancel: {
		from:  []BookingStatus{StatusPending, StatusConfirmed},
		actor: ActorCustomer,
		to:    StatusPendingCancellation,
	},
	EventApproveCancel: {
		from:    []BookingStatus{StatusPendingCancellation},
		actor:   ActorAdmin,
		to:      StatusCancelled,
		payment: paymentPtr(PaymentRefunded),
	},
	EventRejectCancel: {
		from:  []BookingStatus{StatusPendingCancellation},
		actor: ActorAdmin,
		to:    StatusCancellationRejected,
	},
	EventComplete: {
		from:  []BookingStatus{StatusConfirmed},
		actor: ActorScheduler,
		to:    StatusCompleted,
	},
}

// NextTransition resolves one lifecycle step. Wrong actor is a validation
// problem; wrong origin state is a conflict and the caller must re-fetch the
// authoritative booking before retrying.
func NextTransition(current BookingStatus, event BookingEvent, actor Actor) (Transition, error) {
	rule, ok := transitionRules[event]
	if !ok {
		return Transition{}, ValidationError{Field: "event", Msg: fmt.Sprintf("event %q tidak dikenal", event)}
	}
	if actor != rule.actor {
		return Transition{}, ValidationError{
			Field: "actor",
			Msg:   fmt.Sprintf("event %s hanya boleh oleh %s", event, rule.actor),
		}
	}
	for _, from := range rule.from {
		if current == from {
			return Transition{From: current, To: rule.to, Payment: rule.payment}, nil
		}
	}
	return Transition{}, ConflictError{
		Resource: "booking",
		Msg:      fmt.Sprintf("status saat ini %s, tidak bisa %s", current, event),
	}
}

// CanRequestCancel reports whether the cancel-request action may be offered.
// Terminal states (cancelled, completed, cancellation_rejected) and an already
// pending request never get the action again.
func CanRequestCancel(current BookingStatus) bool {
	return current == StatusPending || current == StatusConfirmed
}

// AllowedEvents lists lifecycle events available to an actor from a state.
// Status displays use this so a stale client can reconcile before acting.
func AllowedEvents(current BookingStatus, actor Actor) []BookingEvent {
	out := []BookingEvent{}
	for _, ev := range []BookingEvent{
		EventPaymentSucceeded,
		EventRequestCancel,
		EventApproveCancel,
		EventRejectCancel,
		EventComplete,
	} {
		if _, err := NextTransition(current, ev, actor); err == nil {
			out = append(out, ev)
		}
	}
	return out
}

// IsTerminal reports states with no outgoing customer/admin edge.
func IsTerminal(current BookingStatus) bool {
	switch current {
	case StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// ValidStatus guards status strings coming from the store or from clients.
func ValidStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted,
		StatusPendingCancellation, StatusCancelled, StatusCancellationRejected:
		return true
	default:
		return false
	}
}
