package domain

import "testing"

func TestRequestCancelFromConfirmedKeepsPayment(t *testing.T) {
	tr, err := NextTransition(StatusConfirmed, EventRequestCancel, ActorCustomer)
	if err != nil {
		t.Fatalf("expected transition, got %v", err)
	}
	if tr.To != StatusPendingCancellation {
		t.Fatalf("unexpected target %s", tr.To)
	}
	if tr.Payment != nil {
		t.Fatalf("request cancel must not touch payment status")
	}
}

func TestApproveCancelRefunds(t *testing.T) {
	tr, err := NextTransition(StatusPendingCancellation, EventApproveCancel, ActorAdmin)
	if err != nil {
		t.Fatalf("expected transition, got %v", err)
	}
	if tr.To != StatusCancelled {
		t.Fatalf("unexpected target %s", tr.To)
	}
	if tr.Payment == nil || *tr.Payment != PaymentRefunded {
		t.Fatalf("approve must set payment refunded, got %v", tr.Payment)
	}
}

func TestRejectCancelLeavesPayment(t *testing.T) {
	tr, err := NextTransition(StatusPendingCancellation, EventRejectCancel, ActorAdmin)
	if err != nil {
		t.Fatalf("expected transition, got %v", err)
	}
	if tr.To != StatusCancellationRejected {
		t.Fatalf("unexpected target %s", tr.To)
	}
	if tr.Payment != nil {
		t.Fatalf("reject must not touch payment status")
	}
}

func TestApproveOnAlreadyCancelledIsConflict(t *testing.T) {
	_, err := NextTransition(StatusCancelled, EventApproveCancel, ActorAdmin)
	if err == nil {
		t.Fatalf("expected conflict")
	}
	if !IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestCustomerCannotResolvePendingCancellation(t *testing.T) {
	_, err := NextTransition(StatusPendingCancellation, EventApproveCancel, ActorCustomer)
	if err == nil || !IsValidation(err) {
		t.Fatalf("expected validation error for wrong actor, got %v", err)
	}
}

func TestPendingCancellationHasExactlyTwoAdminEdges(t *testing.T) {
	events := AllowedEvents(StatusPendingCancellation, ActorAdmin)
	if len(events) != 2 {
		t.Fatalf("expected approve+reject only, got %v", events)
	}
	seen := map[BookingEvent]bool{}
	for _, ev := range events {
		seen[ev] = true
	}
	if !seen[EventApproveCancel] || !seen[EventRejectCancel] {
		t.Fatalf("missing approve/reject, got %v", events)
	}
}

func TestNoEdgeFromPendingCancellationToCompleted(t *testing.T) {
	_, err := NextTransition(StatusPendingCancellation, EventComplete, ActorScheduler)
	if err == nil {
		t.Fatalf("pending_cancellation must not complete directly")
	}
}

func TestTerminalStatesNeverOfferRequestCancel(t *testing.T) {
	for _, st := range []BookingStatus{StatusCancelled, StatusCompleted, StatusCancellationRejected, StatusPendingCancellation} {
		if CanRequestCancel(st) {
			t.Fatalf("%s should not offer request cancel", st)
		}
		for _, ev := range AllowedEvents(st, ActorCustomer) {
			if ev == EventRequestCancel {
				t.Fatalf("%s exposes request_cancel via AllowedEvents", st)
			}
		}
	}
}

func TestPaymentSucceededOnlyFromPending(t *testing.T) {
	if _, err := NextTransition(StatusPending, EventPaymentSucceeded, ActorPayment); err != nil {
		t.Fatalf("pending should accept payment, got %v", err)
	}
	if _, err := NextTransition(StatusConfirmed, EventPaymentSucceeded, ActorPayment); err == nil {
		t.Fatalf("double payment should conflict")
	}
}
