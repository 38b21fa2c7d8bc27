package models

// BookingAmounts holds the persisted money columns of a booking. All values
// are whole Rupiah computed server-side at creation time.
type BookingAmounts struct {
	Base     int64 `json:"base"`
	Baggage  int64 `json:"baggage"`
	Meal     int64 `json:"meal"`
	Discount int64 `json:"discount"`
	Tax      int64 `json:"tax"`
	Final    int64 `json:"final"`
}

// Booking is the persisted aggregate. The store owns the status pair; clients
// only cache a projection of it.
type Booking struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	UserID    int64  `json:"user_id"`

	TripType       string `json:"trip_type"` // one_way / round_trip
	OutboundFlight string `json:"outbound_flight"`
	ReturnFlight   string `json:"return_flight,omitempty"`
	FareClass      string `json:"fare_class"`

	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`

	Amounts BookingAmounts `json:"amounts"`

	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`

	CancellationReason string `json:"cancellation_reason,omitempty"`
	PromoCode          string `json:"promo_code,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`

	Passengers []BookingPassenger `json:"passengers,omitempty"`
	Payments   []Payment          `json:"payments,omitempty"`
}

// BookingPassenger is one seat on the booking with its ancillary picks
// flattened into persisted totals per leg.
type BookingPassenger struct {
	ID        int64  `json:"id"`
	BookingID int64  `json:"booking_id"`
	Type      string `json:"type"` // adult / child / infant
	Name      string `json:"name"`

	BaggageOutboundID int64 `json:"baggage_outbound_id,omitempty"`
	BaggageReturnID   int64 `json:"baggage_return_id,omitempty"`
	AncillaryOutbound int64 `json:"ancillary_outbound"`
	AncillaryReturn   int64 `json:"ancillary_return"`
}

// Payment is one recorded payment attempt/settlement for a booking.
type Payment struct {
	ID             int64  `json:"id"`
	BookingID      int64  `json:"booking_id"`
	IdempotencyKey string `json:"idempotency_key"`
	Method         string `json:"method"`
	Amount         int64  `json:"amount"`
	Status         string `json:"status"`
	ProofFile      string `json:"proof_file,omitempty"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// BookingFilter narrows admin list queries.
type BookingFilter struct {
	Status        string
	PaymentStatus string
	Reference     string
	UserID        int64
}
