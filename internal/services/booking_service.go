package services

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	intconfig "flightdesk/internal/config"
	"flightdesk/internal/domain"
	"flightdesk/internal/domain/models"
	"flightdesk/internal/draft"
	"flightdesk/internal/metrics"
	"flightdesk/internal/repositories"
	"flightdesk/internal/utils"

	"github.com/google/uuid"
)

// referenceAlphabet skips ambiguous characters (0/O, 1/I) in PNR codes.
const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewReference derives a 6-char PNR from a fresh uuid.
func NewReference() string {
	id := uuid.New()
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteByte(referenceAlphabet[int(id[i])%len(referenceAlphabet)])
	}
	return b.String()
}

// BookingService creates bookings from finalized drafts and serves detail
// views with the actions the current status allows.
type BookingService struct {
	BookingRepo repositories.BookingRepo
	PaymentRepo repositories.PaymentRepo
	RefRepo     repositories.ReferenceRepo
	QuoteSvc    QuoteService
	DraftStore  draft.Store
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepo {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepo{DB: s.db()}
}

func (s BookingService) payments() repositories.PaymentRepo {
	if s.PaymentRepo.DB != nil {
		return s.PaymentRepo
	}
	return repositories.PaymentRepo{DB: s.db()}
}

func (s BookingService) refs() repositories.ReferenceRepo {
	if s.RefRepo.DB != nil {
		return s.RefRepo
	}
	return repositories.ReferenceRepo{DB: s.db()}
}

// CreateFromDraft validates the draft, recomputes amounts server-side and
// persists the booking in its initial state. The submitted quote from the
// client is display-only; the store only ever records what we compute here.
func (s BookingService) CreateFromDraft(userID int64, it draft.Itinerary) (models.Booking, error) {
	if err := it.Validate(); err != nil {
		return models.Booking{}, err
	}

	quoteSvc := s.QuoteSvc
	quoteSvc.RequestID = s.RequestID
	breakdown, perPax, err := quoteSvc.QuoteDetailed(it)
	if err != nil {
		return models.Booking{}, err
	}
	if breakdown.Total <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "itinerary", Msg: "harga belum bisa dihitung"}
	}

	amounts := models.BookingAmounts{
		Base:    breakdown.BaseFare(),
		Baggage: breakdown.BaggageOutbound + breakdown.BaggageReturn,
		Meal:    breakdown.MealOutbound + breakdown.MealReturn,
	}

	if it.PromoCode != "" {
		if promo, err := s.refs().GetActivePromotion(it.PromoCode); err == nil {
			amounts.Discount = discountFor(promo, breakdown.Total)
		}
		// kode promo tidak valid: diabaikan, bukan error
	}

	amounts.Final = amounts.Base + amounts.Baggage + amounts.Meal + amounts.Tax - amounts.Discount
	if amounts.Final < 0 {
		amounts.Final = 0
	}

	tripType := "one_way"
	returnFlight := ""
	if it.RoundTrip() {
		tripType = "round_trip"
		returnFlight = strconv.FormatInt(it.ReturnFlightID, 10)
	}

	passengers := make([]models.BookingPassenger, 0, len(it.Passengers))
	for i, p := range it.Passengers {
		bp := models.BookingPassenger{
			Type:              p.Type,
			Name:              utils.NormalizeSpace(p.Name),
			BaggageOutboundID: p.Outbound.BaggageID,
			BaggageReturnID:   p.Return.BaggageID,
		}
		// perPax berbaris sejajar dengan roster draft.
		if i < len(perPax) {
			bp.AncillaryOutbound = perPax[i].Outbound
			bp.AncillaryReturn = perPax[i].Return
		}
		passengers = append(passengers, bp)
	}

	b := models.Booking{
		Reference:      NewReference(),
		UserID:         userID,
		TripType:       tripType,
		OutboundFlight: strconv.FormatInt(it.OutboundFlightID, 10),
		ReturnFlight:   returnFlight,
		FareClass:      strconv.FormatInt(it.FarePackageID, 10),
		Status:         string(domain.StatusPending),
		PaymentStatus:  string(domain.PaymentUnpaid),
		Amounts:        amounts,
		ContactName:    strings.TrimSpace(it.ContactName),
		ContactPhone:   strings.TrimSpace(it.ContactPhone),
		ContactEmail:   strings.TrimSpace(it.ContactEmail),
		PromoCode:      strings.ToUpper(strings.TrimSpace(it.PromoCode)),
		Passengers:     passengers,
	}

	id, err := s.bookings().Create(b)
	if err != nil {
		return models.Booking{}, err
	}
	b.ID = id

	metrics.BookingsCreated.Inc()
	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("id=%d ref=%s final=%d", id, b.Reference, amounts.Final))
	return b, nil
}

// Detail loads the booking with roster and payments plus the lifecycle
// actions available to the given actor from the authoritative state.
func (s BookingService) Detail(id int64, actor domain.Actor) (models.Booking, []domain.BookingEvent, error) {
	b, err := s.bookings().GetByID(id)
	if err != nil {
		return models.Booking{}, nil, err
	}
	if passengers, err := s.bookings().ListPassengers(id); err == nil {
		b.Passengers = passengers
	}
	if payments, err := s.payments().ListByBooking(id); err == nil {
		b.Payments = payments
	}
	return b, domain.AllowedEvents(domain.BookingStatus(b.Status), actor), nil
}

func discountFor(p models.Promotion, total int64) int64 {
	var d int64
	if p.FlatAmount > 0 {
		d = p.FlatAmount
	} else if p.Percent > 0 {
		d = total * int64(p.Percent) / 100
	}
	if d > total {
		d = total
	}
	if d < 0 {
		d = 0
	}
	return d
}
