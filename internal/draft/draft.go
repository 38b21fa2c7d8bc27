package draft

import (
	"flightdesk/internal/domain"
	"flightdesk/internal/pricing"
)

// Itinerary is the serializable "current booking draft" a customer builds up
// across screens. It lives in the draft store keyed by session id and has no
// persistence side effects until the booking is actually created.
type Itinerary struct {
	TripType string `json:"trip_type"` // one_way / round_trip

	OutboundFlightID int64 `json:"outbound_flight_id"`
	ReturnFlightID   int64 `json:"return_flight_id,omitempty"`
	FarePackageID    int64 `json:"fare_package_id"`

	Count      pricing.PassengerCount `json:"count"`
	Passengers []DraftPassenger       `json:"passengers"`

	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
	PromoCode    string `json:"promo_code,omitempty"`
}

// DraftPassenger mirrors pricing.Passenger plus the display name.
type DraftPassenger struct {
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	Outbound DraftSelection `json:"outbound"`
	Return   DraftSelection `json:"return"`
}

type DraftSelection struct {
	BaggageID int64         `json:"baggage_id"`
	Meals     map[int64]int `json:"meals,omitempty"`
}

// RoundTrip reports whether the draft prices two legs.
func (it Itinerary) RoundTrip() bool {
	return it.TripType == "round_trip" && it.ReturnFlightID > 0
}

// Validate checks the draft is submittable: counts valid and roster length
// matching. Mid-selection drafts are allowed to be incomplete; this gate only
// runs at booking creation.
func (it Itinerary) Validate() error {
	if err := it.Count.Validate(); err != nil {
		return err
	}
	if it.FarePackageID <= 0 {
		return domain.ValidationError{Field: "fare_package_id", Msg: "paket tarif belum dipilih"}
	}
	if it.OutboundFlightID <= 0 {
		return domain.ValidationError{Field: "outbound_flight_id", Msg: "penerbangan berangkat belum dipilih"}
	}
	if it.TripType == "round_trip" && it.ReturnFlightID <= 0 {
		return domain.ValidationError{Field: "return_flight_id", Msg: "penerbangan pulang belum dipilih"}
	}
	if len(it.Passengers) != it.Count.Total() {
		return domain.ValidationError{Field: "passengers", Msg: "jumlah penumpang tidak sesuai"}
	}
	return nil
}

// PricingPassengers converts the roster into aggregator input. Unknown
// passenger types default to adult so the quote stays total.
func (it Itinerary) PricingPassengers() []pricing.Passenger {
	out := make([]pricing.Passenger, 0, len(it.Passengers))
	for _, p := range it.Passengers {
		typ := pricing.PassengerType(p.Type)
		switch typ {
		case pricing.TypeAdult, pricing.TypeChild, pricing.TypeInfant:
		default:
			typ = pricing.TypeAdult
		}
		out = append(out, pricing.Passenger{
			Type:     typ,
			Outbound: pricing.Selection{BaggageID: p.Outbound.BaggageID, Meals: p.Outbound.Meals},
			Return:   pricing.Selection{BaggageID: p.Return.BaggageID, Meals: p.Return.Meals},
		})
	}
	return out
}
