package pricing

// InfantFare is the flat fare per infant seat-less passenger, carried
// separately from the per-seat fare. Children are billed at the full adult
// seat fare; the catalog carries no separate child price.
const InfantFare int64 = 400_000

// PassengerType tags one roster entry.
type PassengerType string

const (
	TypeAdult  PassengerType = "adult"
	TypeChild  PassengerType = "child"
	TypeInfant PassengerType = "infant"
)

// NoSelectionID is the zero-priced sentinel always present in an OptionSet,
// so a missing baggage/meal pick never errors and contributes exactly zero.
const NoSelectionID int64 = 0

// FareInput is the priced product the itinerary selected, in whole Rupiah.
type FareInput struct {
	ID                int64
	ClassType         string
	PricePerAdultSeat int64
}

// Selection is one passenger's ancillary picks for one leg.
type Selection struct {
	BaggageID int64
	Meals     map[int64]int // meal option id -> quantity
}

// Passenger is one roster entry with per-leg selections.
type Passenger struct {
	Type     PassengerType
	Outbound Selection
	Return   Selection
}

// OptionSet is a closed price lookup for one leg's ancillary options.
type OptionSet struct {
	prices map[int64]int64
}

// NewOptionSet seeds the zero-priced "no selection" sentinel.
func NewOptionSet() OptionSet {
	return OptionSet{prices: map[int64]int64{NoSelectionID: 0}}
}

// Add registers an option price. Negative prices are clamped to zero.
func (s OptionSet) Add(id, price int64) {
	if price < 0 {
		price = 0
	}
	s.prices[id] = price
}

// PriceOf resolves an option id; unknown ids price as zero so a transient
// catalog-loading race mid-selection never breaks the quote.
func (s OptionSet) PriceOf(id int64) int64 {
	if s.prices == nil {
		return 0
	}
	return s.prices[id]
}

// Len reports how many options are registered, sentinel included.
func (s OptionSet) Len() int { return len(s.prices) }

// LegOptions groups one leg's ancillary price lookups. Baggage and meal
// catalogs have independent id sequences, so each kind keeps its own set and
// a shared id can never price as the other kind.
type LegOptions struct {
	Baggage OptionSet
	Meals   OptionSet
}

// NewLegOptions seeds both kinds with their zero-priced sentinel.
func NewLegOptions() LegOptions {
	return LegOptions{Baggage: NewOptionSet(), Meals: NewOptionSet()}
}

// selectionTotal prices one passenger's picks against this leg's catalogs.
func (l LegOptions) selectionTotal(sel Selection) int64 {
	total := l.Baggage.PriceOf(sel.BaggageID)
	for id, qty := range sel.Meals {
		if qty > 0 {
			total += l.Meals.PriceOf(id) * int64(qty)
		}
	}
	return total
}

// Breakdown is the itemized quote. Derived fresh on every call, never
// mutated incrementally. Total always equals the sum of the other fields.
type Breakdown struct {
	AdultFare       int64 `json:"adult_fare"`
	ChildFare       int64 `json:"child_fare"`
	InfantFare      int64 `json:"infant_fare"`
	BaggageOutbound int64 `json:"baggage_outbound"`
	BaggageReturn   int64 `json:"baggage_return"`
	MealOutbound    int64 `json:"meal_outbound"`
	MealReturn      int64 `json:"meal_return"`
	Total           int64 `json:"total"`
}

// ComputeBreakdown aggregates fare and ancillary prices into one quote.
//
// fare == nil is the "no quote yet" state and yields an all-zero breakdown.
// ret == nil means one-way: return-leg computation is skipped entirely.
// Round-trip doubles the base fare as a whole (same fare class and passenger
// mix both ways); ancillaries stay leg-scoped and are never doubled.
//
// The function is total: missing or unresolvable input degrades to zero for
// that line item and the result is always well-formed.
func ComputeBreakdown(fare *FareInput, count PassengerCount, passengers []Passenger, outbound LegOptions, ret *LegOptions) Breakdown {
	if fare == nil {
		return Breakdown{}
	}

	b := Breakdown{
		AdultFare:  int64(count.Adults) * fare.PricePerAdultSeat,
		ChildFare:  int64(count.Children) * fare.PricePerAdultSeat,
		InfantFare: int64(count.Infants) * InfantFare,
	}

	roundTrip := ret != nil
	if roundTrip {
		b.AdultFare *= 2
		b.ChildFare *= 2
		b.InfantFare *= 2
	}

	for _, p := range passengers {
		b.BaggageOutbound += outbound.Baggage.PriceOf(p.Outbound.BaggageID)
		for id, qty := range p.Outbound.Meals {
			if qty > 0 {
				b.MealOutbound += outbound.Meals.PriceOf(id) * int64(qty)
			}
		}
		if roundTrip {
			b.BaggageReturn += ret.Baggage.PriceOf(p.Return.BaggageID)
			for id, qty := range p.Return.Meals {
				if qty > 0 {
					b.MealReturn += ret.Meals.PriceOf(id) * int64(qty)
				}
			}
		}
	}

	b.Total = b.AdultFare + b.ChildFare + b.InfantFare +
		b.BaggageOutbound + b.BaggageReturn +
		b.MealOutbound + b.MealReturn
	return b
}

// AncillaryTotals is one passenger's flattened ancillary spend per leg. The
// booking roster persists these so a re-fetched booking shows who ordered what.
type AncillaryTotals struct {
	Outbound int64
	Return   int64
}

// PassengerAncillaries prices every roster entry individually, in roster
// order. One-way itineraries (ret == nil) leave the return totals zero.
func PassengerAncillaries(passengers []Passenger, outbound LegOptions, ret *LegOptions) []AncillaryTotals {
	out := make([]AncillaryTotals, len(passengers))
	for i, p := range passengers {
		out[i].Outbound = outbound.selectionTotal(p.Outbound)
		if ret != nil {
			out[i].Return = ret.selectionTotal(p.Return)
		}
	}
	return out
}

// BaseFare is the seat-fare portion of a breakdown (ancillaries excluded).
func (b Breakdown) BaseFare() int64 {
	return b.AdultFare + b.ChildFare + b.InfantFare
}

// AncillaryTotal is everything except seat fares.
func (b Breakdown) AncillaryTotal() int64 {
	return b.BaggageOutbound + b.BaggageReturn + b.MealOutbound + b.MealReturn
}
