package services

import (
	"database/sql"
	"fmt"

	intconfig "flightdesk/internal/config"
	"flightdesk/internal/domain/models"
	"flightdesk/internal/draft"
	"flightdesk/internal/metrics"
	"flightdesk/internal/pricing"
	"flightdesk/internal/repositories"
	"flightdesk/internal/utils"
)

// QuoteService turns a draft itinerary into a live price breakdown. It runs
// on every selection change, so missing pieces degrade to zero instead of
// failing; an incomplete draft still yields a well-formed quote.
type QuoteService struct {
	CatalogRepo repositories.CatalogRepo
	DB          *sql.DB
	RequestID   string
}

func (s QuoteService) catalog() repositories.CatalogRepo {
	if s.CatalogRepo.DB != nil {
		return s.CatalogRepo
	}
	if s.DB != nil {
		return repositories.CatalogRepo{DB: s.DB}
	}
	return repositories.CatalogRepo{DB: intconfig.DB}
}

// Quote prices the draft as-is.
func (s QuoteService) Quote(it draft.Itinerary) (pricing.Breakdown, error) {
	b, _, err := s.QuoteDetailed(it)
	return b, err
}

// QuoteDetailed additionally returns the per-passenger ancillary totals, in
// roster order, that booking creation persists alongside each passenger.
func (s QuoteService) QuoteDetailed(it draft.Itinerary) (pricing.Breakdown, []pricing.AncillaryTotals, error) {
	var fare *pricing.FareInput
	if it.FarePackageID > 0 {
		fp, err := s.catalog().GetFarePackage(it.FarePackageID)
		if err == nil {
			fare = &pricing.FareInput{
				ID:                fp.ID,
				ClassType:         fp.ClassType,
				PricePerAdultSeat: fp.PricePerAdultSeat,
			}
		}
		// lookup miss mid-selection: quote stays zero, bukan error
	}

	outbound := s.legOptions(it.OutboundFlightID, models.LegOutbound)

	var ret *pricing.LegOptions
	if it.RoundTrip() {
		opts := s.legOptions(it.ReturnFlightID, models.LegReturn)
		ret = &opts
	}

	pax := it.PricingPassengers()
	b := pricing.ComputeBreakdown(fare, it.Count, pax, outbound, ret)
	perPax := pricing.PassengerAncillaries(pax, outbound, ret)

	metrics.QuotesComputed.Inc()
	utils.LogEvent(s.RequestID, "quote", "compute",
		fmt.Sprintf("fare_package=%d total=%d", it.FarePackageID, b.Total))
	return b, perPax, nil
}

// legOptions builds the closed per-leg price lookups, sentinel included.
// Baggage and meal ids come from separate tables with their own sequences,
// so each kind loads into its own set.
func (s QuoteService) legOptions(flightID int64, leg string) pricing.LegOptions {
	opts := pricing.NewLegOptions()
	if flightID <= 0 {
		return opts
	}
	if baggage, err := s.catalog().ListBaggage(flightID, leg); err == nil {
		for _, o := range baggage {
			opts.Baggage.Add(o.ID, o.Price)
		}
	}
	if meals, err := s.catalog().ListMeals(flightID, leg); err == nil {
		for _, o := range meals {
			opts.Meals.Add(o.ID, o.Price)
		}
	}
	return opts
}
