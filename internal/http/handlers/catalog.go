package handlers

import (
	"net/http"
	"strconv"

	"flightdesk/internal/domain/models"
	"flightdesk/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GetFlight serves one flight for the storefront.
func GetFlight(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	repo := repositories.CatalogRepo{}
	f, err := repo.GetFlight(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight": f})
}

// ListFarePackages serves the fare packages of one flight.
func ListFarePackages(c *gin.Context) {
	flightID, err := strconv.ParseInt(c.Query("flight_id"), 10, 64)
	if err != nil || flightID <= 0 {
		RespondError(c, http.StatusBadRequest, "flight_id wajib", err)
		return
	}
	repo := repositories.CatalogRepo{}
	packages, err := repo.ListFarePackages(flightID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fare_packages": packages})
}

// ListAncillaries serves the per-leg baggage and meal options.
func ListAncillaries(c *gin.Context) {
	flightID, err := strconv.ParseInt(c.Query("flight_id"), 10, 64)
	if err != nil || flightID <= 0 {
		RespondError(c, http.StatusBadRequest, "flight_id wajib", err)
		return
	}
	leg := c.DefaultQuery("leg", models.LegOutbound)
	if leg != models.LegOutbound && leg != models.LegReturn {
		RespondError(c, http.StatusBadRequest, "leg harus outbound/return", nil)
		return
	}

	repo := repositories.CatalogRepo{}
	baggage, err := repo.ListBaggage(flightID, leg)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	meals, err := repo.ListMeals(flightID, leg)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"baggage": baggage, "meals": meals})
}
