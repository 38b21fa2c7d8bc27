package handlers

import (
	"net/http"

	"flightdesk/internal/domain/models"
	"flightdesk/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Back-office reference data CRUD. All handlers sit behind the admin role
// guard in the router.

func GetAirports(c *gin.Context) {
	repo := repositories.ReferenceRepo{}
	airports, err := repo.ListAirports()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"airports": airports})
}

func SaveAirport(c *gin.Context) {
	var a models.Airport
	if !BindJSONOrError(c, &a) {
		return
	}
	if id, ok := ParamIDOptional(c); ok {
		a.ID = id
	}
	repo := repositories.ReferenceRepo{}
	id, err := repo.SaveAirport(a)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func DeleteAirport(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	repo := repositories.ReferenceRepo{}
	if err := repo.DeleteAirport(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func GetAirlines(c *gin.Context) {
	repo := repositories.ReferenceRepo{}
	airlines, err := repo.ListAirlines()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"airlines": airlines})
}

func SaveAirline(c *gin.Context) {
	var a models.Airline
	if !BindJSONOrError(c, &a) {
		return
	}
	if id, ok := ParamIDOptional(c); ok {
		a.ID = id
	}
	repo := repositories.ReferenceRepo{}
	id, err := repo.SaveAirline(a)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func DeleteAirline(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	repo := repositories.ReferenceRepo{}
	if err := repo.DeleteAirline(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func GetAircraft(c *gin.Context) {
	repo := repositories.ReferenceRepo{}
	aircraft, err := repo.ListAircraft()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"aircraft": aircraft})
}

func SaveAircraft(c *gin.Context) {
	var a models.Aircraft
	if !BindJSONOrError(c, &a) {
		return
	}
	if id, ok := ParamIDOptional(c); ok {
		a.ID = id
	}
	repo := repositories.ReferenceRepo{}
	id, err := repo.SaveAircraft(a)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func DeleteAircraft(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	repo := repositories.ReferenceRepo{}
	if err := repo.DeleteAircraft(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func GetPromotions(c *gin.Context) {
	repo := repositories.ReferenceRepo{}
	promos, err := repo.ListPromotions()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"promotions": promos})
}

func SavePromotion(c *gin.Context) {
	var p models.Promotion
	if !BindJSONOrError(c, &p) {
		return
	}
	if id, ok := ParamIDOptional(c); ok {
		p.ID = id
	}
	repo := repositories.ReferenceRepo{}
	id, err := repo.SavePromotion(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func DeletePromotion(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	repo := repositories.ReferenceRepo{}
	if err := repo.DeletePromotion(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
