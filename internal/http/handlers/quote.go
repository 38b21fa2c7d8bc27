package handlers

import (
	"net/http"

	"flightdesk/internal/domain"
	"flightdesk/internal/draft"
	"flightdesk/internal/http/middleware"
	"flightdesk/internal/services"

	"github.com/gin-gonic/gin"
)

// GetDraft returns the current draft itinerary of the session.
func GetDraft(c *gin.Context) {
	sid := SessionID(c)
	if sid == "" {
		RespondError(c, http.StatusBadRequest, "session tidak ditemukan", nil)
		return
	}

	it, err := Drafts().Get(c.Request.Context(), sid)
	if err != nil {
		if domain.IsNotFound(err) {
			// belum ada draft: kembalikan draft kosong, bukan 404
			c.JSON(http.StatusOK, gin.H{"draft": draft.Itinerary{}})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": it})
}

// SaveDraft replaces the session draft and echoes a fresh quote, so every
// selection change renders a live total.
func SaveDraft(c *gin.Context) {
	sid := SessionID(c)
	if sid == "" {
		RespondError(c, http.StatusBadRequest, "session tidak ditemukan", nil)
		return
	}

	var it draft.Itinerary
	if !BindJSONOrError(c, &it) {
		return
	}

	// Invariant penumpang dijaga di sini, sebelum draft tersimpan.
	if err := it.Count.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := Drafts().Save(c.Request.Context(), sid, it); err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.QuoteService{RequestID: middleware.GetRequestID(c)}
	breakdown, err := svc.Quote(it)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": it, "quote": breakdown})
}

// ResetDraft drops the session draft.
func ResetDraft(c *gin.Context) {
	sid := SessionID(c)
	if sid == "" {
		RespondError(c, http.StatusBadRequest, "session tidak ditemukan", nil)
		return
	}
	if err := Drafts().Reset(c.Request.Context(), sid); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

// Quote prices a draft without saving it (POST /api/quote).
func Quote(c *gin.Context) {
	var it draft.Itinerary
	if !BindJSONOrError(c, &it) {
		return
	}
	if err := it.Count.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.QuoteService{RequestID: middleware.GetRequestID(c)}
	breakdown, err := svc.Quote(it)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": breakdown})
}
