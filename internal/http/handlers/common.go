package handlers

import (
	"net/http"
	"strconv"

	intconfig "flightdesk/internal/config"
	"flightdesk/internal/draft"
	"flightdesk/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	env    intconfig.Env
	drafts draft.Store
)

// Configure wires the shared dependencies the package-level handlers use.
// Called once from the router before routes are mounted.
func Configure(e intconfig.Env) {
	env = e
	if intconfig.Redis != nil {
		drafts = draft.NewRedisStore(intconfig.Redis, e.DraftTTL)
	} else {
		drafts = draft.NewMemoryStore()
	}
}

// Drafts exposes the store for handlers and tests.
func Drafts() draft.Store {
	if drafts == nil {
		drafts = draft.NewMemoryStore()
	}
	return drafts
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}

// ParamID parses the :id path segment.
func ParamID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return 0, false
	}
	return id, true
}

// ParamIDOptional parses :id when present, without responding on absence.
// Save handlers share create (POST, no id) and update (PUT /:id) paths.
func ParamIDOptional(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// SessionID identifies the draft owner: authenticated user id when present,
// otherwise the anonymous session header the storefront sends.
func SessionID(c *gin.Context) string {
	if uid := middleware.GetUserID(c); uid > 0 {
		return "user-" + strconv.FormatInt(uid, 10)
	}
	if sid := c.GetHeader("X-Session-ID"); sid != "" {
		return sid
	}
	return ""
}
