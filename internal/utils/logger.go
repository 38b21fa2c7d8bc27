package utils

import (
	"log"
	"strings"
)

// LogEvent prints a standardized log line keyed by request_id so application
// events correlate with the HTTP access log. Background jobs without a
// request log "-". Avoid logging sensitive payload; message should be
// summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] request_id=%s action=%s msg=%s", strings.ToUpper(module), req, action, message)
}
