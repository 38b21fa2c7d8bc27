package handlers

import (
	"net/http"

	intconfig "flightdesk/internal/config"
	intdb "flightdesk/internal/db"

	"github.com/gin-gonic/gin"
)

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck pings the database and reports which core tables exist, so a
// half-migrated deployment is visible before the first booking fails.
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}

	tables := gin.H{}
	if db := intconfig.DB; db != nil {
		for _, tbl := range []string{"bookings", "booking_passengers", "payments", "fare_packages"} {
			tables[tbl] = intdb.HasTable(db, tbl)
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "up", "tables": tables})
}
