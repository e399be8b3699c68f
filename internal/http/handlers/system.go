package handlers

import (
	"net/http"

	intconfig "tripplanner/internal/config"
	intdb "tripplanner/internal/db"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck verifies the database connection is usable and reports
// whether the expected tables exist.
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	tables := gin.H{}
	for _, table := range []string{"activities", "trips", "trip_activities"} {
		tables[table] = intdb.HasTable(intconfig.DB, table)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "tables": tables})
}
