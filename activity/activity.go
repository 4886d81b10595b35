// Package activity writes the append-only user action trail. Recording is
// fire and forget: a failed insert is logged and never propagated to the
// operation that triggered it.
package activity

import (
	"log"
	"strings"

	"bbq-ordering-api/config"
	"bbq-ordering-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Longest user-agent string kept per entry.
const maxUserAgent = 500

// Logger records activity entries against one database handle.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

// Record appends one entry for userID. A zero userID (unauthenticated caller)
// is a no-op.
func (l *Logger) Record(c *gin.Context, userID uint, action models.HistoryAction, description string) {
	if userID == 0 {
		return
	}

	entry := models.UserHistory{
		UserID:      userID,
		Action:      action,
		Description: description,
	}
	if c != nil {
		entry.IPAddress = clientIP(c)
		entry.UserAgent = truncate(c.Request.UserAgent(), maxUserAgent)
	}

	if err := l.db.Create(&entry).Error; err != nil {
		log.Printf("activity: failed to record %s for user %d: %v", action, userID, err)
	}
}

// Record appends an entry using the application database.
func Record(c *gin.Context, userID uint, action models.HistoryAction, description string) {
	New(config.DB).Record(c, userID, action, description)
}

// clientIP prefers the first X-Forwarded-For entry, falling back to the
// direct connection address.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return c.ClientIP()
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
