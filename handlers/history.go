package handlers

import (
	"fmt"
	"net/http"

	"bbq-ordering-api/config"
	"bbq-ordering-api/middleware"
	"bbq-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// GetUserHistory returns the caller's latest 100 activity entries
func GetUserHistory(c *gin.Context) {
	var history []models.UserHistory
	config.DB.Where("user_id = ?", middleware.GetUserID(c)).
		Order("timestamp desc").
		Limit(100).
		Find(&history)
	c.JSON(http.StatusOK, gin.H{"count": len(history), "history": history})
}

// DeleteHistoryEntry removes one of the caller's own activity entries.
// Entries are append-only otherwise
func DeleteHistoryEntry(c *gin.Context) {
	var entry models.UserHistory
	err := config.DB.
		Where("user_id = ?", middleware.GetUserID(c)).
		First(&entry, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "History entry not found"})
		return
	}

	if err := config.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete history entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity entry deleted successfully"})
}

// ClearUserHistory bulk-deletes the caller's whole activity trail
func ClearUserHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var count int64
	config.DB.Model(&models.UserHistory{}).Where("user_id = ?", userID).Count(&count)

	if err := config.DB.Where("user_id = ?", userID).Delete(&models.UserHistory{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Successfully cleared %d activity entries from your history", count),
	})
}
