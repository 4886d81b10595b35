package handlers

import (
	"fmt"
	"net/http"

	"bbq-ordering-api/activity"
	"bbq-ordering-api/config"
	"bbq-ordering-api/middleware"
	"bbq-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// ── Articles ────────────────────────────────────────────────────────────────

// ListArticles returns published articles (public)
func ListArticles(c *gin.Context) {
	var articles []models.Article
	config.DB.Where("published = ?", true).
		Order("published_at desc, id desc").
		Find(&articles)
	c.JSON(http.StatusOK, gin.H{"count": len(articles), "articles": articles})
}

type ArticleRequest struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Published bool   `json:"published"`
}

// CreateArticle adds a blog post — staff only
func CreateArticle(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article := models.Article{
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: &userID,
	}
	if err := config.DB.Create(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}
	if req.Published {
		if err := article.Publish(config.DB); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish article"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Article created successfully", "article": article})
}

// UpdateArticle edits a blog post — staff only. The publish timestamp is set
// on the first publish and kept afterwards
func UpdateArticle(c *gin.Context) {
	var article models.Article
	if err := config.DB.First(&article, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article.Title = req.Title
	article.Body = req.Body
	article.Published = req.Published
	if err := config.DB.Save(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}
	if article.Published && article.PublishedAt == nil {
		if err := article.Publish(config.DB); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish article"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article updated successfully", "article": article})
}

// DeleteArticle removes a blog post — staff only
func DeleteArticle(c *gin.Context) {
	var article models.Article
	if err := config.DB.First(&article, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	if err := config.DB.Delete(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

// ── Journal ─────────────────────────────────────────────────────────────────

type JournalEntryRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ListJournalEntries returns the caller's journal
func ListJournalEntries(c *gin.Context) {
	var entries []models.JournalEntry
	config.DB.Where("author_id = ?", middleware.GetUserID(c)).
		Order("created_at desc").
		Find(&entries)
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "entries": entries})
}

// CreateJournalEntry adds a private note
func CreateJournalEntry(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.JournalEntry{Title: req.Title, Content: req.Content, AuthorID: userID}
	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal entry"})
		return
	}

	activity.Record(c, userID, models.ActionCreateJournal,
		fmt.Sprintf("Created journal entry #%d", entry.ID))

	c.JSON(http.StatusCreated, gin.H{"message": "Journal entry created successfully", "entry": entry})
}

func ownedJournalEntry(c *gin.Context) (*models.JournalEntry, bool) {
	var entry models.JournalEntry
	err := config.DB.
		Where("author_id = ?", middleware.GetUserID(c)).
		First(&entry, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		return nil, false
	}
	return &entry, true
}

// UpdateJournalEntry edits one of the caller's notes
func UpdateJournalEntry(c *gin.Context) {
	entry, ok := ownedJournalEntry(c)
	if !ok {
		return
	}

	var req JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry.Title = req.Title
	entry.Content = req.Content
	if err := config.DB.Save(entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update journal entry"})
		return
	}

	activity.Record(c, middleware.GetUserID(c), models.ActionUpdateJournal,
		fmt.Sprintf("Updated journal entry #%d", entry.ID))

	c.JSON(http.StatusOK, gin.H{"message": "Journal entry updated successfully", "entry": entry})
}

// DeleteJournalEntry removes one of the caller's notes
func DeleteJournalEntry(c *gin.Context) {
	entry, ok := ownedJournalEntry(c)
	if !ok {
		return
	}

	if err := config.DB.Delete(entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete journal entry"})
		return
	}

	activity.Record(c, middleware.GetUserID(c), models.ActionDeleteJournal,
		fmt.Sprintf("Deleted journal entry #%d", entry.ID))

	c.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted successfully"})
}

// ── Feedback ────────────────────────────────────────────────────────────────

// ListFeedback returns the latest 20 feedback entries (public)
func ListFeedback(c *gin.Context) {
	var feedback []models.Feedback
	config.DB.Preload("User").Order("created_at desc").Limit(20).Find(&feedback)
	c.JSON(http.StatusOK, gin.H{"count": len(feedback), "feedback": feedback})
}

type FeedbackRequest struct {
	Message string `json:"message" binding:"required"`
}

// SubmitFeedback records a feedback message from the caller
func SubmitFeedback(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback := models.Feedback{Message: req.Message, UserID: userID}
	if err := config.DB.Create(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}

	activity.Record(c, userID, models.ActionSubmitFeedback, "Submitted feedback")

	c.JSON(http.StatusCreated, gin.H{"message": "Feedback submitted successfully", "feedback": feedback})
}
