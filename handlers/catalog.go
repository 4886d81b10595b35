package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bbq-ordering-api/activity"
	"bbq-ordering-api/config"
	"bbq-ordering-api/middleware"
	"bbq-ordering-api/models"
	"bbq-ordering-api/search"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ListProducts returns active products filtered by the layered search, price
// bounds and sort key (public)
func ListProducts(c *gin.Context) {
	params := search.Params{
		Query:  c.Query("search"),
		SortBy: c.Query("sort_by"),
	}
	if min := c.Query("min_price"); min != "" {
		d, err := decimal.NewFromString(min)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
			return
		}
		params.MinPrice = &d
	}
	if max := c.Query("max_price"); max != "" {
		d, err := decimal.NewFromString(max)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
			return
		}
		params.MaxPrice = &d
	}

	products, err := search.Products(config.DB, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	if params.Query != "" {
		activity.Record(c, middleware.GetUserID(c), models.ActionViewPage,
			fmt.Sprintf("Searched products: %q", params.Query))
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(products),
		"products": products,
	})
}

// GetProduct returns a single active product (public)
func GetProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Where("is_active = ?", true).First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	activity.Record(c, middleware.GetUserID(c), models.ActionViewProduct,
		fmt.Sprintf("Viewed product %s", product.Name))

	c.JSON(http.StatusOK, gin.H{
		"product":      product,
		"stock_status": product.StockStatus(),
	})
}

// SearchSuggestions returns up to 8 matching product names for live search.
// Queries under 2 characters get an empty list, not an error.
func SearchSuggestions(c *gin.Context) {
	q := c.Query("q")

	if names, ok := cachedSuggestions(c.Request.Context(), q); ok {
		c.JSON(http.StatusOK, gin.H{"suggestions": names})
		return
	}

	suggestions, err := search.Suggestions(config.DB, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	cacheSuggestions(c.Request.Context(), q, suggestions)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

const suggestionCacheTTL = 30 * time.Second

func suggestionCacheKey(q string) string {
	return "suggest:" + q
}

func cachedSuggestions(ctx context.Context, q string) ([]string, bool) {
	if config.Redis == nil || len(q) < search.MinSuggestionQuery {
		return nil, false
	}
	raw, err := config.Redis.Get(ctx, suggestionCacheKey(q)).Bytes()
	if err != nil {
		return nil, false
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, false
	}
	return names, true
}

func cacheSuggestions(ctx context.Context, q string, names []string) {
	if config.Redis == nil || len(q) < search.MinSuggestionQuery {
		return
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return
	}
	config.Redis.Set(ctx, suggestionCacheKey(q), raw, suggestionCacheTTL)
}
