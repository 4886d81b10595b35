// Package search implements the layered product search used by the catalog:
// exact match first, then phrase match, then AND-of-words, so broad queries
// still narrow progressively instead of returning nothing.
package search

import (
	"strings"

	"bbq-ordering-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Params are the catalog query options taken from the request.
type Params struct {
	Query    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	SortBy   string
}

// sortColumns whitelists the accepted sort keys. A leading dash flips the
// direction, matching the query-parameter convention.
var sortColumns = map[string]string{
	"name":        "name asc",
	"-name":       "name desc",
	"price":       "price asc",
	"-price":      "price desc",
	"created_at":  "created_at asc",
	"-created_at": "created_at desc",
}

// OrderClause resolves a sort key to its SQL order clause, defaulting to name
// ascending for unknown keys.
func OrderClause(sortBy string) string {
	if clause, ok := sortColumns[sortBy]; ok {
		return clause
	}
	return "name asc"
}

func activeProducts(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Product{}).Where("is_active = ?", true)
}

// Products runs the tiered text search plus price bounds and sorting over
// active products.
func Products(db *gorm.DB, p Params) ([]models.Product, error) {
	query := activeProducts(db)

	if q := strings.TrimSpace(p.Query); q != "" {
		tier, err := textTier(db, q)
		if err != nil {
			return nil, err
		}
		query = tier
	}

	if p.MinPrice != nil {
		query = query.Where("price >= ?", p.MinPrice)
	}
	if p.MaxPrice != nil {
		query = query.Where("price <= ?", p.MaxPrice)
	}

	var products []models.Product
	err := query.Order(OrderClause(p.SortBy)).Find(&products).Error
	return products, err
}

// textTier picks the narrowest non-empty tier for q: exact name match (or
// description substring), then full-phrase substring, then every word as a
// substring combined with AND.
func textTier(db *gorm.DB, q string) (*gorm.DB, error) {
	pattern := "%" + q + "%"

	exact := activeProducts(db).
		Where("LOWER(name) = LOWER(?) OR description LIKE ?", q, pattern)
	if nonEmpty, err := hasRows(exact); err != nil {
		return nil, err
	} else if nonEmpty {
		return exact, nil
	}

	phrase := activeProducts(db).
		Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	if nonEmpty, err := hasRows(phrase); err != nil {
		return nil, err
	} else if nonEmpty {
		return phrase, nil
	}

	words := activeProducts(db)
	for _, word := range strings.Fields(q) {
		wp := "%" + word + "%"
		words = words.Where("name LIKE ? OR description LIKE ?", wp, wp)
	}
	return words, nil
}

func hasRows(query *gorm.DB) (bool, error) {
	var count int64
	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
