package search

import (
	"strings"

	"gorm.io/gorm"
)

// MinSuggestionQuery is the shortest query the suggestion endpoint answers;
// anything shorter gets an empty list rather than an error.
const MinSuggestionQuery = 2

// SuggestionLimit caps the number of names returned per query.
const SuggestionLimit = 8

// Suggestions runs the tiered fallback restricted to the name field and
// returns up to SuggestionLimit matching product names.
func Suggestions(db *gorm.DB, q string) ([]string, error) {
	q = strings.TrimSpace(q)
	if len(q) < MinSuggestionQuery {
		return []string{}, nil
	}
	pattern := "%" + q + "%"

	exact := activeProducts(db).Where("LOWER(name) = LOWER(?)", q)
	if nonEmpty, err := hasRows(exact); err != nil {
		return nil, err
	} else if nonEmpty {
		return pluckNames(exact)
	}

	phrase := activeProducts(db).Where("name LIKE ?", pattern)
	if nonEmpty, err := hasRows(phrase); err != nil {
		return nil, err
	} else if nonEmpty {
		return pluckNames(phrase)
	}

	words := activeProducts(db)
	for _, word := range strings.Fields(q) {
		words = words.Where("name LIKE ?", "%"+word+"%")
	}
	return pluckNames(words)
}

func pluckNames(query *gorm.DB) ([]string, error) {
	names := []string{}
	err := query.Limit(SuggestionLimit).Order("name asc").Pluck("name", &names).Error
	return names, err
}
