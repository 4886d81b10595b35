package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bbq-ordering-api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", target, nil)
	return c, rec
}

func TestSearchSuggestionsShortQuery(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, "BBQ Pork", 25.00, 10)

	c, rec := getContext(t, "/?q=a")
	handlers.SearchSuggestions(c)

	require.Equal(t, http.StatusOK, rec.Code)
	suggestions, ok := decodeBody(t, rec)["suggestions"].([]any)
	require.True(t, ok)
	assert.Empty(t, suggestions)
}

func TestSearchSuggestionsReturnsNames(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, "BBQ Pork", 25.00, 10)
	seedProduct(t, db, "BBQ Pork Ribs", 40.00, 10)
	seedProduct(t, db, "Iced Tea", 5.00, 10)

	c, rec := getContext(t, "/?q=bbq")
	handlers.SearchSuggestions(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"BBQ Pork", "BBQ Pork Ribs"}, decodeBody(t, rec)["suggestions"])
}

func TestListProductsRejectsBadPrice(t *testing.T) {
	setupTestDB(t)

	c, rec := getContext(t, "/?min_price=cheap")
	handlers.ListProducts(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductHidesInactive(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Retired Dish", 10.00, 0)
	require.NoError(t, db.Model(product).Update("is_active", false).Error)

	c, rec := getContext(t, "/")
	c.Params = append(c.Params, paramID("id", product.ID))
	handlers.GetProduct(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
