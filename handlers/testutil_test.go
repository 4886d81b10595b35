package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"bbq-ordering-api/config"
	"bbq-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the application database for an in-memory one and restores
// the previous handle when the test finishes.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return db
}

// newContext builds a gin test context carrying an authenticated user and an
// optional JSON body.
func newContext(t *testing.T, userID uint, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	c.Request = httptest.NewRequest("POST", "/", &buf)
	c.Request.Header.Set("Content-Type", "application/json")

	if userID != 0 {
		c.Set("userID", userID)
	}
	return c, rec
}

// paramID formats a numeric route parameter.
func paramID(key string, id uint) gin.Param {
	return gin.Param{Key: key, Value: strconv.FormatUint(uint64(id), 10)}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func seedUser(t *testing.T, db *gorm.DB, username string, staff bool) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		IsStaff:      staff,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock uint) *models.Product {
	t.Helper()
	product := models.Product{
		Name:          name,
		Price:         decimal.NewFromFloat(price),
		StockQuantity: stock,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}
