package quote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoFleet-Admin/GoFleet-Admin/internal/config"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/controller/setting"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/models"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/pricing"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedSetting(t *testing.T, db *gorm.DB, key, value string) {
	t.Helper()

	_, err := setting.Create(db, key, datatypes.JSON(value), pricing.SettingTypePricing, "")
	require.NoError(t, err)
}

func newTestApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	app := fiber.New()

	service := &Service{}
	require.NoError(t, service.Init(app, &config.Config{}, db))

	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = resp.Body.Close()
	})

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return resp, decoded
}

func TestPostFee_Card(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, pricing.SettingKeyPaymentProcessing,
		`{"cardPercentage": 3.0, "cardFlatFee": 0.30, "passToCustomerPercentage": 100}`)

	app := newTestApp(t, db)

	resp, body := postJSON(t, app, "/api/quote/fee", `{"amount": 100, "paymentMethod": "card"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.InDelta(t, 100.0, body["baseAmount"], 1e-9)
	assert.InDelta(t, 3.30, body["processingFee"], 1e-9)
	assert.InDelta(t, 3.30, body["customerPays"], 1e-9)
	assert.InDelta(t, 103.30, body["total"], 1e-9)
}

func TestPostFee_CheckSkipsFee(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, pricing.SettingKeyPaymentProcessing,
		`{"cardPercentage": 3.0, "cardFlatFee": 0.30, "passToCustomerPercentage": 100}`)

	app := newTestApp(t, db)

	resp, body := postJSON(t, app, "/api/quote/fee", `{"amount": 250, "paymentMethod": "check"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.InDelta(t, 0.0, body["processingFee"], 1e-9)
	assert.InDelta(t, 250.0, body["total"], 1e-9)
}

func TestPostFee_MissingConfiguration(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)

	resp, body := postJSON(t, app, "/api/quote/fee", `{"amount": 100, "paymentMethod": "card"}`)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body["error"], pricing.SettingKeyPaymentProcessing)
}

func TestPostFee_NegativeAmount(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)

	resp, _ := postJSON(t, app, "/api/quote/fee", `{"amount": -1, "paymentMethod": "card"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPostDeposit(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, pricing.SettingKeyDepositRules,
		`{"reserve_refine": {"1-7": 50, "8-14": 80, "per_vehicle_split": true}}`)

	app := newTestApp(t, db)

	tests := []struct {
		name string
		body string
		want float64
	}{
		{"small party", `{"partySize": 5, "vehicleCount": 1}`, 50},
		{"large party", `{"partySize": 12, "vehicleCount": 1}`, 80},
		{"split across two vehicles", `{"partySize": 20, "vehicleCount": 2}`, 160},
		{"split across three vehicles", `{"partySize": 20, "vehicleCount": 3}`, 150},
		{"oversized single vehicle", `{"partySize": 30, "vehicleCount": 1}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, app, "/api/quote/deposit", tt.body)

			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.InDelta(t, tt.want, body["deposit"], 1e-9)
		})
	}
}

func TestPostDeposit_PartySizeRequired(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)

	resp, _ := postJSON(t, app, "/api/quote/deposit", `{"partySize": 0, "vehicleCount": 1}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPostTax(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, pricing.SettingKeyTaxSettings,
		`{"salesTaxRate": 8, "applyToTransfers": false, "applyToServices": true}`)

	app := newTestApp(t, db)

	tests := []struct {
		name string
		body string
		want float64
	}{
		{"exempt transfer", `{"amount": 100, "serviceType": "transfer"}`, 0},
		{"taxed service", `{"amount": 100, "serviceType": "service"}`, 8},
		{"unknown service type taxed", `{"amount": 50, "serviceType": "retail"}`, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, app, "/api/quote/tax", tt.body)

			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.InDelta(t, tt.want, body["tax"], 1e-9)
		})
	}
}

func TestGetDayType(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, pricing.SettingKeyDayTypeDefinitions,
		`{"thu_sat": {"days": [4, 5, 6]}}`)

	app := newTestApp(t, db)

	tests := []struct {
		name string
		date string
		want string
	}{
		{"saturday", "2026-08-22", "thu_sat"},
		{"sunday", "2026-08-23", "sun_wed"},
		{"thursday", "2026-08-27", "thu_sat"},
		{"monday", "2026-08-24", "sun_wed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/day-type?date="+tt.date, nil)

			resp, err := app.Test(req)
			require.NoError(t, err)

			defer func() {
				_ = resp.Body.Close()
			}()

			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.want, body["dayType"])
			assert.Equal(t, tt.date, body["date"])
		})
	}
}

func TestGetDayType_InvalidDate(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/day-type?date=22-08-2026", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
