package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/controller/setting"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/models"
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

func seedSetting(t *testing.T, db *gorm.DB, key, settingType, value string) {
	t.Helper()

	_, err := setting.Create(db, key, datatypes.JSON(value), settingType, "")
	require.NoError(t, err, "failed to seed setting %s", key)
}

func TestPaymentProcessingLoad(t *testing.T) {
	db := setupTestDB(t)

	seedSetting(t, db, SettingKeyPaymentProcessing, SettingTypePricing,
		`{"cardPercentage":3,"cardFlatFee":0.3,"passToCustomerPercentage":100}`)

	var cfg PaymentProcessing
	require.NoError(t, cfg.Load(db))

	assert.InDelta(t, 3.0, cfg.CardPercentage, 1e-9)
	assert.InDelta(t, 0.3, cfg.CardFlatFee, 1e-9)
	assert.InDelta(t, 100.0, cfg.PassToCustomerPercentage, 1e-9)
}

// TestLoadMissingConfiguration verifies that every schema fails fast with a
// distinct error naming the missing key instead of an opaque decode failure.
func TestLoadMissingConfiguration(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		key  string
		load func(db *gorm.DB) error
	}{
		{SettingKeyPaymentProcessing, func(db *gorm.DB) error { var c PaymentProcessing; return c.Load(db) }},
		{SettingKeyDepositRules, func(db *gorm.DB) error { var c DepositRules; return c.Load(db) }},
		{SettingKeyDayTypeDefinitions, func(db *gorm.DB) error { var c DayTypeDefinitions; return c.Load(db) }},
		{SettingKeyTaxSettings, func(db *gorm.DB) error { var c TaxSettings; return c.Load(db) }},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			err := tc.load(db)

			require.Error(t, err)
			require.ErrorIs(t, err, ErrMissingConfiguration)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestDepositRulesJSONShape(t *testing.T) {
	db := setupTestDB(t)

	// stored shape uses the band names as JSON keys
	seedSetting(t, db, SettingKeyDepositRules, SettingTypePricing,
		`{"reserve_refine":{"1-7":50,"8-14":80,"per_vehicle_split":true}}`)

	var rules DepositRules
	require.NoError(t, rules.Load(db))

	assert.InDelta(t, 50.0, rules.ReserveRefine.Band1To7, 1e-9)
	assert.InDelta(t, 80.0, rules.ReserveRefine.Band8To14, 1e-9)
	assert.True(t, rules.ReserveRefine.PerVehicleSplit)
}

func TestSaveRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	seedSetting(t, db, SettingKeyTaxSettings, SettingTypePricing, `{}`)

	saved := TaxSettings{
		SalesTaxRate:     8,
		ApplyToTransfers: false,
		ApplyToServices:  true,
	}
	require.NoError(t, saved.Save(db, "dispatcher"))

	var loaded TaxSettings
	require.NoError(t, loaded.Load(db))
	assert.Equal(t, saved, loaded)

	// audit fields were stamped on the row
	row, err := setting.Get(db, SettingKeyTaxSettings)
	require.NoError(t, err)
	require.NotNil(t, row.UpdatedBy)
	assert.Equal(t, "dispatcher", *row.UpdatedBy)
}

// TestSaveMissingKeyIsNoOp pins the no-upsert contract at the schema level:
// saving against an unseeded key neither creates a row nor errors.
func TestSaveMissingKeyIsNoOp(t *testing.T) {
	db := setupTestDB(t)

	cfg := PaymentProcessing{CardPercentage: 3}
	require.NoError(t, cfg.Save(db, "dispatcher"))

	_, err := setting.Get(db, SettingKeyPaymentProcessing)
	require.ErrorIs(t, err, setting.ErrSettingNotFound)
}

func TestDayTypeDefinitionsLoad(t *testing.T) {
	db := setupTestDB(t)

	seedSetting(t, db, SettingKeyDayTypeDefinitions, "scheduling",
		`{"thu_sat":{"days":[4,5,6]}}`)

	var defs DayTypeDefinitions
	require.NoError(t, defs.Load(db))

	assert.Equal(t, []int{4, 5, 6}, defs.ThuSat.Days)
}
