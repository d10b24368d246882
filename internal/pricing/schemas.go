package pricing

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/controller/setting"
)

const (
	// SettingKeyPaymentProcessing is the key holding card processing rates.
	SettingKeyPaymentProcessing = "payment_processing"

	// SettingKeyDepositRules is the key holding booking deposit bands.
	SettingKeyDepositRules = "deposit_rules"

	// SettingKeyDayTypeDefinitions is the key holding the weekday classification.
	SettingKeyDayTypeDefinitions = "day_type_definitions"

	// SettingKeyTaxSettings is the key holding sales tax configuration.
	SettingKeyTaxSettings = "tax_settings"

	// SettingTypePricing groups the pricing related settings.
	SettingTypePricing = "pricing"
)

type (
	// PaymentProcessing represents the card processing fee configuration.
	// Card and ACH payments are charged with the same rates.
	PaymentProcessing struct {
		CardPercentage           float64 `form:"card_percentage"             json:"cardPercentage"           validate:"gte=0,lte=100"`
		CardFlatFee              float64 `form:"card_flat_fee"               json:"cardFlatFee"              validate:"gte=0"`
		PassToCustomerPercentage float64 `form:"pass_to_customer_percentage" json:"passToCustomerPercentage" validate:"gte=0,lte=100"`
	}

	// ReserveRefineRules holds the deposit bands for the Reserve & Refine
	// booking flow. Band1To7 and Band8To14 are per-vehicle amounts keyed by
	// party size; PerVehicleSplit controls banding for parties above 14.
	ReserveRefineRules struct {
		Band1To7        float64 `form:"band_1_7"          json:"1-7"               validate:"gte=0"`
		Band8To14       float64 `form:"band_8_14"         json:"8-14"              validate:"gte=0"`
		PerVehicleSplit bool    `form:"per_vehicle_split" json:"per_vehicle_split"`
	}

	// DepositRules represents the deposit configuration per booking flow.
	DepositRules struct {
		ReserveRefine ReserveRefineRules `json:"reserve_refine"`
	}

	// DayTypeRule holds the weekday indexes (0=Sunday..6=Saturday) that
	// belong to a day type.
	DayTypeRule struct {
		Days []int `json:"days"`
	}

	// DayTypeDefinitions represents the calendar classification configuration.
	// Only the thu_sat set is stored; every other weekday is sun_wed.
	DayTypeDefinitions struct {
		ThuSat DayTypeRule `json:"thu_sat"`
	}

	// TaxSettings represents the sales tax configuration.
	TaxSettings struct {
		SalesTaxRate     float64 `form:"sales_tax_rate"     json:"salesTaxRate" validate:"gte=0,lte=100"`
		ApplyToTransfers bool    `form:"apply_to_transfers" json:"applyToTransfers"`
		ApplyToServices  bool    `form:"apply_to_services"  json:"applyToServices"`
	}
)

// loadSetting resolves a setting key into its typed schema. A missing row
// fails fast with ErrMissingConfiguration naming the key instead of
// surfacing as an opaque unmarshal error later.
func loadSetting(db *gorm.DB, key string, out any) error {
	s, err := setting.Get(db, key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return fmt.Errorf("%w: %s", ErrMissingConfiguration, key)
		}
		return err
	}

	return json.Unmarshal(s.SettingValue, out)
}

// saveSetting marshals a typed schema and overwrites its existing setting row.
func saveSetting(db *gorm.DB, key string, in any, updatedBy string) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}

	return setting.Update(db, key, datatypes.JSON(data), updatedBy)
}

// Load loads the payment processing configuration from the database.
func (p *PaymentProcessing) Load(db *gorm.DB) error {
	return loadSetting(db, SettingKeyPaymentProcessing, p)
}

// Save overwrites the payment processing configuration in the database.
func (p *PaymentProcessing) Save(db *gorm.DB, updatedBy string) error {
	return saveSetting(db, SettingKeyPaymentProcessing, p, updatedBy)
}

// Load loads the deposit rules from the database.
func (d *DepositRules) Load(db *gorm.DB) error {
	return loadSetting(db, SettingKeyDepositRules, d)
}

// Save overwrites the deposit rules in the database.
func (d *DepositRules) Save(db *gorm.DB, updatedBy string) error {
	return saveSetting(db, SettingKeyDepositRules, d, updatedBy)
}

// Load loads the day type definitions from the database.
func (d *DayTypeDefinitions) Load(db *gorm.DB) error {
	return loadSetting(db, SettingKeyDayTypeDefinitions, d)
}

// Save overwrites the day type definitions in the database.
func (d *DayTypeDefinitions) Save(db *gorm.DB, updatedBy string) error {
	return saveSetting(db, SettingKeyDayTypeDefinitions, d, updatedBy)
}

// Load loads the tax settings from the database.
func (t *TaxSettings) Load(db *gorm.DB) error {
	return loadSetting(db, SettingKeyTaxSettings, t)
}

// Save overwrites the tax settings in the database.
func (t *TaxSettings) Save(db *gorm.DB, updatedBy string) error {
	return saveSetting(db, SettingKeyTaxSettings, t, updatedBy)
}
