package daemon

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/GoFleet-Admin/GoFleet-Admin/internal/config"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/controller/setting"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/models"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/pricing"
)

// defaultSettings are created on first start so the calculators have a
// working configuration before an operator touches the settings pages.
var defaultSettings = []struct {
	key         string
	value       string
	settingType string
	description string
}{
	{
		key:         pricing.SettingKeyPaymentProcessing,
		value:       `{"cardPercentage": 3.0, "cardFlatFee": 0.30, "passToCustomerPercentage": 100}`,
		settingType: pricing.SettingTypePricing,
		description: "Card and ACH processing fee rates and customer pass-through",
	},
	{
		key:         pricing.SettingKeyDepositRules,
		value:       `{"reserve_refine": {"1-7": 50, "8-14": 80, "per_vehicle_split": true}}`,
		settingType: pricing.SettingTypePricing,
		description: "Reserve & Refine deposit amounts by party size band",
	},
	{
		key:         pricing.SettingKeyDayTypeDefinitions,
		value:       `{"thu_sat": {"days": [4, 5, 6]}}`,
		settingType: pricing.SettingTypePricing,
		description: "Weekday membership of the operating day types",
	},
	{
		key:         pricing.SettingKeyTaxSettings,
		value:       `{"salesTaxRate": 0, "applyToTransfers": false, "applyToServices": false}`,
		settingType: pricing.SettingTypePricing,
		description: "Sales tax rate and service type exemptions",
	},
}

func seed(_ *config.Config, db *gorm.DB) {
	// Seed initial data if user table is empty

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		// Create default admin user
		// change this password right after the first login

		db.Create(
			&models.User{
				Username: "admin",
				Password: models.HashPassword("changeme"),
				Active:   true,
			},
		)
	}

	// Seed pricing settings that do not exist yet
	for _, def := range defaultSettings {
		_, err := setting.Create(db, def.key, datatypes.JSON(def.value), def.settingType, def.description)
		if err != nil {
			if errors.Is(err, setting.ErrSettingAlreadyExists) {
				continue
			}

			log.Error().Err(err).Str("key", def.key).Msg("failed to seed setting")
		}
	}
}
