// Package pricing provides the pricing and tax settings admin handler.
package pricing

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFleet-Admin/GoFleet-Admin/internal/config"
	calc "github.com/GoFleet-Admin/GoFleet-Admin/internal/pricing"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/web/handler"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/web/navigation"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/web/session"
)

const (
	// Path is the path to the pricing settings page.
	Path = "settings/pricing"
)

// Settings bundles the editable pricing configuration for the form.
type Settings struct {
	Payment calc.PaymentProcessing
	Deposit calc.ReserveRefineRules
	Tax     calc.TaxSettings
}

// Service is the pricing settings handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the pricing settings handler.
var Handler = Service{}

// Init initializes the pricing settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app or db is nil")
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	// register routes
	app.Route("/"+Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

func newNav() *navigation.Context {
	return navigation.New("Pricing Settings", "settings", "pricing").
		AddCrumb("Home", "/dashboard", false).
		AddCrumb("Settings", "#", false).
		AddCrumb("Pricing", "/settings/pricing", true)
}

// load reads the current pricing configuration from the store. A missing
// setting leaves its section zeroed so the form renders empty.
func (s *Service) load() (*Settings, error) {
	out := &Settings{}

	var rules calc.DepositRules

	for _, step := range []struct {
		load func(db *gorm.DB) error
	}{
		{out.Payment.Load},
		{rules.Load},
		{out.Tax.Load},
	} {
		if err := step.load(s.db); err != nil && !errors.Is(err, calc.ErrMissingConfiguration) {
			return nil, err
		}
	}

	out.Deposit = rules.ReserveRefine

	return out, nil
}

// Get handles the pricing settings page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := newNav()

	settings, err := s.load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load pricing settings")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load settings")
	}

	return c.Render(Path, fiber.Map{
		"Settings":   settings,
		"Navigation": nav,
	}, handler.BaseLayout)
}

// Post handles the pricing settings form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	nav := newNav()

	// Parse form data into the settings struct. The form field names are
	// distinct across the sections, so each section parses from the same body.
	settings := &Settings{}
	for _, target := range []any{&settings.Payment, &settings.Deposit, &settings.Tax} {
		if err := c.BodyParser(target); err != nil {
			log.Error().Err(err).Msg("failed to parse pricing settings form")
			return c.Status(fiber.StatusBadRequest).Render(Path, fiber.Map{
				"Settings":   settings,
				"Navigation": nav,
				"Error":      "Invalid form data",
			}, handler.BaseLayout)
		}
	}

	// Validate settings
	if err := s.validator.Struct(settings); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)
		errorMessages := make([]string, len(validationErrors))
		for i, ve := range validationErrors {
			errorMessages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
		}

		log.Error().Err(err).Msg("validation failed for pricing settings")
		return c.Status(fiber.StatusBadRequest).Render(Path, fiber.Map{
			"Settings":   settings,
			"Navigation": nav,
			"Error":      errorMessages,
		}, handler.BaseLayout)
	}

	// Save settings to database, stamping the audit user from the session.
	updatedBy := session.CurrentUsername(c)

	rules := calc.DepositRules{ReserveRefine: settings.Deposit}

	for _, step := range []struct {
		save func(db *gorm.DB, updatedBy string) error
	}{
		{settings.Payment.Save},
		{rules.Save},
		{settings.Tax.Save},
	} {
		if err := step.save(s.db, updatedBy); err != nil {
			log.Error().Err(err).Msg("failed to save pricing settings")
			return c.Status(fiber.StatusInternalServerError).Render(Path, fiber.Map{
				"Settings":   settings,
				"Navigation": nav,
				"Error":      "Failed to save settings",
			}, handler.BaseLayout)
		}
	}

	log.Info().
		Str("updated_by", updatedBy).
		Float64("card_percentage", settings.Payment.CardPercentage).
		Float64("sales_tax_rate", settings.Tax.SalesTaxRate).
		Msg("pricing settings saved successfully")

	return c.Render(Path, fiber.Map{
		"Settings":   settings,
		"Navigation": nav,
		"Success":    "Settings saved successfully",
	}, handler.BaseLayout)
}
