// Package quote provides the JSON quoting API for fees, deposits, day types,
// and taxes.
package quote

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFleet-Admin/GoFleet-Admin/internal/config"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/pricing"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/web/handler"
)

const (
	// Path is the base path of the quoting API.
	Path = "/api/quote"

	// DayTypePath is the path of the day type classification endpoint.
	DayTypePath = "/api/day-type"

	dateLayout = "2006-01-02"
)

// FeeRequest is the request body of the payment fee endpoint.
type FeeRequest struct {
	Amount        float64 `json:"amount"        validate:"gte=0"`
	PaymentMethod string  `json:"paymentMethod"`
}

// DepositRequest is the request body of the deposit endpoint.
type DepositRequest struct {
	PartySize    int `json:"partySize"    validate:"gte=1"`
	VehicleCount int `json:"vehicleCount"`
}

// TaxRequest is the request body of the tax endpoint.
type TaxRequest struct {
	Amount      float64 `json:"amount"      validate:"gte=0"`
	ServiceType string  `json:"serviceType"`
}

// Service is the quoting API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the quoting API handler.
var Handler = Service{}

// Init initializes the quoting API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app or db is nil")
	}

	s.db = db
	s.cfg = cfg

	app.Route(Path, func(router fiber.Router) {
		router.Post("/fee", s.PostFee)
		router.Post("/deposit", s.PostDeposit)
		router.Post("/tax", s.PostTax)
	})

	app.Get(DayTypePath, s.GetDayType)

	return nil
}

// configError maps calculation setup failures onto API responses. A missing
// configuration row is a server-side precondition failure, not a bad request.
func configError(c *fiber.Ctx, err error) error {
	if errors.Is(err, pricing.ErrMissingConfiguration) {
		log.Error().Err(err).Msg("quote rejected: configuration missing")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Error().Err(err).Msg("quote failed")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "failed to load configuration",
	})
}

// PostFee computes the processing fee breakdown for an amount and payment method.
func (s *Service) PostFee(c *fiber.Ctx) error {
	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Amount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must not be negative"})
	}

	var cfg pricing.PaymentProcessing
	if err := cfg.Load(s.db); err != nil {
		return configError(c, err)
	}

	breakdown := pricing.CalculatePaymentFee(cfg, req.Amount, pricing.PaymentMethod(req.PaymentMethod))

	return c.JSON(breakdown)
}

// PostDeposit computes the Reserve & Refine deposit for a party and vehicle count.
func (s *Service) PostDeposit(c *fiber.Ctx) error {
	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.PartySize < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "partySize must be at least 1"})
	}

	var rules pricing.DepositRules
	if err := rules.Load(s.db); err != nil {
		return configError(c, err)
	}

	deposit := pricing.ReserveRefineDeposit(rules.ReserveRefine, req.PartySize, req.VehicleCount)

	return c.JSON(fiber.Map{
		"deposit": deposit,
	})
}

// PostTax computes the sales tax for an amount and service type.
func (s *Service) PostTax(c *fiber.Ctx) error {
	var req TaxRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Amount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must not be negative"})
	}

	var cfg pricing.TaxSettings
	if err := cfg.Load(s.db); err != nil {
		return configError(c, err)
	}

	tax := pricing.CalculateTax(cfg, req.Amount, pricing.ServiceType(req.ServiceType))

	return c.JSON(fiber.Map{
		"tax": tax,
	})
}

// GetDayType classifies a date (query parameter "date", YYYY-MM-DD, default
// today) into its operating day type.
func (s *Service) GetDayType(c *fiber.Ctx) error {
	date := time.Now()

	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be formatted as YYYY-MM-DD"})
		}

		date = parsed
	}

	var defs pricing.DayTypeDefinitions
	if err := defs.Load(s.db); err != nil {
		return configError(c, err)
	}

	return c.JSON(fiber.Map{
		"date":    date.Format(dateLayout),
		"dayType": pricing.ClassifyDayType(defs, date),
	})
}
