// Package dashboard provides the operations dashboard handler.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFleet-Admin/GoFleet-Admin/internal/config"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/controller/setting"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/models"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/web/handler"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"
)

// SettingGroup represents the settings of one type tag for template rendering.
type SettingGroup struct {
	Type     string
	Settings []models.Setting
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app or db is nil")
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.New("Dashboard", "dashboard", "dashboard").
		AddCrumb("Home", Path, false).
		AddCrumb("Dashboard", Path, true)

	settings, err := setting.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings for dashboard")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load settings")
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Groups":     groupByType(settings),
	}, handler.BaseLayout)
}

// groupByType folds the type-and-key ordered settings list into per-type
// groups, preserving order.
func groupByType(settings []models.Setting) []SettingGroup {
	var groups []SettingGroup

	for _, s := range settings {
		if len(groups) == 0 || groups[len(groups)-1].Type != s.SettingType {
			groups = append(groups, SettingGroup{Type: s.SettingType})
		}

		last := len(groups) - 1
		groups[last].Settings = append(groups[last].Settings, s)
	}

	return groups
}
