package dashboard

import (
	"io"
	"net/http"
	"net/http/httptest"
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

// mockTemplateEngine is a simple mock for testing.
type mockTemplateEngine struct{}

func (m *mockTemplateEngine) Load() error {
	return nil
}

func (m *mockTemplateEngine) Render(_ io.Writer, _ string, binding interface{}, _ ...string) error {
	if data, ok := binding.(fiber.Map); ok {
		if _, hasGroups := data["Groups"]; hasGroups {
			return nil
		}
	}
	return fiber.ErrInternalServerError
}

func TestService_Get(t *testing.T) {
	db := setupTestDB(t)

	for _, s := range []struct {
		key         string
		settingType string
	}{
		{"payment_processing", "pricing"},
		{"tax_settings", "pricing"},
		{"branding", "general"},
	} {
		_, err := setting.Create(db, s.key, datatypes.JSON(`{}`), s.settingType, "")
		require.NoError(t, err)
	}

	service := &Service{
		cfg: &config.Config{},
		db:  db,
	}

	app := fiber.New(fiber.Config{
		Views: &mockTemplateEngine{},
	})

	app.Get(Path, service.Get)

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGroupByType(t *testing.T) {
	settings := []models.Setting{
		{SettingKey: "branding", SettingType: "general"},
		{SettingKey: "deposit_rules", SettingType: "pricing"},
		{SettingKey: "tax_settings", SettingType: "pricing"},
	}

	groups := groupByType(settings)

	require.Len(t, groups, 2)
	assert.Equal(t, "general", groups[0].Type)
	require.Len(t, groups[0].Settings, 1)
	assert.Equal(t, "pricing", groups[1].Type)
	require.Len(t, groups[1].Settings, 2)
}

func TestGroupByType_Empty(t *testing.T) {
	assert.Empty(t, groupByType(nil))
}
