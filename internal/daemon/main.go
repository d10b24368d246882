// Package daemon wires the database, session store, and web service together.
package daemon

import (
	"fmt"

	sessionmysql "github.com/gofiber/storage/mysql/v2"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/GoFleet-Admin/GoFleet-Admin/internal/config"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/dsn"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/db/models"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/web"
	"github.com/GoFleet-Admin/GoFleet-Admin/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	dbDriver := gormmysql.Open(dsn.Create(cfg)) // open db with gorm mysql driver

	db, err := gorm.Open(dbDriver, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.Setting{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	// Initialize fiber session store
	sessionStorage := sessionmysql.New(sessionmysql.Config{
		ConnectionURI: dsn.Create(cfg),
		Table:         "sessions",
	})

	session.Init(sessionStorage)

	return &Daemon{
		cfg:        cfg,
		webService: *web.New(cfg, db),
	}
}
