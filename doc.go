// Package main provides the entry point for the GoFleet-Admin operations portal.
// It initializes and runs a web server using the Fiber framework that lets
// transportation operators manage pricing and tax settings through a web
// interface and request fee, deposit, and tax quotes through a JSON API.
// The application uses gorm for data persistence; pricing behavior is driven
// by named configuration settings stored in the database.
package main
