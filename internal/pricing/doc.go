// Package pricing implements the settings-driven fee, deposit, day-type,
// and tax calculations for the portal.
//
// Each configuration key has an explicit schema struct that loads its named
// setting from the database; the calculation functions themselves are pure
// and take the loaded configuration as a parameter, so every dependency is
// visible in the function signature.
package pricing
