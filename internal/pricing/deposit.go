package pricing

const (
	bandUpperSmall = 7
	bandUpperLarge = 14
)

// ReserveRefineDeposit computes the total deposit for a Reserve & Refine
// booking from the party size and vehicle count. A vehicle count below 1 is
// treated as 1.
//
// Parties of up to 7 guests use the 1-7 band per vehicle; up to 14 guests
// the 8-14 band. Above 14 guests, when per_vehicle_split is set, guests are
// distributed evenly across the vehicles (ceiling division) and the bands
// are re-applied to the per-vehicle guest count. Without the split flag no
// band matches and the per-vehicle deposit stays zero.
func ReserveRefineDeposit(rules ReserveRefineRules, partySize, vehicleCount int) float64 {
	if vehicleCount < 1 {
		vehicleCount = 1
	}

	depositPerVehicle := bandDeposit(rules, partySize)

	if partySize > bandUpperLarge && rules.PerVehicleSplit {
		guestsPerVehicle := (partySize + vehicleCount - 1) / vehicleCount
		depositPerVehicle = bandDeposit(rules, guestsPerVehicle)
	}

	return depositPerVehicle * float64(vehicleCount)
}

// bandDeposit maps a guest count onto the configured deposit bands.
// Counts above 14 fall outside both bands and yield zero.
func bandDeposit(rules ReserveRefineRules, guests int) float64 {
	switch {
	case guests <= bandUpperSmall:
		return rules.Band1To7
	case guests <= bandUpperLarge:
		return rules.Band8To14
	default:
		return 0
	}
}
