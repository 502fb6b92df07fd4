package booking

import "taskturf/models"

// urgencyMultipliers scale the base price per urgency tier.
var urgencyMultipliers = map[string]float64{
	models.UrgencyUrgent:   1.5,
	models.UrgencyStandard: 1.0,
	models.UrgencyFlexible: 0.9,
}

// UrgencyMultiplier returns the price multiplier for an urgency tier.
// Unknown tiers are priced as standard.
func UrgencyMultiplier(urgency string) float64 {
	if m, ok := urgencyMultipliers[urgency]; ok {
		return m
	}
	return 1.0
}

// ValidUrgency reports whether the tier is one of the known values.
func ValidUrgency(urgency string) bool {
	_, ok := urgencyMultipliers[urgency]
	return ok
}

// ApplyUrgency computes base price x urgency multiplier.
func ApplyUrgency(basePrice float64, urgency string) float64 {
	return basePrice * UrgencyMultiplier(urgency)
}
