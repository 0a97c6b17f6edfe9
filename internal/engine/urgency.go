package engine

// Urgency maps days-until-expiry to a discrete priority weight. Zero or
// negative daysLeft still returns the highest weight: overdue items must
// sort first, not fall out of the ranking.
func Urgency(daysLeft int) int {
	switch {
	case daysLeft <= 1:
		return 100
	case daysLeft <= 2:
		return 80
	case daysLeft <= 3:
		return 60
	case daysLeft <= 7:
		return 40
	default:
		return 20
	}
}
