package model

// DateInterval represents a date range for cost queries
type DateInterval struct {
	Start *string
	End   *string
}

// CostGroup maps a service name to its aggregated cost
type CostGroup map[string]struct {
	Amount float64
	Unit   string
}

// CostInfo represents costs grouped by service for one subscription and period
type CostInfo struct {
	DateInterval
	SubscriptionID string
	CostGroup      CostGroup
}
