package model

// AccountInfo represents the identity of the signed-in Azure CLI session
type AccountInfo struct {
	SubscriptionID string
	TenantID       string
	User           string
}

// Subscription represents one enumerable Azure subscription
type Subscription struct {
	ID       string
	TenantID string
	Name     string
	State    string
}

// Capacity represents a single Fabric capacity resource
type Capacity struct {
	ID             string
	Name           string
	Location       string
	ResourceGroup  string
	SubscriptionID string
	SKUName        string
	State          string
	ReservationID  string
}

// HasReservation reports whether the capacity carries its own reservation
// reference. Only this field decides the capacity partition; whether the
// referenced line item is retrievable does not matter here.
func (c Capacity) HasReservation() bool {
	return c.ReservationID != ""
}
