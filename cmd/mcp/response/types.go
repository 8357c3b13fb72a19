package response

// Subscription represents one enumerable Azure subscription
type Subscription struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	State    string `json:"state"`
}

// Capacity represents a single Fabric capacity resource
type Capacity struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	ResourceGroup  string `json:"resource_group"`
	SubscriptionID string `json:"subscription_id"`
	SKUName        string `json:"sku_name"`
	State          string `json:"state"`
	ReservationID  string `json:"reservation_id,omitempty"`
}

// ReservationLineItem represents one trackable reservation inside an order
type ReservationLineItem struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	OrderID           string `json:"order_id"`
	DisplayName       string `json:"display_name,omitempty"`
	SKUName           string `json:"sku_name,omitempty"`
	ProvisioningState string `json:"provisioning_state,omitempty"`
	Quantity          int32  `json:"quantity"`
}

// ReservationOrder represents a billing-level reservation purchase
type ReservationOrder struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	DisplayName string                `json:"display_name,omitempty"`
	Term        string                `json:"term,omitempty"`
	ExpiryDate  string                `json:"expiry_date,omitempty"`
	LineItems   []ReservationLineItem `json:"line_items"`
}

// AuditSummary holds the counts of one cross-reference run
type AuditSummary struct {
	TotalCapacities      int  `json:"total_capacities"`
	WithReservation      int  `json:"with_reservation"`
	WithoutReservation   int  `json:"without_reservation"`
	UnusedReservations   int  `json:"unused_reservations"`
	ReservationsResolved bool `json:"reservations_resolved"`
}

// AuditReport is the full cross-reference result
type AuditReport struct {
	WithReservation    []Capacity            `json:"capacities_with_reservation"`
	WithoutReservation []Capacity            `json:"capacities_without_reservation"`
	UnusedReservations []ReservationLineItem `json:"reservations_without_capacity"`
	Summary            AuditSummary          `json:"summary"`
}
