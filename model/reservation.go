package model

import "time"

// ReservationOrder represents a billing-level reservation purchase
type ReservationOrder struct {
	ID          string
	Name        string
	DisplayName string
	Term        string
	ExpiryDate  time.Time
	LineItems   []ReservationLineItem
}

// ReservationLineItem represents one trackable reservation inside an order
type ReservationLineItem struct {
	ID                   string
	Name                 string
	OrderID              string
	DisplayName          string
	SKUName              string
	ReservedResourceType string
	ProvisioningState    string
	Quantity             int32
}
