package model

// AuditReport holds the full result of one capacity/reservation cross-reference run
type AuditReport struct {
	WithReservation    []Capacity
	WithoutReservation []Capacity

	// UsedReservations and UnusedReservations are only populated when
	// ReservationsResolved is true; a permissions failure on the billing
	// side leaves both empty and the flag false.
	UsedReservations     []ReservationLineItem
	UnusedReservations   []ReservationLineItem
	ReservationsResolved bool
}

// TotalCapacities returns the number of capacities across both partitions
func (r AuditReport) TotalCapacities() int {
	return len(r.WithReservation) + len(r.WithoutReservation)
}
