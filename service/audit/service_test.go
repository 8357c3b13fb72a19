package audit

import (
	"testing"

	"github.com/elC0mpa/fabric-doctor/model"
)

func reservationPath(order, item string) string {
	return "/providers/Microsoft.Capacity/reservationOrders/" + order + "/reservations/" + item
}

func TestPartitionCapacitiesDisjointAndExhaustive(t *testing.T) {
	capacities := []model.Capacity{
		{ID: "cap-1", ReservationID: reservationPath("o1", "r1")},
		{ID: "cap-2"},
		{ID: "cap-3", ReservationID: reservationPath("o1", "r2")},
		{ID: "cap-4"},
	}

	with, without := PartitionCapacities(capacities)

	if len(with)+len(without) != len(capacities) {
		t.Fatalf("partitions must cover the input: %d + %d != %d", len(with), len(without), len(capacities))
	}

	seen := make(map[string]bool)
	for _, c := range append(append([]model.Capacity{}, with...), without...) {
		if seen[c.ID] {
			t.Fatalf("capacity %s appears in both partitions", c.ID)
		}
		seen[c.ID] = true
	}

	for _, c := range with {
		if !c.HasReservation() {
			t.Errorf("capacity %s has no reservation but landed in the with partition", c.ID)
		}
	}
	for _, c := range without {
		if c.HasReservation() {
			t.Errorf("capacity %s has a reservation but landed in the without partition", c.ID)
		}
	}
}

func TestOrphanReservationIDStillCountsAsReserved(t *testing.T) {
	// The capacity's own field is authoritative, even when no retrievable
	// line item matches it.
	capacities := []model.Capacity{
		{ID: "cap-1", ReservationID: reservationPath("gone", "gone")},
	}

	report := BuildReport(capacities, nil, true)
	if len(report.WithReservation) != 1 {
		t.Fatal("capacity with a dangling reservation reference must still classify as reserved")
	}
	if len(report.WithoutReservation) != 0 {
		t.Fatal("no capacity should land in the without partition")
	}
}

func TestBuildReportCrossReference(t *testing.T) {
	// Subscription A: one reserved capacity. Subscription B: one without.
	// Order O1 holds line items R1 (attached) and R2 (unused).
	capacities := []model.Capacity{
		{ID: "cap-a", SubscriptionID: "sub-a", ReservationID: reservationPath("O1", "R1")},
		{ID: "cap-b", SubscriptionID: "sub-b"},
	}
	orders := []model.ReservationOrder{
		{
			Name: "O1",
			LineItems: []model.ReservationLineItem{
				{ID: reservationPath("O1", "R1"), Name: "R1", OrderID: "O1"},
				{ID: reservationPath("O1", "R2"), Name: "R2", OrderID: "O1"},
			},
		},
	}

	report := BuildReport(capacities, orders, true)

	if report.TotalCapacities() != 2 {
		t.Fatalf("expected total 2, got %d", report.TotalCapacities())
	}
	if len(report.WithReservation) != 1 || report.WithReservation[0].ID != "cap-a" {
		t.Error("expected cap-a in the with partition")
	}
	if len(report.WithoutReservation) != 1 || report.WithoutReservation[0].ID != "cap-b" {
		t.Error("expected cap-b in the without partition")
	}
	if len(report.UsedReservations) != 1 || report.UsedReservations[0].Name != "R1" {
		t.Error("expected R1 to be used")
	}
	if len(report.UnusedReservations) != 1 || report.UnusedReservations[0].Name != "R2" {
		t.Error("expected R2 to be unused")
	}
}

func TestBuildReportMatchesBareGUIDReferences(t *testing.T) {
	capacities := []model.Capacity{
		{ID: "cap-a", ReservationID: "R1"},
	}
	orders := []model.ReservationOrder{
		{
			Name: "O1",
			LineItems: []model.ReservationLineItem{
				{ID: reservationPath("O1", "R1"), Name: "R1", OrderID: "O1"},
			},
		},
	}

	report := BuildReport(capacities, orders, true)
	if len(report.UsedReservations) != 1 {
		t.Fatal("a bare GUID reference must still match its line item")
	}
}

func TestBuildReportLineItemsCoveredExactlyOnce(t *testing.T) {
	orders := []model.ReservationOrder{
		{
			Name: "O1",
			LineItems: []model.ReservationLineItem{
				{ID: reservationPath("O1", "R1"), Name: "R1"},
				{ID: reservationPath("O1", "R2"), Name: "R2"},
				{ID: reservationPath("O1", "R3"), Name: "R3"},
			},
		},
	}
	capacities := []model.Capacity{
		{ID: "cap-a", ReservationID: reservationPath("O1", "R2")},
	}

	report := BuildReport(capacities, orders, true)

	total := len(report.UsedReservations) + len(report.UnusedReservations)
	if total != 3 {
		t.Fatalf("every line item must land in exactly one partition, got %d of 3", total)
	}
}

func TestBuildReportUnresolvedReservations(t *testing.T) {
	capacities := []model.Capacity{
		{ID: "cap-a", ReservationID: reservationPath("O1", "R1")},
		{ID: "cap-b"},
	}

	report := BuildReport(capacities, nil, false)

	if report.ReservationsResolved {
		t.Fatal("report must carry the skipped reservation check")
	}
	if len(report.UsedReservations) != 0 || len(report.UnusedReservations) != 0 {
		t.Fatal("reservation partitions must stay empty when the listing failed")
	}
	if len(report.WithReservation) != 1 || len(report.WithoutReservation) != 1 {
		t.Fatal("capacity partitions must still render from capacity data alone")
	}
}
