package audit

import (
	"strings"

	"github.com/elC0mpa/fabric-doctor/model"
)

// BuildReport cross-references collected capacities with resolved reservation
// orders. reservationsResolved is false when the billing listing failed, in
// which case the reservation partition stays empty and the capacity partition
// still comes out of the capacities' own fields.
func BuildReport(capacities []model.Capacity, orders []model.ReservationOrder, reservationsResolved bool) model.AuditReport {
	report := model.AuditReport{ReservationsResolved: reservationsResolved}

	report.WithReservation, report.WithoutReservation = PartitionCapacities(capacities)

	if !reservationsResolved {
		return report
	}

	used := usedReservationKeys(report.WithReservation)
	report.UsedReservations, report.UnusedReservations = PartitionLineItems(orders, used)

	return report
}

// PartitionCapacities splits capacities on their own reservation field.
// Every input lands in exactly one of the two partitions.
func PartitionCapacities(capacities []model.Capacity) (with, without []model.Capacity) {
	for _, capacity := range capacities {
		if capacity.HasReservation() {
			with = append(with, capacity)
		} else {
			without = append(without, capacity)
		}
	}
	return with, without
}

// PartitionLineItems splits every line item of every order into used and
// unused, depending on whether any capacity references it.
func PartitionLineItems(orders []model.ReservationOrder, usedKeys map[string]struct{}) (used, unused []model.ReservationLineItem) {
	for _, order := range orders {
		for _, item := range order.LineItems {
			if isUsed(item, usedKeys) {
				used = append(used, item)
			} else {
				unused = append(unused, item)
			}
		}
	}
	return used, unused
}

// usedReservationKeys collects every reservation identifier referenced by a
// capacity, normalized for matching.
func usedReservationKeys(withReservation []model.Capacity) map[string]struct{} {
	keys := make(map[string]struct{}, len(withReservation))
	for _, capacity := range withReservation {
		keys[normalizeKey(capacity.ReservationID)] = struct{}{}
	}
	return keys
}

func isUsed(item model.ReservationLineItem, usedKeys map[string]struct{}) bool {
	if _, ok := usedKeys[normalizeKey(item.ID)]; ok {
		return true
	}
	// Some capacities reference the line item by its bare GUID rather than
	// the full resource path.
	_, ok := usedKeys[normalizeKey(item.Name)]
	return ok
}

// normalizeKey lower-cases an identifier and strips a trailing path separator
// so full-path and bare references compare consistently.
func normalizeKey(id string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(id), "/"))
}
