package response

import (
	"time"

	"github.com/elC0mpa/fabric-doctor/model"
)

// ConvertSubscriptions converts model subscriptions to response subscriptions
func ConvertSubscriptions(subscriptions []model.Subscription) []Subscription {
	result := make([]Subscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		result = append(result, Subscription{
			ID:       sub.ID,
			TenantID: sub.TenantID,
			Name:     sub.Name,
			State:    sub.State,
		})
	}
	return result
}

// ConvertCapacities converts model capacities to response capacities
func ConvertCapacities(capacities []model.Capacity) []Capacity {
	result := make([]Capacity, 0, len(capacities))
	for _, capacity := range capacities {
		result = append(result, Capacity{
			ID:             capacity.ID,
			Name:           capacity.Name,
			Location:       capacity.Location,
			ResourceGroup:  capacity.ResourceGroup,
			SubscriptionID: capacity.SubscriptionID,
			SKUName:        capacity.SKUName,
			State:          capacity.State,
			ReservationID:  capacity.ReservationID,
		})
	}
	return result
}

// ConvertOrders converts model reservation orders to response orders
func ConvertOrders(orders []model.ReservationOrder) []ReservationOrder {
	result := make([]ReservationOrder, 0, len(orders))
	for _, order := range orders {
		converted := ReservationOrder{
			ID:          order.ID,
			Name:        order.Name,
			DisplayName: order.DisplayName,
			Term:        order.Term,
			LineItems:   convertLineItems(order.LineItems),
		}
		if !order.ExpiryDate.IsZero() {
			converted.ExpiryDate = order.ExpiryDate.Format(time.RFC3339)
		}
		result = append(result, converted)
	}
	return result
}

// ConvertAuditReport converts a model audit report to its response form
func ConvertAuditReport(report model.AuditReport) AuditReport {
	return AuditReport{
		WithReservation:    ConvertCapacities(report.WithReservation),
		WithoutReservation: ConvertCapacities(report.WithoutReservation),
		UnusedReservations: convertLineItems(report.UnusedReservations),
		Summary: AuditSummary{
			TotalCapacities:      report.TotalCapacities(),
			WithReservation:      len(report.WithReservation),
			WithoutReservation:   len(report.WithoutReservation),
			UnusedReservations:   len(report.UnusedReservations),
			ReservationsResolved: report.ReservationsResolved,
		},
	}
}

func convertLineItems(items []model.ReservationLineItem) []ReservationLineItem {
	result := make([]ReservationLineItem, 0, len(items))
	for _, item := range items {
		result = append(result, ReservationLineItem{
			ID:                item.ID,
			Name:              item.Name,
			OrderID:           item.OrderID,
			DisplayName:       item.DisplayName,
			SKUName:           item.SKUName,
			ProvisioningState: item.ProvisioningState,
			Quantity:          item.Quantity,
		})
	}
	return result
}
