package service

import (
	"context"

	"github.com/elC0mpa/fabric-doctor/model"
)

// IdentityService verifies the Azure CLI session the whole run depends on
type IdentityService interface {
	GetSignedInAccount(ctx context.Context) (*model.AccountInfo, error)
}

// SubscriptionService resolves the subscriptions to scan
type SubscriptionService interface {
	GetEnabledSubscriptions(ctx context.Context) ([]model.Subscription, error)
}

// CapacityService lists Fabric capacities in the active subscription
type CapacityService interface {
	SetSubscriptionContext(ctx context.Context, subscriptionID string) error
	GetCapacities(ctx context.Context) ([]model.Capacity, error)
}

// ReservationService lists purchased reservation orders with their line items,
// already filtered down to the Fabric service
type ReservationService interface {
	GetFabricReservationOrders(ctx context.Context) ([]model.ReservationOrder, error)
}

// CostService provides billing and cost analysis
type CostService interface {
	GetCurrentMonthCostsByService(ctx context.Context, subscriptionID string) (*model.CostInfo, error)
}
