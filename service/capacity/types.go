package capacity

import (
	"context"
	"time"

	"github.com/elC0mpa/fabric-doctor/model"
)

type collector struct {
	client      capacityClient
	callTimeout time.Duration
}

// capacityClient is the transport behind one subscription's capacity listing
type capacityClient interface {
	SetSubscriptionContext(ctx context.Context, subscriptionID string) error
	GetCapacities(ctx context.Context) ([]model.Capacity, error)
}

type CollectorService interface {
	CollectAll(ctx context.Context, subscriptions []model.Subscription) []model.Capacity
}
