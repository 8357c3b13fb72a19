package capacity

import (
	"context"
	"strings"
	"time"

	"github.com/elC0mpa/fabric-doctor/model"
	log "github.com/sirupsen/logrus"
)

func NewCollector(client capacityClient, callTimeout time.Duration) *collector {
	return &collector{client: client, callTimeout: callTimeout}
}

// CollectAll implements CollectorService
// Subscriptions are visited one at a time in enumeration order, each under
// its own timeout so a hanging subprocess cannot stall the whole run. Each
// visit produces an immutable batch; the batches are concatenated and
// deduplicated once the loop ends. A failed context switch or listing only
// skips that subscription.
func (c *collector) CollectAll(ctx context.Context, subscriptions []model.Subscription) []model.Capacity {
	batches := make([][]model.Capacity, 0, len(subscriptions))

	for _, sub := range subscriptions {
		batch, err := c.collectOneWithTimeout(ctx, sub)
		if err != nil {
			log.Warnf("skipping subscription %s (%s): %v", sub.ID, sub.Name, err)
			continue
		}

		if len(batch) == 0 {
			log.Infof("no Fabric capacities in subscription %s (%s)", sub.ID, sub.Name)
			continue
		}

		batches = append(batches, batch)
	}

	return Deduplicate(concat(batches))
}

func (c *collector) collectOneWithTimeout(parent context.Context, sub model.Subscription) ([]model.Capacity, error) {
	if c.callTimeout <= 0 {
		return c.collectOne(parent, sub)
	}

	ctx, cancel := context.WithTimeout(parent, c.callTimeout)
	defer cancel()
	return c.collectOne(ctx, sub)
}

func (c *collector) collectOne(ctx context.Context, sub model.Subscription) ([]model.Capacity, error) {
	if err := c.client.SetSubscriptionContext(ctx, sub.ID); err != nil {
		return nil, err
	}

	capacities, err := c.client.GetCapacities(ctx)
	if err != nil {
		return nil, err
	}

	// The resource path is authoritative for ownership, but a listing that
	// omits it still gets tagged with the subscription it came from.
	for i := range capacities {
		if capacities[i].SubscriptionID == "" {
			capacities[i].SubscriptionID = sub.ID
		}
	}

	return capacities, nil
}

// Deduplicate collapses capacities sharing a resource path, keyed
// case-insensitively, first occurrence wins. Overlapping tenant memberships
// can surface the same capacity under more than one enumeration pass.
func Deduplicate(capacities []model.Capacity) []model.Capacity {
	seen := make(map[string]struct{}, len(capacities))
	result := make([]model.Capacity, 0, len(capacities))

	for _, capacity := range capacities {
		key := strings.ToLower(capacity.ID)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, capacity)
	}

	return result
}

func concat(batches [][]model.Capacity) []model.Capacity {
	total := 0
	for _, batch := range batches {
		total += len(batch)
	}

	all := make([]model.Capacity, 0, total)
	for _, batch := range batches {
		all = append(all, batch...)
	}
	return all
}
