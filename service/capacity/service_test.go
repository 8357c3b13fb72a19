package capacity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elC0mpa/fabric-doctor/model"
)

type mockClient struct {
	SetSubscriptionContextFn func(ctx context.Context, subscriptionID string) error
	GetCapacitiesFn          func(ctx context.Context) ([]model.Capacity, error)

	active string
}

func (m *mockClient) SetSubscriptionContext(ctx context.Context, subscriptionID string) error {
	m.active = subscriptionID
	if m.SetSubscriptionContextFn != nil {
		return m.SetSubscriptionContextFn(ctx, subscriptionID)
	}
	return nil
}

func (m *mockClient) GetCapacities(ctx context.Context) ([]model.Capacity, error) {
	return m.GetCapacitiesFn(ctx)
}

func capID(sub, name string) string {
	return "/subscriptions/" + sub + "/resourceGroups/rg/providers/Microsoft.Fabric/capacities/" + name
}

func TestCollectAllAggregatesAcrossSubscriptions(t *testing.T) {
	client := &mockClient{}
	client.GetCapacitiesFn = func(ctx context.Context) ([]model.Capacity, error) {
		switch client.active {
		case "sub-a":
			return []model.Capacity{
				{ID: capID("sub-a", "cap-one"), Name: "cap-one", SubscriptionID: "sub-a"},
			}, nil
		case "sub-b":
			return []model.Capacity{
				{ID: capID("sub-b", "cap-two"), Name: "cap-two", SubscriptionID: "sub-b"},
			}, nil
		}
		return nil, nil
	}

	capacities := NewCollector(client, time.Second).CollectAll(context.Background(), []model.Subscription{
		{ID: "sub-a"},
		{ID: "sub-b"},
	})

	if len(capacities) != 2 {
		t.Fatalf("expected 2 capacities, got %d", len(capacities))
	}
	if capacities[0].SubscriptionID != "sub-a" || capacities[1].SubscriptionID != "sub-b" {
		t.Error("capacities must keep subscription enumeration order")
	}
}

func TestCollectAllSkipsFailingSubscription(t *testing.T) {
	client := &mockClient{
		SetSubscriptionContextFn: func(ctx context.Context, subscriptionID string) error {
			if subscriptionID == "sub-broken" {
				return errors.New("context switch denied")
			}
			return nil
		},
	}
	client.GetCapacitiesFn = func(ctx context.Context) ([]model.Capacity, error) {
		if client.active == "sub-flaky" {
			return nil, errors.New("listing failed")
		}
		return []model.Capacity{
			{ID: capID(client.active, "cap"), SubscriptionID: client.active},
		}, nil
	}

	capacities := NewCollector(client, time.Second).CollectAll(context.Background(), []model.Subscription{
		{ID: "sub-broken"},
		{ID: "sub-flaky"},
		{ID: "sub-ok"},
	})

	if len(capacities) != 1 {
		t.Fatalf("expected only the healthy subscription's capacity, got %d", len(capacities))
	}
	if capacities[0].SubscriptionID != "sub-ok" {
		t.Errorf("expected sub-ok capacity, got %s", capacities[0].SubscriptionID)
	}
}

func TestCollectAllZeroCapacitiesIsNotAnError(t *testing.T) {
	client := &mockClient{
		GetCapacitiesFn: func(ctx context.Context) ([]model.Capacity, error) {
			return nil, nil
		},
	}

	capacities := NewCollector(client, time.Second).CollectAll(context.Background(), []model.Subscription{{ID: "sub-a"}})
	if len(capacities) != 0 {
		t.Fatalf("expected no capacities, got %d", len(capacities))
	}
}

func TestCollectAllCancelsBlockedCall(t *testing.T) {
	client := &mockClient{}
	client.GetCapacitiesFn = func(ctx context.Context) ([]model.Capacity, error) {
		if client.active == "sub-hanging" {
			// Stand-in for a subprocess that never returns on its own;
			// only the per-call deadline can unblock it.
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return []model.Capacity{
			{ID: capID(client.active, "cap"), SubscriptionID: client.active},
		}, nil
	}

	start := time.Now()
	capacities := NewCollector(client, 20*time.Millisecond).CollectAll(context.Background(), []model.Subscription{
		{ID: "sub-hanging"},
		{ID: "sub-ok"},
	})

	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("blocked call was not cancelled by the per-call timeout, took %s", elapsed)
	}
	if len(capacities) != 1 || capacities[0].SubscriptionID != "sub-ok" {
		t.Fatalf("expected only sub-ok to survive a hanging listing, got %v", capacities)
	}
}

func TestDeduplicateFirstWriteWins(t *testing.T) {
	capacities := []model.Capacity{
		{ID: capID("sub-a", "cap-one"), State: "Active"},
		{ID: capID("sub-a", "CAP-ONE"), State: "Paused"},
		{ID: capID("sub-a", "cap-two")},
	}

	result := Deduplicate(capacities)
	if len(result) != 2 {
		t.Fatalf("expected 2 capacities after dedup, got %d", len(result))
	}
	if result[0].State != "Active" {
		t.Error("first occurrence must win")
	}
}
