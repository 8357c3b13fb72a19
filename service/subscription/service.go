package subscription

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/fabric-doctor/model"
	log "github.com/sirupsen/logrus"
)

func NewService(credential *Credential, cliLister cliLister) (*service, error) {
	client, err := armsubscriptions.NewClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{
		armLister: &armClient{client: client},
		cliLister: cliLister,
	}, nil
}

// GetEnabledSubscriptions implements service.SubscriptionService
// It returns every enabled subscription the credential can read. A credential
// whose only entry is the tenant itself gets re-resolved through the CLI's
// cross-tenant listing, with tenant-root pseudo-entries filtered out.
func (s *service) GetEnabledSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	subscriptions, err := s.armLister.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	// The ARM listing shows a tenant-level login as a single self-referencing
	// entry or as nothing at all; both mean the real subscriptions live behind
	// the cross-tenant listing.
	if !IsTenantLevelAccount(subscriptions) && len(subscriptions) > 0 {
		return subscriptions, nil
	}

	log.Warn("credential resolves no subscription of its own, re-resolving across all tenant memberships")

	all, err := s.cliLister.ListAccounts(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions across tenants: %w", err)
	}

	filtered := FilterTenantRootEntries(all)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no subscriptions resolvable for this tenant-level account; grant it at least Reader on one subscription")
	}

	return filtered, nil
}

// IsTenantLevelAccount reports whether the listing describes a credential
// whose default context is the tenant itself: a single entry whose
// subscription ID equals its own tenant ID.
func IsTenantLevelAccount(subscriptions []model.Subscription) bool {
	return len(subscriptions) == 1 && isTenantRoot(subscriptions[0])
}

// FilterTenantRootEntries drops the pseudo-entries a cross-tenant listing
// emits for each tenant membership, keeping only real enabled subscriptions.
func FilterTenantRootEntries(subscriptions []model.Subscription) []model.Subscription {
	filtered := make([]model.Subscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		if isTenantRoot(sub) {
			continue
		}
		if sub.State != "" && !strings.EqualFold(sub.State, "Enabled") {
			continue
		}
		filtered = append(filtered, sub)
	}
	return filtered
}

func isTenantRoot(sub model.Subscription) bool {
	return sub.ID != "" && strings.EqualFold(sub.ID, sub.TenantID)
}

// armClient adapts the ARM subscriptions pager to the armLister interface
type armClient struct {
	client *armsubscriptions.Client
}

func (c *armClient) ListEnabled(ctx context.Context) ([]model.Subscription, error) {
	var subscriptions []model.Subscription

	pager := c.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, sub := range page.Value {
			if sub.SubscriptionID == nil {
				continue
			}
			if sub.State == nil || *sub.State != armsubscriptions.SubscriptionStateEnabled {
				continue
			}

			displayName := *sub.SubscriptionID
			if sub.DisplayName != nil {
				displayName = *sub.DisplayName
			}

			tenantID := ""
			if sub.TenantID != nil {
				tenantID = *sub.TenantID
			}

			subscriptions = append(subscriptions, model.Subscription{
				ID:       *sub.SubscriptionID,
				TenantID: tenantID,
				Name:     displayName,
				State:    string(*sub.State),
			})
		}
	}

	return subscriptions, nil
}
