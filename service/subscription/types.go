package subscription

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/elC0mpa/fabric-doctor/model"
)

type service struct {
	armLister armLister
	cliLister cliLister
}

type SubscriptionService interface {
	GetEnabledSubscriptions(ctx context.Context) ([]model.Subscription, error)
}

// armLister is the default transport, backed by the ARM subscriptions API
type armLister interface {
	ListEnabled(ctx context.Context) ([]model.Subscription, error)
}

// cliLister is the fallback for tenant-level logins, backed by
// `az account list --all` which is the only listing that crosses tenants
type cliLister interface {
	ListAccounts(ctx context.Context, all bool) ([]model.Subscription, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.AzureCLICredential
