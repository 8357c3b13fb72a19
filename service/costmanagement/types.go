package costmanagement

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/elC0mpa/fabric-doctor/model"
)

type service struct {
	client *armcostmanagement.QueryClient
}

type CostService interface {
	GetCurrentMonthCostsByService(ctx context.Context, subscriptionID string) (*model.CostInfo, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.AzureCLICredential
