package reservation

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/reservations/armreservations"
	"github.com/elC0mpa/fabric-doctor/model"
)

const (
	// ReservedResourceType tags Fabric reservation line items in the billing API
	ReservedResourceType = "MicrosoftFabric"

	// BrandString matches legacy or hand-named orders whose type tag is
	// missing or ambiguous
	BrandString = "Fabric"
)

type service struct {
	orders ordersClient
	items  itemsClient
}

// ordersClient lists reservation orders, which are billing-scoped, not
// subscription-scoped
type ordersClient interface {
	ListOrders(ctx context.Context) ([]*armreservations.ReservationOrderResponse, error)
}

// itemsClient expands one order into its line items
type itemsClient interface {
	ListByOrder(ctx context.Context, orderID string) ([]*armreservations.ReservationResponse, error)
}

type ReservationService interface {
	GetFabricReservationOrders(ctx context.Context) ([]model.ReservationOrder, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.AzureCLICredential
