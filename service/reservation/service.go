package reservation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/reservations/armreservations"
	"github.com/elC0mpa/fabric-doctor/model"
	log "github.com/sirupsen/logrus"
)

func NewService(credential *Credential) (*service, error) {
	orderClient, err := armreservations.NewReservationOrderClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation order client: %w", err)
	}

	reservationClient, err := armreservations.NewReservationClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation client: %w", err)
	}

	return &service{
		orders: &orderPagerClient{client: orderClient},
		items:  &itemPagerClient{client: reservationClient},
	}, nil
}

// GetFabricReservationOrders implements service.ReservationService
// Orders are listed once, globally. An order survives when its display name
// contains the Fabric brand string, or any of its line items carries the
// Fabric reserved-resource-type (the type tag lives on line items in the
// billing API). A failed line-item expansion skips only that order.
func (s *service) GetFabricReservationOrders(ctx context.Context) ([]model.ReservationOrder, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		if IsPermissionError(err) {
			return nil, fmt.Errorf("missing billing read permission on reservation orders: %w", err)
		}
		return nil, fmt.Errorf("failed to list reservation orders: %w", err)
	}

	var result []model.ReservationOrder

	for _, order := range orders {
		converted := convertOrder(order)
		if converted == nil {
			continue
		}

		items, err := s.items.ListByOrder(ctx, converted.Name)
		if err != nil {
			log.Warnf("skipping reservation order %s: failed to list line items: %v", converted.Name, err)
			continue
		}

		for _, item := range items {
			converted.LineItems = append(converted.LineItems, convertLineItem(converted.Name, item))
		}

		if !matchesFabric(*converted) {
			continue
		}

		result = append(result, *converted)
	}

	return result, nil
}

func matchesFabric(order model.ReservationOrder) bool {
	if strings.Contains(strings.ToLower(order.DisplayName), strings.ToLower(BrandString)) {
		return true
	}
	for _, item := range order.LineItems {
		if strings.EqualFold(item.ReservedResourceType, ReservedResourceType) {
			return true
		}
	}
	return false
}

// IsPermissionError reports whether the error is an authorization failure
// from the management API, the usual cause being a missing billing-read role.
func IsPermissionError(err error) bool {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusForbidden || respErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

func convertOrder(order *armreservations.ReservationOrderResponse) *model.ReservationOrder {
	if order == nil || order.Name == nil {
		return nil
	}

	result := &model.ReservationOrder{Name: *order.Name}
	if order.ID != nil {
		result.ID = *order.ID
	}

	if order.Properties != nil {
		if order.Properties.DisplayName != nil {
			result.DisplayName = *order.Properties.DisplayName
		}
		if order.Properties.Term != nil {
			result.Term = string(*order.Properties.Term)
		}
		if order.Properties.ExpiryDate != nil {
			result.ExpiryDate = *order.Properties.ExpiryDate
		}
	}

	return result
}

func convertLineItem(orderName string, item *armreservations.ReservationResponse) model.ReservationLineItem {
	result := model.ReservationLineItem{OrderID: orderName}

	if item.ID != nil {
		result.ID = *item.ID
	}
	if item.Name != nil {
		result.Name = *item.Name
	}
	if item.SKU != nil && item.SKU.Name != nil {
		result.SKUName = *item.SKU.Name
	}

	if item.Properties != nil {
		if item.Properties.DisplayName != nil {
			result.DisplayName = *item.Properties.DisplayName
		}
		if item.Properties.ReservedResourceType != nil {
			result.ReservedResourceType = string(*item.Properties.ReservedResourceType)
		}
		if item.Properties.ProvisioningState != nil {
			result.ProvisioningState = string(*item.Properties.ProvisioningState)
		}
		if item.Properties.Quantity != nil {
			result.Quantity = *item.Properties.Quantity
		}
	}

	return result
}

// orderPagerClient adapts the reservation order pager to ordersClient
type orderPagerClient struct {
	client *armreservations.ReservationOrderClient
}

func (c *orderPagerClient) ListOrders(ctx context.Context) ([]*armreservations.ReservationOrderResponse, error) {
	var orders []*armreservations.ReservationOrderResponse

	pager := c.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		orders = append(orders, page.Value...)
	}

	return orders, nil
}

// itemPagerClient adapts the per-order reservation pager to itemsClient
type itemPagerClient struct {
	client *armreservations.ReservationClient
}

func (c *itemPagerClient) ListByOrder(ctx context.Context, orderID string) ([]*armreservations.ReservationResponse, error) {
	var items []*armreservations.ReservationResponse

	pager := c.client.NewListPager(orderID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Value...)
	}

	return items, nil
}
