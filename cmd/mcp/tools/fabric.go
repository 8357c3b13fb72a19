package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/elC0mpa/fabric-doctor/cmd/mcp/response"
	"github.com/elC0mpa/fabric-doctor/model"
	"github.com/elC0mpa/fabric-doctor/service/audit"
	"github.com/elC0mpa/fabric-doctor/service/azurecli"
	"github.com/elC0mpa/fabric-doctor/service/capacity"
	"github.com/elC0mpa/fabric-doctor/service/reservation"
	"github.com/elC0mpa/fabric-doctor/service/subscription"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterFabricTools registers all Fabric audit tools with the MCP server
func RegisterFabricTools(s *server.MCPServer, subscriptionID string, callTimeout time.Duration) {
	s.AddTool(
		mcp.NewTool("fabric_list_subscriptions",
			mcp.WithDescription("List all enabled Azure subscriptions the current credential has access to, resolving tenant-level accounts across all tenant memberships"),
		),
		makeListSubscriptionsHandler(callTimeout),
	)

	s.AddTool(
		mcp.NewTool("fabric_list_capacities",
			mcp.WithDescription("List Microsoft Fabric capacities across accessible subscriptions, including their SKU, state and attached reservation"),
		),
		makeListCapacitiesHandler(subscriptionID, callTimeout),
	)

	s.AddTool(
		mcp.NewTool("fabric_list_reservation_orders",
			mcp.WithDescription("List purchased reservation orders for Microsoft Fabric with their individual reservation line items"),
		),
		makeListReservationOrdersHandler(callTimeout),
	)

	s.AddTool(
		mcp.NewTool("fabric_audit_reservations",
			mcp.WithDescription("Cross-reference Fabric capacities with purchased reservations: which capacities are reserved, which run pay-as-you-go, and which reservations are unused"),
		),
		makeAuditHandler(subscriptionID, callTimeout),
	)
}

func makeListSubscriptionsHandler(callTimeout time.Duration) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, cancel := context.WithTimeout(ctx, callTimeout)
		defer cancel()

		subscriptions, err := resolveSubscriptions(ctx, "")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return toJSONResult(response.ConvertSubscriptions(subscriptions))
	}
}

func makeListCapacitiesHandler(subscriptionID string, callTimeout time.Duration) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, cancel := context.WithTimeout(ctx, callTimeout)
		defer cancel()

		capacities, _, err := collectCapacities(ctx, subscriptionID, callTimeout)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return toJSONResult(response.ConvertCapacities(capacities))
	}
}

func makeListReservationOrdersHandler(callTimeout time.Duration) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, cancel := context.WithTimeout(ctx, callTimeout)
		defer cancel()

		reservationService, err := newReservationService()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		orders, err := reservationService.GetFabricReservationOrders(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list reservation orders: %v", err)), nil
		}

		return toJSONResult(response.ConvertOrders(orders))
	}
}

func makeAuditHandler(subscriptionID string, callTimeout time.Duration) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, cancel := context.WithTimeout(ctx, callTimeout)
		defer cancel()

		capacities, _, err := collectCapacities(ctx, subscriptionID, callTimeout)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var orders []model.ReservationOrder
		resolved := false
		if reservationService, err := newReservationService(); err == nil {
			if listed, err := reservationService.GetFabricReservationOrders(ctx); err == nil {
				orders = listed
				resolved = true
			}
		}

		report := audit.BuildReport(capacities, orders, resolved)
		return toJSONResult(response.ConvertAuditReport(report))
	}
}

func resolveSubscriptions(ctx context.Context, subscriptionID string) ([]model.Subscription, error) {
	if subscriptionID != "" {
		return []model.Subscription{{ID: subscriptionID, Name: subscriptionID}}, nil
	}

	credential, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	subscriptionService, err := subscription.NewService(credential, azurecli.NewService(nil))
	if err != nil {
		return nil, err
	}

	return subscriptionService.GetEnabledSubscriptions(ctx)
}

func collectCapacities(ctx context.Context, subscriptionID string, callTimeout time.Duration) ([]model.Capacity, []model.Subscription, error) {
	subscriptions, err := resolveSubscriptions(ctx, subscriptionID)
	if err != nil {
		return nil, nil, err
	}

	collector := capacity.NewCollector(azurecli.NewService(nil), callTimeout)
	return collector.CollectAll(ctx, subscriptions), subscriptions, nil
}

func newReservationService() (reservation.ReservationService, error) {
	credential, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}
	return reservation.NewService(credential)
}

func toJSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
