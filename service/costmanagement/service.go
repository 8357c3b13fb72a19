package costmanagement

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/elC0mpa/fabric-doctor/model"
)

func NewService(credential *Credential) (*service, error) {
	client, err := armcostmanagement.NewQueryClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cost management client: %w", err)
	}

	return &service{client: client}, nil
}

// GetCurrentMonthCostsByService implements service.CostService
func (s *service) GetCurrentMonthCostsByService(ctx context.Context, subscriptionID string) (*model.CostInfo, error) {
	endDate := time.Now()
	startDate := time.Date(endDate.Year(), endDate.Month(), 1, 0, 0, 0, 0, endDate.Location())
	startDateStr := startDate.Format("2006-01-02")
	endDateStr := endDate.Format("2006-01-02")

	scope := fmt.Sprintf("/subscriptions/%s", subscriptionID)

	// Query costs grouped by ServiceName
	queryDefinition := armcostmanagement.QueryDefinition{
		Type:      to.Ptr(armcostmanagement.ExportTypeActualCost),
		Timeframe: to.Ptr(armcostmanagement.TimeframeTypeCustom),
		TimePeriod: &armcostmanagement.QueryTimePeriod{
			From: to.Ptr(startDate),
			To:   to.Ptr(endDate),
		},
		Dataset: &armcostmanagement.QueryDataset{
			Granularity: to.Ptr(armcostmanagement.GranularityTypeDaily),
			Aggregation: map[string]*armcostmanagement.QueryAggregation{
				"totalCost": {
					Name:     to.Ptr("Cost"),
					Function: to.Ptr(armcostmanagement.FunctionTypeSum),
				},
			},
			Grouping: []*armcostmanagement.QueryGrouping{
				{
					Type: to.Ptr(armcostmanagement.QueryColumnTypeDimension),
					Name: to.Ptr("ServiceName"),
				},
			},
		},
	}

	resp, err := s.client.Usage(ctx, scope, queryDefinition, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query costs: %w", err)
	}

	costGroups := make(model.CostGroup)

	if resp.Properties != nil && resp.Properties.Rows != nil {
		for _, row := range resp.Properties.Rows {
			if len(row) < 2 {
				continue
			}
			// Row format: [cost, serviceName, ...]
			cost, ok := row[0].(float64)
			if !ok {
				continue
			}
			serviceName, ok := row[1].(string)
			if !ok {
				continue
			}

			if cost > 0 {
				// Aggregate daily rows into one amount per service
				existing := costGroups[serviceName]
				costGroups[serviceName] = struct {
					Amount float64
					Unit   string
				}{
					Amount: existing.Amount + cost,
					Unit:   "USD",
				}
			}
		}
	}

	return &model.CostInfo{
		DateInterval: model.DateInterval{
			Start: &startDateStr,
			End:   &endDateStr,
		},
		SubscriptionID: subscriptionID,
		CostGroup:      costGroups,
	}, nil
}
