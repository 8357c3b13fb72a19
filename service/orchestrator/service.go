package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/fabric-doctor/model"
	"github.com/elC0mpa/fabric-doctor/service"
	"github.com/elC0mpa/fabric-doctor/service/audit"
	"github.com/elC0mpa/fabric-doctor/service/capacity"
	"github.com/elC0mpa/fabric-doctor/utils"
	log "github.com/sirupsen/logrus"
)

func NewService(
	identityService service.IdentityService,
	subscriptionService service.SubscriptionService,
	capacityService service.CapacityService,
	reservationService service.ReservationService,
	costService service.CostService,
	callTimeout time.Duration,
) *orchestratorService {
	if callTimeout <= 0 {
		callTimeout = 60 * time.Second
	}

	return &orchestratorService{
		identityService:     identityService,
		subscriptionService: subscriptionService,
		capacityService:     capacityService,
		reservationService:  reservationService,
		costService:         costService,
		callTimeout:         callTimeout,
	}
}

// Orchestrate runs the full audit: identity check, subscription resolution,
// capacity collection, reservation resolution, cross-reference, report.
// Only precondition failures return an error; everything else degrades.
func (s *orchestratorService) Orchestrate(flags model.Flags) error {
	parent := context.Background()

	account, err := s.checkIdentity(parent)
	if err != nil {
		return err
	}

	subscriptions, err := s.resolveSubscriptions(parent, flags, account)
	if err != nil {
		return err
	}

	collector := capacity.NewCollector(s.capacityService, s.callTimeout)
	capacities := collector.CollectAll(parent, subscriptions)

	orders, resolved := s.resolveReservations(parent)

	report := audit.BuildReport(capacities, orders, resolved)

	utils.StopSpinner()
	utils.DrawAuditReport(account, report)

	if flags.Chart {
		utils.DrawCapacityChart(subscriptions, report)
	}

	if flags.Costs {
		s.reportCosts(parent, subscriptions)
	}

	return nil
}

func (s *orchestratorService) checkIdentity(parent context.Context) (*model.AccountInfo, error) {
	ctx, cancel := context.WithTimeout(parent, s.callTimeout)
	defer cancel()

	account, err := s.identityService.GetSignedInAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("identity check failed: %w", err)
	}

	log.Debugf("signed in as %s (subscription %s, tenant %s)", account.User, account.SubscriptionID, account.TenantID)
	return account, nil
}

func (s *orchestratorService) resolveSubscriptions(parent context.Context, flags model.Flags, account *model.AccountInfo) ([]model.Subscription, error) {
	if flags.Subscription != "" {
		return []model.Subscription{{ID: flags.Subscription, TenantID: account.TenantID, Name: flags.Subscription}}, nil
	}

	ctx, cancel := context.WithTimeout(parent, s.callTimeout)
	defer cancel()

	subscriptions, err := s.subscriptionService.GetEnabledSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	log.Infof("scanning %d subscription(s)", len(subscriptions))
	return subscriptions, nil
}

// resolveReservations degrades to a skipped reservation check on any failure,
// missing billing-read permission being the usual cause.
func (s *orchestratorService) resolveReservations(parent context.Context) ([]model.ReservationOrder, bool) {
	ctx, cancel := context.WithTimeout(parent, s.callTimeout)
	defer cancel()

	orders, err := s.reservationService.GetFabricReservationOrders(ctx)
	if err != nil {
		log.Warnf("reservation cross-reference disabled for this run: %v", err)
		return nil, false
	}

	return orders, true
}

func (s *orchestratorService) reportCosts(parent context.Context, subscriptions []model.Subscription) {
	for _, sub := range subscriptions {
		ctx, cancel := context.WithTimeout(parent, s.callTimeout)
		costInfo, err := s.costService.GetCurrentMonthCostsByService(ctx, sub.ID)
		cancel()

		if err != nil {
			log.Warnf("cost query failed for subscription %s: %v", sub.ID, err)
			continue
		}

		utils.DrawCostTable(sub, costInfo)
	}
}
