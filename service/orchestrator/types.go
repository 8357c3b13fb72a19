package orchestrator

import (
	"time"

	"github.com/elC0mpa/fabric-doctor/model"
	"github.com/elC0mpa/fabric-doctor/service"
)

type orchestratorService struct {
	identityService     service.IdentityService
	subscriptionService service.SubscriptionService
	capacityService     service.CapacityService
	reservationService  service.ReservationService
	costService         service.CostService

	callTimeout time.Duration
}

type OrchestratorService interface {
	Orchestrate(flags model.Flags) error
}
