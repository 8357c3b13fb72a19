package main

import (
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/elC0mpa/fabric-doctor/service/azurecli"
	"github.com/elC0mpa/fabric-doctor/service/costmanagement"
	"github.com/elC0mpa/fabric-doctor/service/flag"
	"github.com/elC0mpa/fabric-doctor/service/orchestrator"
	"github.com/elC0mpa/fabric-doctor/service/reservation"
	"github.com/elC0mpa/fabric-doctor/service/subscription"
	"github.com/elC0mpa/fabric-doctor/utils"
	log "github.com/sirupsen/logrus"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		fatal(err)
	}

	if level, err := log.ParseLevel(flags.LogLevel); err != nil {
		log.WithError(err).Warnf("couldn't parse log level, using default: %s", log.GetLevel())
	} else {
		log.SetLevel(level)
	}

	binary, err := azurecli.Locate()
	if err != nil {
		fatal(err)
	}
	log.Debugf("using Azure CLI at %s", binary)

	cliService := azurecli.NewService(nil)

	// The CLI credential reuses the same az session the preflight validates
	credential, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		fatal(err)
	}

	subscriptionService, err := subscription.NewService(credential, cliService)
	if err != nil {
		fatal(err)
	}

	reservationService, err := reservation.NewService(credential)
	if err != nil {
		fatal(err)
	}

	costService, err := costmanagement.NewService(credential)
	if err != nil {
		fatal(err)
	}

	utils.StartSpinner()

	orchestratorService := orchestrator.NewService(
		cliService,
		subscriptionService,
		cliService,
		reservationService,
		costService,
		flags.CallTimeout,
	)

	if err := orchestratorService.Orchestrate(flags); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	utils.StopSpinner()
	log.Error(err)
	os.Exit(1)
}
