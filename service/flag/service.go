package flag

import (
	"flag"
	"time"

	"github.com/elC0mpa/fabric-doctor/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	subscription := flag.String("subscription", "", "Restrict the audit to a single subscription ID")
	costs := flag.Bool("costs", false, "Display current month Fabric costs per subscription")
	chart := flag.Bool("chart", false, "Display a bar chart of reserved vs pay-as-you-go capacities per subscription")
	logLevel := flag.String("log-level", "info", "The log-level of the application. E.g. fatal, error, info, debug etc.")
	callTimeout := flag.Duration("call-timeout", 60*time.Second, "Timeout applied to each individual Azure call")

	flag.Parse()

	return model.Flags{
		Subscription: *subscription,
		Costs:        *costs,
		Chart:        *chart,
		LogLevel:     *logLevel,
		CallTimeout:  *callTimeout,
	}, nil
}
