package model

import "time"

type Flags struct {
	// Restrict the audit to a single subscription instead of enumerating
	// every enabled one
	Subscription string

	Costs bool
	Chart bool

	LogLevel string

	// Timeout applied to each individual external call
	CallTimeout time.Duration
}
