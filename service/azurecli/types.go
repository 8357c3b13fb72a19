package azurecli

import "context"

// DefaultBinary is the Azure CLI executable name resolved on PATH
const DefaultBinary = "az"

// wellKnownDirs are probed when the binary does not resolve on PATH.
// The first hit is prepended to PATH for the remainder of the process so
// that later consumers (the CLI credential included) find the same binary.
var wellKnownDirs = []string{
	"/usr/bin",
	"/usr/local/bin",
	"/opt/homebrew/bin",
	"/opt/az/bin",
}

// CommandRunner executes one Azure CLI invocation and returns its stdout
type CommandRunner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

type service struct {
	runner CommandRunner
}

// accountRecord mirrors the JSON of `az account show` / `az account list`
type accountRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	State    string `json:"state"`
	TenantID string `json:"tenantId"`
	User     struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"user"`
}

// capacityRecord mirrors the JSON of `az fabric capacity list`. The CLI
// flattens most properties to the top level but older extension versions
// leave them nested, so both shapes are decoded.
type capacityRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	ResourceGroup string `json:"resourceGroup"`
	State         string `json:"state"`
	ReservationID string `json:"reservationId"`
	SKU           struct {
		Name string `json:"name"`
		Tier string `json:"tier"`
	} `json:"sku"`
	Properties struct {
		State         string `json:"state"`
		ReservationID string `json:"reservationId"`
	} `json:"properties"`
}
