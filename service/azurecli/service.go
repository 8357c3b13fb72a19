package azurecli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/elC0mpa/fabric-doctor/model"
	log "github.com/sirupsen/logrus"
)

func NewService(runner CommandRunner) *service {
	if runner == nil {
		runner = &execRunner{binary: DefaultBinary}
	}
	return &service{runner: runner}
}

// Locate verifies the Azure CLI binary resolves and returns its path.
// When PATH misses it, the well-known install directories are probed and the
// first hit is prepended to PATH for the remainder of the process.
func Locate() (string, error) {
	if path, err := exec.LookPath(DefaultBinary); err == nil {
		return path, nil
	}

	for _, dir := range wellKnownDirs {
		candidate := filepath.Join(dir, DefaultBinary)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}

		os.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
		return candidate, nil
	}

	return "", fmt.Errorf("azure CLI %q not found on PATH or in %s; install it from https://aka.ms/azure-cli", DefaultBinary, strings.Join(wellKnownDirs, ", "))
}

// GetSignedInAccount implements service.IdentityService
// A failing `az account show` means there is no active login session.
func (s *service) GetSignedInAccount(ctx context.Context) (*model.AccountInfo, error) {
	out, err := s.runner.Run(ctx, "account", "show", "--output", "json")
	if err != nil {
		return nil, fmt.Errorf("not authenticated, run `az login` first: %w", err)
	}

	var account accountRecord
	if err := json.Unmarshal(out, &account); err != nil {
		return nil, fmt.Errorf("failed to parse `az account show` output: %w", err)
	}

	return &model.AccountInfo{
		SubscriptionID: account.ID,
		TenantID:       account.TenantID,
		User:           account.User.Name,
	}, nil
}

// ListAccounts returns the subscriptions visible to the current session.
// With all set, entries from every tenant membership are included, which is
// how tenant-level logins expose their real subscriptions.
func (s *service) ListAccounts(ctx context.Context, all bool) ([]model.Subscription, error) {
	args := []string{"account", "list", "--output", "json"}
	if all {
		args = append(args, "--all")
	}

	out, err := s.runner.Run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	var accounts []accountRecord
	if err := json.Unmarshal(out, &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse `az account list` output: %w", err)
	}

	subscriptions := make([]model.Subscription, 0, len(accounts))
	for _, account := range accounts {
		subscriptions = append(subscriptions, model.Subscription{
			ID:       account.ID,
			TenantID: account.TenantID,
			Name:     account.Name,
			State:    account.State,
		})
	}

	return subscriptions, nil
}

// SetSubscriptionContext implements service.CapacityService
func (s *service) SetSubscriptionContext(ctx context.Context, subscriptionID string) error {
	if _, err := s.runner.Run(ctx, "account", "set", "--subscription", subscriptionID); err != nil {
		return fmt.Errorf("failed to set subscription context to %s: %w", subscriptionID, err)
	}
	return nil
}

// GetCapacities implements service.CapacityService
// Lists Fabric capacities in the active subscription context.
func (s *service) GetCapacities(ctx context.Context) ([]model.Capacity, error) {
	out, err := s.runner.Run(ctx, "fabric", "capacity", "list", "--output", "json")
	if err != nil {
		return nil, fmt.Errorf("failed to list Fabric capacities: %w", err)
	}

	var records []capacityRecord
	if err := json.Unmarshal(out, &records); err != nil {
		return nil, fmt.Errorf("failed to parse capacity list output: %w", err)
	}

	capacities := make([]model.Capacity, 0, len(records))
	for _, record := range records {
		capacities = append(capacities, record.toCapacity())
	}

	return capacities, nil
}

func (r capacityRecord) toCapacity() model.Capacity {
	state := r.State
	if state == "" {
		state = r.Properties.State
	}

	reservationID := r.ReservationID
	if reservationID == "" {
		reservationID = r.Properties.ReservationID
	}

	resourceGroup := r.ResourceGroup
	if resourceGroup == "" {
		resourceGroup = ExtractResourceGroup(r.ID)
	}

	return model.Capacity{
		ID:             r.ID,
		Name:           r.Name,
		Location:       r.Location,
		ResourceGroup:  resourceGroup,
		SubscriptionID: ExtractSubscriptionID(r.ID),
		SKUName:        r.SKU.Name,
		State:          state,
		ReservationID:  reservationID,
	}
}

// ExtractSubscriptionID extracts the subscription ID from an Azure resource ID
// e.g., "/subscriptions/<id>/resourceGroups/.../providers/Microsoft.Fabric/capacities/my-cap"
func ExtractSubscriptionID(resourceID string) string {
	parts := strings.Split(resourceID, "/")
	for i, part := range parts {
		if strings.EqualFold(part, "subscriptions") && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// ExtractResourceGroup extracts the resource group from an Azure resource ID
func ExtractResourceGroup(resourceID string) string {
	parts := strings.Split(resourceID, "/")
	for i, part := range parts {
		if strings.EqualFold(part, "resourceGroups") && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// execRunner runs the CLI as a subprocess
type execRunner struct {
	binary string
}

func (r *execRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			log.Debugf("az %s exited %d: %s", strings.Join(args, " "), exitErr.ExitCode(), stderr)
			if stderr != "" {
				return nil, fmt.Errorf("az %s: %s", args[0], firstLine(stderr))
			}
		}
		return nil, err
	}
	return out, nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
