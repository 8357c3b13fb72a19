package azurecli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// mockRunner implements CommandRunner for testing.
type mockRunner struct {
	RunFn func(ctx context.Context, args ...string) ([]byte, error)
	calls [][]string
}

func (m *mockRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	m.calls = append(m.calls, args)
	if m.RunFn != nil {
		return m.RunFn(ctx, args...)
	}
	return nil, nil
}

func TestGetSignedInAccount(t *testing.T) {
	runner := &mockRunner{
		RunFn: func(ctx context.Context, args ...string) ([]byte, error) {
			return []byte(`{
				"id": "11111111-1111-1111-1111-111111111111",
				"name": "Pay-As-You-Go",
				"state": "Enabled",
				"tenantId": "22222222-2222-2222-2222-222222222222",
				"user": {"name": "ops@example.com", "type": "user"}
			}`), nil
		},
	}

	account, err := NewService(runner).GetSignedInAccount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.SubscriptionID != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("unexpected subscription ID: %s", account.SubscriptionID)
	}
	if account.TenantID != "22222222-2222-2222-2222-222222222222" {
		t.Errorf("unexpected tenant ID: %s", account.TenantID)
	}
	if account.User != "ops@example.com" {
		t.Errorf("unexpected user: %s", account.User)
	}
}

func TestGetSignedInAccountNotAuthenticated(t *testing.T) {
	runner := &mockRunner{
		RunFn: func(ctx context.Context, args ...string) ([]byte, error) {
			return nil, errors.New("az account: Please run 'az login' to setup account.")
		},
	}

	if _, err := NewService(runner).GetSignedInAccount(context.Background()); err == nil {
		t.Fatal("expected error for unauthenticated session")
	}
}

func TestListAccountsAllFlag(t *testing.T) {
	runner := &mockRunner{
		RunFn: func(ctx context.Context, args ...string) ([]byte, error) {
			return []byte(`[]`), nil
		},
	}
	svc := NewService(runner)

	if _, err := svc.ListAccounts(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ListAccounts(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if containsArg(runner.calls[0], "--all") {
		t.Error("first call should not pass --all")
	}
	if !containsArg(runner.calls[1], "--all") {
		t.Error("second call should pass --all")
	}
}

func TestGetCapacitiesFlattenedAndNested(t *testing.T) {
	runner := &mockRunner{
		RunFn: func(ctx context.Context, args ...string) ([]byte, error) {
			return []byte(`[
				{
					"id": "/subscriptions/sub-a/resourceGroups/rg-bi/providers/Microsoft.Fabric/capacities/cap-one",
					"name": "cap-one",
					"location": "westeurope",
					"resourceGroup": "rg-bi",
					"sku": {"name": "F64", "tier": "Fabric"},
					"state": "Active",
					"reservationId": "/providers/Microsoft.Capacity/reservationOrders/o1/reservations/r1"
				},
				{
					"id": "/subscriptions/sub-a/resourceGroups/rg-bi/providers/Microsoft.Fabric/capacities/cap-two",
					"name": "cap-two",
					"location": "westeurope",
					"sku": {"name": "F2", "tier": "Fabric"},
					"properties": {"state": "Paused"}
				}
			]`), nil
		},
	}

	capacities, err := NewService(runner).GetCapacities(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capacities) != 2 {
		t.Fatalf("expected 2 capacities, got %d", len(capacities))
	}

	first := capacities[0]
	if first.SubscriptionID != "sub-a" {
		t.Errorf("expected subscription parsed from resource path, got %q", first.SubscriptionID)
	}
	if !first.HasReservation() {
		t.Error("flattened reservationId should be picked up")
	}

	second := capacities[1]
	if second.State != "Paused" {
		t.Errorf("nested properties.state should be picked up, got %q", second.State)
	}
	if second.ResourceGroup != "rg-bi" {
		t.Errorf("resource group should fall back to the resource path, got %q", second.ResourceGroup)
	}
	if second.HasReservation() {
		t.Error("capacity without a reservation field must report none")
	}
}

// swapWellKnownDirs points the install-dir probe at dirs for one test.
func swapWellKnownDirs(t *testing.T, dirs []string) {
	t.Helper()
	original := wellKnownDirs
	wellKnownDirs = dirs
	t.Cleanup(func() { wellKnownDirs = original })
}

func writeFakeBinary(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultBinary)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake binary: %v", err)
	}
	return path
}

func TestLocateResolvesOnPath(t *testing.T) {
	dir := t.TempDir()
	writeFakeBinary(t, dir)
	t.Setenv("PATH", dir)
	swapWellKnownDirs(t, nil)

	path, err := Locate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, DefaultBinary) {
		t.Errorf("unexpected binary path: %s", path)
	}
}

func TestLocateFallsBackToWellKnownDir(t *testing.T) {
	installDir := t.TempDir()
	expected := writeFakeBinary(t, installDir)

	t.Setenv("PATH", t.TempDir())
	swapWellKnownDirs(t, []string{t.TempDir(), installDir})

	path, err := Locate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
	if !strings.HasPrefix(os.Getenv("PATH"), installDir+string(os.PathListSeparator)) {
		t.Errorf("install dir must be prepended to PATH, got %s", os.Getenv("PATH"))
	}
}

func TestLocateMissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	swapWellKnownDirs(t, []string{t.TempDir()})

	_, err := Locate()
	if err == nil {
		t.Fatal("expected error when the binary resolves nowhere")
	}
	if !strings.Contains(err.Error(), "install") {
		t.Errorf("error must carry install guidance, got: %v", err)
	}
}

func TestExtractSubscriptionID(t *testing.T) {
	testCases := []struct {
		name       string
		resourceID string
		expected   string
	}{
		{
			name:       "full capacity path",
			resourceID: "/subscriptions/sub-a/resourceGroups/rg/providers/Microsoft.Fabric/capacities/cap",
			expected:   "sub-a",
		},
		{
			name:       "case insensitive segment",
			resourceID: "/SUBSCRIPTIONS/sub-b/resourceGroups/rg",
			expected:   "sub-b",
		},
		{
			name:       "no subscription segment",
			resourceID: "/providers/Microsoft.Capacity/reservationOrders/o1",
			expected:   "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractSubscriptionID(tc.resourceID); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func containsArg(args []string, want string) bool {
	for _, arg := range args {
		if arg == want {
			return true
		}
	}
	return false
}
