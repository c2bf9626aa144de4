package services

import (
	"errors"
	"testing"
	"time"
)

func TestCreateClientDuplicateMobile(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.clients.CreateClient(CreateClientInput{Name: "Priya Sharma", MobileNumber: "9876543210"})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	_, err = env.clients.CreateClient(CreateClientInput{Name: "Someone Else", MobileNumber: "9876543210"})
	if !errors.Is(err, ErrDuplicateMobile) {
		t.Errorf("expected ErrDuplicateMobile, got %v", err)
	}
}

func TestCreateClientValidatesMobile(t *testing.T) {
	env := setupTestEnv(t)

	cases := []string{"12345", "98765432101", "98765abc10", ""}
	for _, mobile := range cases {
		_, err := env.clients.CreateClient(CreateClientInput{Name: "Priya", MobileNumber: mobile})
		if !IsValidationError(err) {
			t.Errorf("mobile %q: expected validation error, got %v", mobile, err)
		}
	}
}

func TestUpdateClientMobileConflict(t *testing.T) {
	env := setupTestEnv(t)

	priya, err := env.clients.CreateClient(CreateClientInput{Name: "Priya Sharma", MobileNumber: "9876543210"})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}
	if _, err := env.clients.CreateClient(CreateClientInput{Name: "Anita Menon", MobileNumber: "9845012345"}); err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	taken := "9845012345"
	_, err = env.clients.UpdateClient(priya.ID, UpdateClientInput{MobileNumber: &taken})
	if !errors.Is(err, ErrDuplicateMobile) {
		t.Errorf("expected ErrDuplicateMobile, got %v", err)
	}

	// Re-saving the client's own number is not a conflict.
	own := "9876543210"
	if _, err := env.clients.UpdateClient(priya.ID, UpdateClientInput{MobileNumber: &own}); err != nil {
		t.Errorf("updating to own mobile should succeed, got %v", err)
	}
}

func TestUpdateClientPartialFields(t *testing.T) {
	env := setupTestEnv(t)

	client, err := env.clients.CreateClient(CreateClientInput{
		Name: "Priya Sharma", MobileNumber: "9876543210", Email: "priya@example.com",
	})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	address := "12 MG Road, Kochi"
	updated, err := env.clients.UpdateClient(client.ID, UpdateClientInput{Address: &address})
	if err != nil {
		t.Fatalf("UpdateClient failed: %v", err)
	}
	if updated.Address != address {
		t.Errorf("address not updated")
	}
	if updated.Name != "Priya Sharma" || updated.Email != "priya@example.com" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestClientSummaryAggregates(t *testing.T) {
	env := setupTestEnv(t)

	client, err := env.clients.CreateClient(CreateClientInput{Name: "Priya Sharma", MobileNumber: "9876543210"})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	future := time.Now().Add(48 * time.Hour)
	// Active, owes 700.
	if _, err := env.orders.CreateWorkOrder(CreateWorkOrderInput{
		ClientID: client.ID, ExpectedDeliveryDate: future,
		AdvancePaid: 500, TotalEstimate: 1200,
	}); err != nil {
		t.Fatalf("CreateWorkOrder failed: %v", err)
	}
	// Delivered with dues cleared: completed, owes nothing.
	if _, err := env.orders.CreateWorkOrder(CreateWorkOrderInput{
		ClientID: client.ID, ExpectedDeliveryDate: future,
		Status: "Delivered - Fully Paid", AdvancePaid: 900, ActualAmount: 900, DueCleared: true,
	}); err != nil {
		t.Fatalf("CreateWorkOrder failed: %v", err)
	}

	summary, err := env.clients.Summary(client.ID)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalOrders != 2 || summary.ActiveOrders != 1 || summary.CompletedOrders != 1 {
		t.Errorf("summary counts = %d/%d/%d, want 2/1/1",
			summary.TotalOrders, summary.ActiveOrders, summary.CompletedOrders)
	}
	if summary.TotalAmountDue != 700 {
		t.Errorf("TotalAmountDue = %v, want 700", summary.TotalAmountDue)
	}
}

func TestSummaryByMobile(t *testing.T) {
	env := setupTestEnv(t)

	if _, err := env.clients.CreateClient(CreateClientInput{Name: "Priya Sharma", MobileNumber: "9876543210"}); err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	summary, err := env.clients.SummaryByMobile("9876543210")
	if err != nil {
		t.Fatalf("SummaryByMobile failed: %v", err)
	}
	if summary.Client.Name != "Priya Sharma" {
		t.Errorf("wrong client in summary: %+v", summary.Client)
	}

	if _, err := env.clients.SummaryByMobile("0000000000"); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
	if _, err := env.clients.SummaryByMobile("123"); !IsValidationError(err) {
		t.Errorf("expected validation error for short mobile, got %v", err)
	}
}

func TestDeleteClientCascades(t *testing.T) {
	env := setupTestEnv(t)

	client, err := env.clients.CreateClient(CreateClientInput{Name: "Priya Sharma", MobileNumber: "9876543210"})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}
	order, err := env.orders.CreateWorkOrder(CreateWorkOrderInput{
		ClientID: client.ID, ExpectedDeliveryDate: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateWorkOrder failed: %v", err)
	}

	if err := env.clients.DeleteClient(client.ID); err != nil {
		t.Fatalf("DeleteClient failed: %v", err)
	}
	if _, err := env.orders.GetWorkOrder(order.ID); !errors.Is(err, ErrWorkOrderNotFound) {
		t.Errorf("expected cascade-deleted order to be gone, got %v", err)
	}
}

func TestQuickLookupRequiresCriteria(t *testing.T) {
	env := setupTestEnv(t)

	if _, err := env.clients.QuickLookup("", ""); !IsValidationError(err) {
		t.Errorf("expected validation error without criteria, got %v", err)
	}
}
