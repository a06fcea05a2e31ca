package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/drinko/internal/catalog"
	"github.com/mmynk/drinko/internal/flow"
	"github.com/mmynk/drinko/internal/middleware"
	"github.com/mmynk/drinko/internal/storage/sqlite"
	"github.com/mmynk/drinko/internal/timer"
	"github.com/mmynk/drinko/pkg/api"
	"github.com/mmynk/drinko/pkg/api/apiconnect"
)

// setupTestServer creates a test server backed by a temp SQLite journal and a
// controller on a virtual clock.
func setupTestServer(t *testing.T) (apiconnect.KioskServiceClient, *timer.Virtual) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	clock := timer.NewVirtual(time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC))
	kiosk := flow.New(catalog.Default(), clock, flow.WithHooks(flow.Hooks{
		OnOrderCompleted: RecordOrders(store),
	}))

	path, handler := apiconnect.NewKioskServiceHandler(
		NewKioskService(kiosk, store),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		kiosk.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})

	return apiconnect.NewKioskServiceClient(http.DefaultClient, server.URL), clock
}

func TestGetCatalog(t *testing.T) {
	client, _ := setupTestServer(t)
	ctx := context.Background()

	resp, err := client.GetCatalog(ctx, connect.NewRequest(&api.GetCatalogRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "All", resp.Msg.Categories[0])
	assert.Len(t, resp.Msg.Drinks, 8)

	resp, err = client.GetCatalog(ctx, connect.NewRequest(&api.GetCatalogRequest{Category: "Mixes"}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Drinks, 2)
	assert.Equal(t, "8.00", resp.Msg.Drinks[0].Price)
	assert.Equal(t, "14.40", resp.Msg.Drinks[0].DoublePrice)
}

func TestOrderFlow_EndToEnd(t *testing.T) {
	client, clock := setupTestServer(t)
	ctx := context.Background()

	resp, err := client.Navigate(ctx, connect.NewRequest(&api.NavigateRequest{Path: "/menu"}))
	require.NoError(t, err)
	assert.Equal(t, "menu", resp.Msg.Session.Screen)

	_, err = client.AddLineItem(ctx, connect.NewRequest(&api.AddLineItemRequest{DrinkID: "3", Quantity: 2}))
	require.NoError(t, err)
	resp, err = client.AddLineItem(ctx, connect.NewRequest(&api.AddLineItemRequest{DrinkID: "3", IsDouble: true, Quantity: 1}))
	require.NoError(t, err)
	assert.Equal(t, "30.40", resp.Msg.Session.Total)
	require.Len(t, resp.Msg.Session.Groups, 1)
	assert.Equal(t, 2, resp.Msg.Session.Groups[0].RegularQuantity)

	resp, err = client.RemoveLineItem(ctx, connect.NewRequest(&api.RemoveLineItemRequest{Position: 1}))
	require.NoError(t, err)
	assert.Equal(t, "16.00", resp.Msg.Session.Total)

	resp, err = client.Navigate(ctx, connect.NewRequest(&api.NavigateRequest{Path: "/payment"}))
	require.NoError(t, err)
	require.NotNil(t, resp.Msg.Session.Payment)
	assert.Equal(t, "summary", resp.Msg.Session.Payment.Step)

	resp, err = client.StartPayment(ctx, connect.NewRequest(&api.StartPaymentRequest{Method: "card"}))
	require.NoError(t, err)
	assert.Equal(t, "card", resp.Msg.Session.Payment.Step)
	assert.Equal(t, "pending", resp.Msg.Session.Payment.Status)

	clock.Advance(time.Minute)

	resp, err = client.GetSession(ctx, connect.NewRequest(&api.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, "completion", resp.Msg.Session.Screen)
	orderID := resp.Msg.Session.LastOrderID
	require.NotEmpty(t, orderID)

	orders, err := client.ListOrders(ctx, connect.NewRequest(&api.ListOrdersRequest{}))
	require.NoError(t, err)
	require.Len(t, orders.Msg.Orders, 1)
	assert.Equal(t, orderID, orders.Msg.Orders[0].ID)
	assert.Equal(t, "16.00", orders.Msg.Orders[0].Total)
	assert.Equal(t, "card", orders.Msg.Orders[0].PaymentMethod)

	resp, err = client.NewOrder(ctx, connect.NewRequest(&api.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, "welcome", resp.Msg.Session.Screen)
	assert.Empty(t, resp.Msg.Session.Lines)
}

func TestIdleTimeout_OverRPC(t *testing.T) {
	client, clock := setupTestServer(t)
	ctx := context.Background()

	_, err := client.Navigate(ctx, connect.NewRequest(&api.NavigateRequest{Path: "/menu"}))
	require.NoError(t, err)
	_, err = client.AddLineItem(ctx, connect.NewRequest(&api.AddLineItemRequest{DrinkID: "1", Quantity: 1}))
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	resp, err := client.Touch(ctx, connect.NewRequest(&api.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, 60, resp.Msg.Session.Idle.SecondsLeft)

	clock.Advance(60 * time.Second)
	resp, err = client.GetSession(ctx, connect.NewRequest(&api.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, "welcome", resp.Msg.Session.Screen)
	assert.Empty(t, resp.Msg.Session.Lines)
	assert.Equal(t, "0.00", resp.Msg.Session.Total)
}

func TestEditor_OverRPC(t *testing.T) {
	client, _ := setupTestServer(t)
	ctx := context.Background()

	_, err := client.Navigate(ctx, connect.NewRequest(&api.NavigateRequest{Path: "/menu"}))
	require.NoError(t, err)

	resp, err := client.OpenEditor(ctx, connect.NewRequest(&api.OpenEditorRequest{DrinkID: "5"}))
	require.NoError(t, err)
	require.NotNil(t, resp.Msg.Session.Editor)
	assert.Equal(t, "Vodka Energy", resp.Msg.Session.Editor.Drink.Name)

	resp, err = client.AdjustEditor(ctx, connect.NewRequest(&api.AdjustEditorRequest{Variant: "double", Delta: 1}))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Msg.Session.Editor.Double)

	resp, err = client.SaveEditor(ctx, connect.NewRequest(&api.Empty{}))
	require.NoError(t, err)
	assert.Nil(t, resp.Msg.Session.Editor)
	assert.Len(t, resp.Msg.Session.Lines, 2)

	resp, err = client.RemoveDrink(ctx, connect.NewRequest(&api.RemoveDrinkRequest{DrinkID: "5"}))
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.Session.Lines)
}

func TestCancelOrder_OverRPC(t *testing.T) {
	client, _ := setupTestServer(t)
	ctx := context.Background()

	_, err := client.Navigate(ctx, connect.NewRequest(&api.NavigateRequest{Path: "/menu"}))
	require.NoError(t, err)
	_, err = client.AddLineItem(ctx, connect.NewRequest(&api.AddLineItemRequest{DrinkID: "2", Quantity: 3}))
	require.NoError(t, err)

	resp, err := client.CancelOrder(ctx, connect.NewRequest(&api.Empty{}))
	require.NoError(t, err)
	assert.True(t, resp.Msg.Session.ConfirmCancel)

	resp, err = client.ConfirmCancel(ctx, connect.NewRequest(&api.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, "welcome", resp.Msg.Session.Screen)
	assert.Empty(t, resp.Msg.Session.Lines)
}

func TestErrors(t *testing.T) {
	client, _ := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		code connect.Code
	}{
		{
			name: "unknown drink",
			call: func() error {
				_, err := client.AddLineItem(ctx, connect.NewRequest(&api.AddLineItemRequest{DrinkID: "99", Quantity: 1}))
				return err
			},
			code: connect.CodeNotFound,
		},
		{
			name: "unknown drink in editor",
			call: func() error {
				_, err := client.OpenEditor(ctx, connect.NewRequest(&api.OpenEditorRequest{DrinkID: "99"}))
				return err
			},
			code: connect.CodeNotFound,
		},
		{
			name: "unknown variant",
			call: func() error {
				_, err := client.AdjustEditor(ctx, connect.NewRequest(&api.AdjustEditorRequest{Variant: "triple", Delta: 1}))
				return err
			},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "unknown payment method",
			call: func() error {
				_, err := client.StartPayment(ctx, connect.NewRequest(&api.StartPaymentRequest{Method: "cash"}))
				return err
			},
			code: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			var connectErr *connect.Error
			require.True(t, errors.As(err, &connectErr))
			assert.Equal(t, tt.code, connectErr.Code())
		})
	}
}

func TestNoops_ReturnSession(t *testing.T) {
	client, _ := setupTestServer(t)
	ctx := context.Background()

	resp, err := client.UpdateLineItem(ctx, connect.NewRequest(&api.UpdateLineItemRequest{LineID: "missing", Quantity: 2}))
	require.NoError(t, err)
	assert.Equal(t, "welcome", resp.Msg.Session.Screen)

	resp, err = client.Navigate(ctx, connect.NewRequest(&api.NavigateRequest{Path: "/completion"}))
	require.NoError(t, err)
	assert.Equal(t, "welcome", resp.Msg.Session.Screen)
}
