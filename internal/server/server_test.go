package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/drinko/internal/catalog"
	"github.com/mmynk/drinko/internal/config"
	"github.com/mmynk/drinko/internal/storage/sqlite"
	"github.com/mmynk/drinko/internal/timer"
	"github.com/mmynk/drinko/pkg/api"
	"github.com/mmynk/drinko/pkg/api/apiconnect"
)

const clientURL = "http://localhost:5173"

func newTestServer(t *testing.T) (*httptest.Server, *timer.Virtual) {
	t.Helper()
	return newTestServerWithConfig(t, &config.Config{
		Addr:         ":0",
		ClientURL:    clientURL,
		IdleTimeout:  60 * time.Second,
		ApprovalRate: 1,
	})
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config) (*httptest.Server, *timer.Virtual) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "drinko.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	clock := timer.NewVirtual(time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC))
	s := New(cfg, catalog.Default(), store, clock)
	t.Cleanup(s.Kiosk().Close)

	ctx, cancel := context.WithCancel(context.Background())
	go s.hub.Run(ctx)
	t.Cleanup(cancel)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, clock
}

func TestLiveness(t *testing.T) {
	ts, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", clientURL)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Server is running", string(body))
	assert.Equal(t, clientURL, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestLiveness_ForeignOriginGetsNoCORS(t *testing.T) {
	ts, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://evil.example")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestKioskServiceAndMetrics(t *testing.T) {
	ts, clock := newTestServer(t)
	ctx := context.Background()
	client := apiconnect.NewKioskServiceClient(http.DefaultClient, ts.URL)

	_, err := client.Navigate(ctx, connect.NewRequest(&api.NavigateRequest{Path: "/menu"}))
	require.NoError(t, err)
	_, err = client.AddLineItem(ctx, connect.NewRequest(&api.AddLineItemRequest{DrinkID: "4", Quantity: 1}))
	require.NoError(t, err)
	_, err = client.Navigate(ctx, connect.NewRequest(&api.NavigateRequest{Path: "/payment"}))
	require.NoError(t, err)
	_, err = client.StartPayment(ctx, connect.NewRequest(&api.StartPaymentRequest{Method: "qr"}))
	require.NoError(t, err)

	clock.Advance(time.Minute)

	orders, err := client.ListOrders(ctx, connect.NewRequest(&api.ListOrdersRequest{Limit: 10}))
	require.NoError(t, err)
	require.Len(t, orders.Msg.Orders, 1)
	assert.Equal(t, "qr", orders.Msg.Orders[0].PaymentMethod)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `drinko_kiosk_orders_completed_total{method="qr"} 1`)
	assert.Contains(t, string(body), `drinko_kiosk_payments_total{method="qr",outcome="approved"} 1`)
}

func TestApprovalRate_ZeroRejectsPayments(t *testing.T) {
	ts, clock := newTestServerWithConfig(t, &config.Config{
		Addr:         ":0",
		ClientURL:    clientURL,
		IdleTimeout:  60 * time.Second,
		ApprovalRate: 0,
	})
	ctx := context.Background()
	client := apiconnect.NewKioskServiceClient(http.DefaultClient, ts.URL)

	_, err := client.Navigate(ctx, connect.NewRequest(&api.NavigateRequest{Path: "/menu"}))
	require.NoError(t, err)
	_, err = client.AddLineItem(ctx, connect.NewRequest(&api.AddLineItemRequest{DrinkID: "1", Quantity: 1}))
	require.NoError(t, err)
	_, err = client.Navigate(ctx, connect.NewRequest(&api.NavigateRequest{Path: "/payment"}))
	require.NoError(t, err)
	_, err = client.StartPayment(ctx, connect.NewRequest(&api.StartPaymentRequest{Method: "card"}))
	require.NoError(t, err)

	clock.Advance(4 * time.Second)

	session, err := client.GetSession(ctx, connect.NewRequest(&api.Empty{}))
	require.NoError(t, err)
	require.NotNil(t, session.Msg.Session.Payment)
	assert.Equal(t, "payment", session.Msg.Session.Screen)
	assert.Equal(t, "rejected", session.Msg.Session.Payment.Status)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `drinko_kiosk_payments_total{method="card",outcome="rejected"} 1`)
}
