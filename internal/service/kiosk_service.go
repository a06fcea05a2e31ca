package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/drinko/internal/flow"
	"github.com/mmynk/drinko/internal/models"
	"github.com/mmynk/drinko/internal/storage"
	"github.com/mmynk/drinko/pkg/api"
	"github.com/mmynk/drinko/pkg/api/apiconnect"
)

// KioskService implements the Connect KioskService on top of a flow controller.
type KioskService struct {
	apiconnect.UnimplementedKioskServiceHandler
	kiosk *flow.Controller
	store storage.Store
}

// NewKioskService creates a KioskService driving kiosk and reading completed
// orders from store.
func NewKioskService(kiosk *flow.Controller, store storage.Store) *KioskService {
	return &KioskService{kiosk: kiosk, store: store}
}

func session(s flow.Snapshot) *connect.Response[api.SessionResponse] {
	return connect.NewResponse(&api.SessionResponse{Session: SessionToAPI(s)})
}

// GetCatalog returns the categories and the drinks of one category.
func (s *KioskService) GetCatalog(ctx context.Context, req *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error) {
	slog.Debug("GetCatalog request received", "category", req.Msg.Category)

	cat := s.kiosk.Catalog()
	drinks := cat.Drinks(req.Msg.Category)

	resp := &api.GetCatalogResponse{
		Categories: cat.Categories(),
		Drinks:     make([]api.Drink, len(drinks)),
	}
	for i, d := range drinks {
		resp.Drinks[i] = DrinkToAPI(d)
	}
	return connect.NewResponse(resp), nil
}

// GetSession returns the current session without counting as an interaction.
func (s *KioskService) GetSession(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return session(s.kiosk.Snapshot()), nil
}

// Touch resets the inactivity countdown.
func (s *KioskService) Touch(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return session(s.kiosk.Touch()), nil
}

// Navigate requests a route change.
func (s *KioskService) Navigate(ctx context.Context, req *connect.Request[api.NavigateRequest]) (*connect.Response[api.SessionResponse], error) {
	slog.Info("Navigate request received", "path", req.Msg.Path)
	return session(s.kiosk.Navigate(req.Msg.Path)), nil
}

// OpenEditor opens the drink editor for a new drink or an existing cart line.
func (s *KioskService) OpenEditor(ctx context.Context, req *connect.Request[api.OpenEditorRequest]) (*connect.Response[api.SessionResponse], error) {
	slog.Info("OpenEditor request received", "drink_id", req.Msg.DrinkID, "line_id", req.Msg.LineID)

	if req.Msg.LineID == "" {
		if err := s.requireDrink(req.Msg.DrinkID); err != nil {
			return nil, err
		}
	}
	return session(s.kiosk.OpenEditor(req.Msg.DrinkID, req.Msg.LineID)), nil
}

// AdjustEditor increments or decrements one of the editor's counters.
func (s *KioskService) AdjustEditor(ctx context.Context, req *connect.Request[api.AdjustEditorRequest]) (*connect.Response[api.SessionResponse], error) {
	variant := models.Variant(req.Msg.Variant)
	if !variant.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown variant %q", req.Msg.Variant))
	}
	return session(s.kiosk.AdjustEditor(variant, req.Msg.Delta)), nil
}

// SaveEditor applies the editor to the cart.
func (s *KioskService) SaveEditor(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	snap := s.kiosk.SaveEditor()
	slog.Info("SaveEditor successful", "lines", len(snap.Lines), "total", snap.Total.StringFixed(2))
	return session(snap), nil
}

// CloseEditor dismisses the editor.
func (s *KioskService) CloseEditor(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return session(s.kiosk.CloseEditor()), nil
}

// AddLineItem appends a line to the cart.
func (s *KioskService) AddLineItem(ctx context.Context, req *connect.Request[api.AddLineItemRequest]) (*connect.Response[api.SessionResponse], error) {
	slog.Info("AddLineItem request received",
		"drink_id", req.Msg.DrinkID,
		"is_double", req.Msg.IsDouble,
		"quantity", req.Msg.Quantity,
	)

	if err := s.requireDrink(req.Msg.DrinkID); err != nil {
		return nil, err
	}
	return session(s.kiosk.AddLineItem(req.Msg.DrinkID, req.Msg.IsDouble, req.Msg.Quantity)), nil
}

// UpdateLineItem changes a cart line in place.
func (s *KioskService) UpdateLineItem(ctx context.Context, req *connect.Request[api.UpdateLineItemRequest]) (*connect.Response[api.SessionResponse], error) {
	slog.Info("UpdateLineItem request received",
		"line_id", req.Msg.LineID,
		"is_double", req.Msg.IsDouble,
		"quantity", req.Msg.Quantity,
	)
	return session(s.kiosk.UpdateLineItem(req.Msg.LineID, req.Msg.IsDouble, req.Msg.Quantity)), nil
}

// RemoveLineItem removes the cart line at a position.
func (s *KioskService) RemoveLineItem(ctx context.Context, req *connect.Request[api.RemoveLineItemRequest]) (*connect.Response[api.SessionResponse], error) {
	slog.Info("RemoveLineItem request received", "position", req.Msg.Position)
	return session(s.kiosk.RemoveLineItem(req.Msg.Position)), nil
}

// RemoveDrink removes every line of a drink.
func (s *KioskService) RemoveDrink(ctx context.Context, req *connect.Request[api.RemoveDrinkRequest]) (*connect.Response[api.SessionResponse], error) {
	slog.Info("RemoveDrink request received", "drink_id", req.Msg.DrinkID)
	return session(s.kiosk.RemoveDrink(req.Msg.DrinkID)), nil
}

// ClearCart empties the cart.
func (s *KioskService) ClearCart(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	slog.Info("ClearCart request received")
	return session(s.kiosk.ClearCart()), nil
}

// StartPayment starts the simulated card or QR payment.
func (s *KioskService) StartPayment(ctx context.Context, req *connect.Request[api.StartPaymentRequest]) (*connect.Response[api.SessionResponse], error) {
	slog.Info("StartPayment request received", "method", req.Msg.Method)

	method := models.PaymentMethod(req.Msg.Method)
	if !method.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown payment method %q", req.Msg.Method))
	}
	return session(s.kiosk.StartPayment(method)), nil
}

// CancelPayment abandons a pending payment.
func (s *KioskService) CancelPayment(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	slog.Info("CancelPayment request received")
	return session(s.kiosk.CancelPayment()), nil
}

// CancelOrder asks to abandon the order; a non-empty cart raises a prompt.
func (s *KioskService) CancelOrder(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	slog.Info("CancelOrder request received")
	return session(s.kiosk.RequestCancel()), nil
}

// ConfirmCancel accepts the cancel prompt.
func (s *KioskService) ConfirmCancel(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return session(s.kiosk.ConfirmCancel()), nil
}

// DismissCancel rejects the cancel prompt.
func (s *KioskService) DismissCancel(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return session(s.kiosk.DismissCancel()), nil
}

// NewOrder leaves the completion screen for a fresh session.
func (s *KioskService) NewOrder(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	slog.Info("NewOrder request received")
	return session(s.kiosk.NewOrder()), nil
}

// ListOrders returns completed orders, most recent first.
func (s *KioskService) ListOrders(ctx context.Context, req *connect.Request[api.ListOrdersRequest]) (*connect.Response[api.ListOrdersResponse], error) {
	slog.Info("ListOrders request received", "limit", req.Msg.Limit)

	orders, err := s.store.ListOrders(ctx, req.Msg.Limit)
	if err != nil {
		slog.Error("ListOrders failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &api.ListOrdersResponse{Orders: make([]api.Order, len(orders))}
	for i, o := range orders {
		resp.Orders[i] = OrderToAPI(o)
	}

	slog.Info("ListOrders successful", "count", len(orders))
	return connect.NewResponse(resp), nil
}

func (s *KioskService) requireDrink(drinkID string) error {
	if _, ok := s.kiosk.Catalog().Lookup(drinkID); !ok {
		return connect.NewError(connect.CodeNotFound, fmt.Errorf("drink not found: %s", drinkID))
	}
	return nil
}
