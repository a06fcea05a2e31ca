// Package apiconnect holds the Connect handler and client of the
// drinko.v1.KioskService.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/drinko/pkg/api"
)

// KioskServiceName is the fully-qualified name of the KioskService service.
const KioskServiceName = "drinko.v1.KioskService"

// Fully-qualified procedure names, used as HTTP paths.
const (
	KioskServiceGetCatalogProcedure     = "/drinko.v1.KioskService/GetCatalog"
	KioskServiceGetSessionProcedure     = "/drinko.v1.KioskService/GetSession"
	KioskServiceTouchProcedure          = "/drinko.v1.KioskService/Touch"
	KioskServiceNavigateProcedure       = "/drinko.v1.KioskService/Navigate"
	KioskServiceOpenEditorProcedure     = "/drinko.v1.KioskService/OpenEditor"
	KioskServiceAdjustEditorProcedure   = "/drinko.v1.KioskService/AdjustEditor"
	KioskServiceSaveEditorProcedure     = "/drinko.v1.KioskService/SaveEditor"
	KioskServiceCloseEditorProcedure    = "/drinko.v1.KioskService/CloseEditor"
	KioskServiceAddLineItemProcedure    = "/drinko.v1.KioskService/AddLineItem"
	KioskServiceUpdateLineItemProcedure = "/drinko.v1.KioskService/UpdateLineItem"
	KioskServiceRemoveLineItemProcedure = "/drinko.v1.KioskService/RemoveLineItem"
	KioskServiceRemoveDrinkProcedure    = "/drinko.v1.KioskService/RemoveDrink"
	KioskServiceClearCartProcedure      = "/drinko.v1.KioskService/ClearCart"
	KioskServiceStartPaymentProcedure   = "/drinko.v1.KioskService/StartPayment"
	KioskServiceCancelPaymentProcedure  = "/drinko.v1.KioskService/CancelPayment"
	KioskServiceCancelOrderProcedure    = "/drinko.v1.KioskService/CancelOrder"
	KioskServiceConfirmCancelProcedure  = "/drinko.v1.KioskService/ConfirmCancel"
	KioskServiceDismissCancelProcedure  = "/drinko.v1.KioskService/DismissCancel"
	KioskServiceNewOrderProcedure       = "/drinko.v1.KioskService/NewOrder"
	KioskServiceListOrdersProcedure     = "/drinko.v1.KioskService/ListOrders"
)

// KioskServiceHandler is implemented by the kiosk backend.
type KioskServiceHandler interface {
	GetCatalog(context.Context, *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error)
	GetSession(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	Touch(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	Navigate(context.Context, *connect.Request[api.NavigateRequest]) (*connect.Response[api.SessionResponse], error)
	OpenEditor(context.Context, *connect.Request[api.OpenEditorRequest]) (*connect.Response[api.SessionResponse], error)
	AdjustEditor(context.Context, *connect.Request[api.AdjustEditorRequest]) (*connect.Response[api.SessionResponse], error)
	SaveEditor(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	CloseEditor(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	AddLineItem(context.Context, *connect.Request[api.AddLineItemRequest]) (*connect.Response[api.SessionResponse], error)
	UpdateLineItem(context.Context, *connect.Request[api.UpdateLineItemRequest]) (*connect.Response[api.SessionResponse], error)
	RemoveLineItem(context.Context, *connect.Request[api.RemoveLineItemRequest]) (*connect.Response[api.SessionResponse], error)
	RemoveDrink(context.Context, *connect.Request[api.RemoveDrinkRequest]) (*connect.Response[api.SessionResponse], error)
	ClearCart(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	StartPayment(context.Context, *connect.Request[api.StartPaymentRequest]) (*connect.Response[api.SessionResponse], error)
	CancelPayment(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	CancelOrder(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	ConfirmCancel(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	DismissCancel(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	NewOrder(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	ListOrders(context.Context, *connect.Request[api.ListOrdersRequest]) (*connect.Response[api.ListOrdersResponse], error)
}

// NewKioskServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself. Messages use api.Codec unless opts register another "json" codec.
func NewKioskServiceHandler(svc KioskServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(KioskServiceGetCatalogProcedure, connect.NewUnaryHandler(KioskServiceGetCatalogProcedure, svc.GetCatalog, opts...))
	mux.Handle(KioskServiceGetSessionProcedure, connect.NewUnaryHandler(KioskServiceGetSessionProcedure, svc.GetSession, opts...))
	mux.Handle(KioskServiceTouchProcedure, connect.NewUnaryHandler(KioskServiceTouchProcedure, svc.Touch, opts...))
	mux.Handle(KioskServiceNavigateProcedure, connect.NewUnaryHandler(KioskServiceNavigateProcedure, svc.Navigate, opts...))
	mux.Handle(KioskServiceOpenEditorProcedure, connect.NewUnaryHandler(KioskServiceOpenEditorProcedure, svc.OpenEditor, opts...))
	mux.Handle(KioskServiceAdjustEditorProcedure, connect.NewUnaryHandler(KioskServiceAdjustEditorProcedure, svc.AdjustEditor, opts...))
	mux.Handle(KioskServiceSaveEditorProcedure, connect.NewUnaryHandler(KioskServiceSaveEditorProcedure, svc.SaveEditor, opts...))
	mux.Handle(KioskServiceCloseEditorProcedure, connect.NewUnaryHandler(KioskServiceCloseEditorProcedure, svc.CloseEditor, opts...))
	mux.Handle(KioskServiceAddLineItemProcedure, connect.NewUnaryHandler(KioskServiceAddLineItemProcedure, svc.AddLineItem, opts...))
	mux.Handle(KioskServiceUpdateLineItemProcedure, connect.NewUnaryHandler(KioskServiceUpdateLineItemProcedure, svc.UpdateLineItem, opts...))
	mux.Handle(KioskServiceRemoveLineItemProcedure, connect.NewUnaryHandler(KioskServiceRemoveLineItemProcedure, svc.RemoveLineItem, opts...))
	mux.Handle(KioskServiceRemoveDrinkProcedure, connect.NewUnaryHandler(KioskServiceRemoveDrinkProcedure, svc.RemoveDrink, opts...))
	mux.Handle(KioskServiceClearCartProcedure, connect.NewUnaryHandler(KioskServiceClearCartProcedure, svc.ClearCart, opts...))
	mux.Handle(KioskServiceStartPaymentProcedure, connect.NewUnaryHandler(KioskServiceStartPaymentProcedure, svc.StartPayment, opts...))
	mux.Handle(KioskServiceCancelPaymentProcedure, connect.NewUnaryHandler(KioskServiceCancelPaymentProcedure, svc.CancelPayment, opts...))
	mux.Handle(KioskServiceCancelOrderProcedure, connect.NewUnaryHandler(KioskServiceCancelOrderProcedure, svc.CancelOrder, opts...))
	mux.Handle(KioskServiceConfirmCancelProcedure, connect.NewUnaryHandler(KioskServiceConfirmCancelProcedure, svc.ConfirmCancel, opts...))
	mux.Handle(KioskServiceDismissCancelProcedure, connect.NewUnaryHandler(KioskServiceDismissCancelProcedure, svc.DismissCancel, opts...))
	mux.Handle(KioskServiceNewOrderProcedure, connect.NewUnaryHandler(KioskServiceNewOrderProcedure, svc.NewOrder, opts...))
	mux.Handle(KioskServiceListOrdersProcedure, connect.NewUnaryHandler(KioskServiceListOrdersProcedure, svc.ListOrders, opts...))
	return "/" + KioskServiceName + "/", mux
}

// UnimplementedKioskServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedKioskServiceHandler struct{}

func (UnimplementedKioskServiceHandler) GetCatalog(context.Context, *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.GetCatalog is not implemented"))
}

func (UnimplementedKioskServiceHandler) GetSession(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.GetSession is not implemented"))
}

func (UnimplementedKioskServiceHandler) Touch(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.Touch is not implemented"))
}

func (UnimplementedKioskServiceHandler) Navigate(context.Context, *connect.Request[api.NavigateRequest]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.Navigate is not implemented"))
}

func (UnimplementedKioskServiceHandler) OpenEditor(context.Context, *connect.Request[api.OpenEditorRequest]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.OpenEditor is not implemented"))
}

func (UnimplementedKioskServiceHandler) AdjustEditor(context.Context, *connect.Request[api.AdjustEditorRequest]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.AdjustEditor is not implemented"))
}

func (UnimplementedKioskServiceHandler) SaveEditor(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.SaveEditor is not implemented"))
}

func (UnimplementedKioskServiceHandler) CloseEditor(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.CloseEditor is not implemented"))
}

func (UnimplementedKioskServiceHandler) AddLineItem(context.Context, *connect.Request[api.AddLineItemRequest]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.AddLineItem is not implemented"))
}

func (UnimplementedKioskServiceHandler) UpdateLineItem(context.Context, *connect.Request[api.UpdateLineItemRequest]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.UpdateLineItem is not implemented"))
}

func (UnimplementedKioskServiceHandler) RemoveLineItem(context.Context, *connect.Request[api.RemoveLineItemRequest]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.RemoveLineItem is not implemented"))
}

func (UnimplementedKioskServiceHandler) RemoveDrink(context.Context, *connect.Request[api.RemoveDrinkRequest]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.RemoveDrink is not implemented"))
}

func (UnimplementedKioskServiceHandler) ClearCart(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.ClearCart is not implemented"))
}

func (UnimplementedKioskServiceHandler) StartPayment(context.Context, *connect.Request[api.StartPaymentRequest]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.StartPayment is not implemented"))
}

func (UnimplementedKioskServiceHandler) CancelPayment(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.CancelPayment is not implemented"))
}

func (UnimplementedKioskServiceHandler) CancelOrder(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.CancelOrder is not implemented"))
}

func (UnimplementedKioskServiceHandler) ConfirmCancel(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.ConfirmCancel is not implemented"))
}

func (UnimplementedKioskServiceHandler) DismissCancel(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.DismissCancel is not implemented"))
}

func (UnimplementedKioskServiceHandler) NewOrder(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.NewOrder is not implemented"))
}

func (UnimplementedKioskServiceHandler) ListOrders(context.Context, *connect.Request[api.ListOrdersRequest]) (*connect.Response[api.ListOrdersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("drinko.v1.KioskService.ListOrders is not implemented"))
}

// KioskServiceClient is a client for the drinko.v1.KioskService service.
type KioskServiceClient interface {
	GetCatalog(context.Context, *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error)
	GetSession(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	Touch(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	Navigate(context.Context, *connect.Request[api.NavigateRequest]) (*connect.Response[api.SessionResponse], error)
	OpenEditor(context.Context, *connect.Request[api.OpenEditorRequest]) (*connect.Response[api.SessionResponse], error)
	AdjustEditor(context.Context, *connect.Request[api.AdjustEditorRequest]) (*connect.Response[api.SessionResponse], error)
	SaveEditor(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	CloseEditor(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	AddLineItem(context.Context, *connect.Request[api.AddLineItemRequest]) (*connect.Response[api.SessionResponse], error)
	UpdateLineItem(context.Context, *connect.Request[api.UpdateLineItemRequest]) (*connect.Response[api.SessionResponse], error)
	RemoveLineItem(context.Context, *connect.Request[api.RemoveLineItemRequest]) (*connect.Response[api.SessionResponse], error)
	RemoveDrink(context.Context, *connect.Request[api.RemoveDrinkRequest]) (*connect.Response[api.SessionResponse], error)
	ClearCart(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	StartPayment(context.Context, *connect.Request[api.StartPaymentRequest]) (*connect.Response[api.SessionResponse], error)
	CancelPayment(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	CancelOrder(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	ConfirmCancel(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	DismissCancel(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	NewOrder(context.Context, *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error)
	ListOrders(context.Context, *connect.Request[api.ListOrdersRequest]) (*connect.Response[api.ListOrdersResponse], error)
}

// NewKioskServiceClient constructs a client for the drinko.v1.KioskService
// service. baseURL is the server's URL without the service path, e.g.
// http://localhost:8080.
func NewKioskServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) KioskServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &kioskServiceClient{
		getCatalog:     connect.NewClient[api.GetCatalogRequest, api.GetCatalogResponse](httpClient, baseURL+KioskServiceGetCatalogProcedure, opts...),
		getSession:     connect.NewClient[api.Empty, api.SessionResponse](httpClient, baseURL+KioskServiceGetSessionProcedure, opts...),
		touch:          connect.NewClient[api.Empty, api.SessionResponse](httpClient, baseURL+KioskServiceTouchProcedure, opts...),
		navigate:       connect.NewClient[api.NavigateRequest, api.SessionResponse](httpClient, baseURL+KioskServiceNavigateProcedure, opts...),
		openEditor:     connect.NewClient[api.OpenEditorRequest, api.SessionResponse](httpClient, baseURL+KioskServiceOpenEditorProcedure, opts...),
		adjustEditor:   connect.NewClient[api.AdjustEditorRequest, api.SessionResponse](httpClient, baseURL+KioskServiceAdjustEditorProcedure, opts...),
		saveEditor:     connect.NewClient[api.Empty, api.SessionResponse](httpClient, baseURL+KioskServiceSaveEditorProcedure, opts...),
		closeEditor:    connect.NewClient[api.Empty, api.SessionResponse](httpClient, baseURL+KioskServiceCloseEditorProcedure, opts...),
		addLineItem:    connect.NewClient[api.AddLineItemRequest, api.SessionResponse](httpClient, baseURL+KioskServiceAddLineItemProcedure, opts...),
		updateLineItem: connect.NewClient[api.UpdateLineItemRequest, api.SessionResponse](httpClient, baseURL+KioskServiceUpdateLineItemProcedure, opts...),
		removeLineItem: connect.NewClient[api.RemoveLineItemRequest, api.SessionResponse](httpClient, baseURL+KioskServiceRemoveLineItemProcedure, opts...),
		removeDrink:    connect.NewClient[api.RemoveDrinkRequest, api.SessionResponse](httpClient, baseURL+KioskServiceRemoveDrinkProcedure, opts...),
		clearCart:      connect.NewClient[api.Empty, api.SessionResponse](httpClient, baseURL+KioskServiceClearCartProcedure, opts...),
		startPayment:   connect.NewClient[api.StartPaymentRequest, api.SessionResponse](httpClient, baseURL+KioskServiceStartPaymentProcedure, opts...),
		cancelPayment:  connect.NewClient[api.Empty, api.SessionResponse](httpClient, baseURL+KioskServiceCancelPaymentProcedure, opts...),
		cancelOrder:    connect.NewClient[api.Empty, api.SessionResponse](httpClient, baseURL+KioskServiceCancelOrderProcedure, opts...),
		confirmCancel:  connect.NewClient[api.Empty, api.SessionResponse](httpClient, baseURL+KioskServiceConfirmCancelProcedure, opts...),
		dismissCancel:  connect.NewClient[api.Empty, api.SessionResponse](httpClient, baseURL+KioskServiceDismissCancelProcedure, opts...),
		newOrder:       connect.NewClient[api.Empty, api.SessionResponse](httpClient, baseURL+KioskServiceNewOrderProcedure, opts...),
		listOrders:     connect.NewClient[api.ListOrdersRequest, api.ListOrdersResponse](httpClient, baseURL+KioskServiceListOrdersProcedure, opts...),
	}
}

type kioskServiceClient struct {
	getCatalog     *connect.Client[api.GetCatalogRequest, api.GetCatalogResponse]
	getSession     *connect.Client[api.Empty, api.SessionResponse]
	touch          *connect.Client[api.Empty, api.SessionResponse]
	navigate       *connect.Client[api.NavigateRequest, api.SessionResponse]
	openEditor     *connect.Client[api.OpenEditorRequest, api.SessionResponse]
	adjustEditor   *connect.Client[api.AdjustEditorRequest, api.SessionResponse]
	saveEditor     *connect.Client[api.Empty, api.SessionResponse]
	closeEditor    *connect.Client[api.Empty, api.SessionResponse]
	addLineItem    *connect.Client[api.AddLineItemRequest, api.SessionResponse]
	updateLineItem *connect.Client[api.UpdateLineItemRequest, api.SessionResponse]
	removeLineItem *connect.Client[api.RemoveLineItemRequest, api.SessionResponse]
	removeDrink    *connect.Client[api.RemoveDrinkRequest, api.SessionResponse]
	clearCart      *connect.Client[api.Empty, api.SessionResponse]
	startPayment   *connect.Client[api.StartPaymentRequest, api.SessionResponse]
	cancelPayment  *connect.Client[api.Empty, api.SessionResponse]
	cancelOrder    *connect.Client[api.Empty, api.SessionResponse]
	confirmCancel  *connect.Client[api.Empty, api.SessionResponse]
	dismissCancel  *connect.Client[api.Empty, api.SessionResponse]
	newOrder       *connect.Client[api.Empty, api.SessionResponse]
	listOrders     *connect.Client[api.ListOrdersRequest, api.ListOrdersResponse]
}

// GetCatalog calls drinko.v1.KioskService.GetCatalog.
func (c *kioskServiceClient) GetCatalog(ctx context.Context, req *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error) {
	return c.getCatalog.CallUnary(ctx, req)
}

// GetSession calls drinko.v1.KioskService.GetSession.
func (c *kioskServiceClient) GetSession(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

// Touch calls drinko.v1.KioskService.Touch.
func (c *kioskServiceClient) Touch(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return c.touch.CallUnary(ctx, req)
}

// Navigate calls drinko.v1.KioskService.Navigate.
func (c *kioskServiceClient) Navigate(ctx context.Context, req *connect.Request[api.NavigateRequest]) (*connect.Response[api.SessionResponse], error) {
	return c.navigate.CallUnary(ctx, req)
}

// OpenEditor calls drinko.v1.KioskService.OpenEditor.
func (c *kioskServiceClient) OpenEditor(ctx context.Context, req *connect.Request[api.OpenEditorRequest]) (*connect.Response[api.SessionResponse], error) {
	return c.openEditor.CallUnary(ctx, req)
}

// AdjustEditor calls drinko.v1.KioskService.AdjustEditor.
func (c *kioskServiceClient) AdjustEditor(ctx context.Context, req *connect.Request[api.AdjustEditorRequest]) (*connect.Response[api.SessionResponse], error) {
	return c.adjustEditor.CallUnary(ctx, req)
}

// SaveEditor calls drinko.v1.KioskService.SaveEditor.
func (c *kioskServiceClient) SaveEditor(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return c.saveEditor.CallUnary(ctx, req)
}

// CloseEditor calls drinko.v1.KioskService.CloseEditor.
func (c *kioskServiceClient) CloseEditor(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return c.closeEditor.CallUnary(ctx, req)
}

// AddLineItem calls drinko.v1.KioskService.AddLineItem.
func (c *kioskServiceClient) AddLineItem(ctx context.Context, req *connect.Request[api.AddLineItemRequest]) (*connect.Response[api.SessionResponse], error) {
	return c.addLineItem.CallUnary(ctx, req)
}

// UpdateLineItem calls drinko.v1.KioskService.UpdateLineItem.
func (c *kioskServiceClient) UpdateLineItem(ctx context.Context, req *connect.Request[api.UpdateLineItemRequest]) (*connect.Response[api.SessionResponse], error) {
	return c.updateLineItem.CallUnary(ctx, req)
}

// RemoveLineItem calls drinko.v1.KioskService.RemoveLineItem.
func (c *kioskServiceClient) RemoveLineItem(ctx context.Context, req *connect.Request[api.RemoveLineItemRequest]) (*connect.Response[api.SessionResponse], error) {
	return c.removeLineItem.CallUnary(ctx, req)
}

// RemoveDrink calls drinko.v1.KioskService.RemoveDrink.
func (c *kioskServiceClient) RemoveDrink(ctx context.Context, req *connect.Request[api.RemoveDrinkRequest]) (*connect.Response[api.SessionResponse], error) {
	return c.removeDrink.CallUnary(ctx, req)
}

// ClearCart calls drinko.v1.KioskService.ClearCart.
func (c *kioskServiceClient) ClearCart(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return c.clearCart.CallUnary(ctx, req)
}

// StartPayment calls drinko.v1.KioskService.StartPayment.
func (c *kioskServiceClient) StartPayment(ctx context.Context, req *connect.Request[api.StartPaymentRequest]) (*connect.Response[api.SessionResponse], error) {
	return c.startPayment.CallUnary(ctx, req)
}

// CancelPayment calls drinko.v1.KioskService.CancelPayment.
func (c *kioskServiceClient) CancelPayment(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return c.cancelPayment.CallUnary(ctx, req)
}

// CancelOrder calls drinko.v1.KioskService.CancelOrder.
func (c *kioskServiceClient) CancelOrder(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return c.cancelOrder.CallUnary(ctx, req)
}

// ConfirmCancel calls drinko.v1.KioskService.ConfirmCancel.
func (c *kioskServiceClient) ConfirmCancel(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return c.confirmCancel.CallUnary(ctx, req)
}

// DismissCancel calls drinko.v1.KioskService.DismissCancel.
func (c *kioskServiceClient) DismissCancel(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return c.dismissCancel.CallUnary(ctx, req)
}

// NewOrder calls drinko.v1.KioskService.NewOrder.
func (c *kioskServiceClient) NewOrder(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	return c.newOrder.CallUnary(ctx, req)
}

// ListOrders calls drinko.v1.KioskService.ListOrders.
func (c *kioskServiceClient) ListOrders(ctx context.Context, req *connect.Request[api.ListOrdersRequest]) (*connect.Response[api.ListOrdersResponse], error) {
	return c.listOrders.CallUnary(ctx, req)
}
