package api

// Empty is the request of procedures that take no arguments.
type Empty struct{}

// Drink is a catalog entry. Prices are fixed two-decimal strings.
type Drink struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	DoublePrice string `json:"doublePrice"`
	Strength    int    `json:"strength"`
	Image       string `json:"image,omitempty"`
}

type GetCatalogRequest struct {
	// Category filters the drinks; empty or "All" returns every drink.
	Category string `json:"category,omitempty"`
}

type GetCatalogResponse struct {
	Categories []string `json:"categories"`
	Drinks     []Drink  `json:"drinks"`
}

// Session is the kiosk state after an operation.
type Session struct {
	Version       uint64      `json:"version"`
	Screen        string      `json:"screen"`
	Route         string      `json:"route"`
	Lines         []CartLine  `json:"lines"`
	Groups        []CartGroup `json:"groups"`
	Total         string      `json:"total"`
	ItemCount     int         `json:"itemCount"`
	CanPay        bool        `json:"canPay"`
	Editor        *Editor     `json:"editor,omitempty"`
	Payment       *Payment    `json:"payment,omitempty"`
	Pouring       *Pouring    `json:"pouring,omitempty"`
	Idle          Idle        `json:"idle"`
	ConfirmCancel bool        `json:"confirmCancel"`
	LastOrderID   string      `json:"lastOrderId,omitempty"`
}

type CartLine struct {
	LineID    string `json:"lineId"`
	DrinkID   string `json:"drinkId"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	IsDouble  bool   `json:"isDouble"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

// CartGroup is the per-drink consolidation shown on the basket.
type CartGroup struct {
	DrinkID         string `json:"drinkId"`
	Name            string `json:"name"`
	Image           string `json:"image,omitempty"`
	RegularQuantity int    `json:"regularQuantity"`
	DoubleQuantity  int    `json:"doubleQuantity"`
	Total           string `json:"total"`
}

type Editor struct {
	Drink         Drink  `json:"drink"`
	EditingLineID string `json:"editingLineId,omitempty"`
	Regular       int    `json:"regular"`
	Double        int    `json:"double"`
	Total         string `json:"total"`
	AlreadyInCart bool   `json:"alreadyInCart"`
	CanIncrement  bool   `json:"canIncrement"`
	CanSave       bool   `json:"canSave"`
}

type Payment struct {
	Step   string `json:"step"`
	Status string `json:"status"`
	Method string `json:"method,omitempty"`
}

type Pouring struct {
	Index    int `json:"index"`
	Count    int `json:"count"`
	Progress int `json:"progress"`
}

type Idle struct {
	Active      bool `json:"active"`
	SecondsLeft int  `json:"secondsLeft"`
}

// SessionResponse is returned by every session procedure.
type SessionResponse struct {
	Session Session `json:"session"`
}

type NavigateRequest struct {
	Path string `json:"path"`
}

type OpenEditorRequest struct {
	DrinkID string `json:"drinkId"`
	// LineID selects the cart line to edit; empty adds a new drink.
	LineID string `json:"lineId,omitempty"`
}

type AdjustEditorRequest struct {
	// Variant is "regular" or "double".
	Variant string `json:"variant"`
	// Delta is +1 or -1.
	Delta int `json:"delta"`
}

type AddLineItemRequest struct {
	DrinkID  string `json:"drinkId"`
	IsDouble bool   `json:"isDouble"`
	Quantity int    `json:"quantity"`
}

type UpdateLineItemRequest struct {
	LineID   string `json:"lineId"`
	IsDouble bool   `json:"isDouble"`
	Quantity int    `json:"quantity"`
}

type RemoveLineItemRequest struct {
	Position int `json:"position"`
}

type RemoveDrinkRequest struct {
	DrinkID string `json:"drinkId"`
}

type StartPaymentRequest struct {
	// Method is "card" or "qr".
	Method string `json:"method"`
}

type ListOrdersRequest struct {
	Limit int `json:"limit,omitempty"`
}

type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
}

type Order struct {
	ID            string      `json:"id"`
	Lines         []OrderLine `json:"lines"`
	Total         string      `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
	CompletedAt   int64       `json:"completedAt"`
}

type OrderLine struct {
	DrinkID   string `json:"drinkId"`
	Name      string `json:"name"`
	IsDouble  bool   `json:"isDouble"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}
