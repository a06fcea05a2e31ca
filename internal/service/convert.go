package service

import (
	"github.com/mmynk/drinko/internal/calculator"
	"github.com/mmynk/drinko/internal/flow"
	"github.com/mmynk/drinko/internal/models"
	"github.com/mmynk/drinko/pkg/api"
)

// DrinkToAPI converts a catalog drink to its wire form.
func DrinkToAPI(d models.Drink) api.Drink {
	return api.Drink{
		ID:          d.ID,
		Name:        d.Name,
		Category:    d.Category,
		Price:       calculator.Format(d.Price),
		DoublePrice: calculator.Format(calculator.VariantPrice(d.Price, true)),
		Strength:    int(d.Strength),
		Image:       d.Image,
	}
}

// SessionToAPI converts a controller snapshot to its wire form.
func SessionToAPI(s flow.Snapshot) api.Session {
	out := api.Session{
		Version:       s.Version,
		Screen:        string(s.Screen),
		Route:         s.Route,
		Lines:         make([]api.CartLine, len(s.Lines)),
		Groups:        make([]api.CartGroup, len(s.Groups)),
		Total:         calculator.Format(s.Total),
		ItemCount:     s.ItemCount,
		CanPay:        s.CanPay,
		ConfirmCancel: s.ConfirmCancel,
		LastOrderID:   s.LastOrderID,
		Idle: api.Idle{
			Active:      s.Idle.Active,
			SecondsLeft: s.Idle.SecondsLeft,
		},
	}

	for i, line := range s.Lines {
		out.Lines[i] = api.CartLine{
			LineID:    line.LineID,
			DrinkID:   line.ID,
			Name:      line.Name,
			Image:     line.Image,
			IsDouble:  line.IsDouble,
			Quantity:  line.Quantity,
			UnitPrice: calculator.Format(line.UnitPrice),
			LineTotal: calculator.Format(line.LineTotal),
		}
	}

	for i, g := range s.Groups {
		out.Groups[i] = api.CartGroup{
			DrinkID:         g.DrinkID,
			Name:            g.Name,
			Image:           g.Image,
			RegularQuantity: g.RegularQuantity,
			DoubleQuantity:  g.DoubleQuantity,
			Total:           calculator.Format(g.Total),
		}
	}

	if e := s.Editor; e.Open && e.Drink != nil {
		out.Editor = &api.Editor{
			Drink:         DrinkToAPI(*e.Drink),
			EditingLineID: e.EditingLineID,
			Regular:       e.Regular,
			Double:        e.Double,
			Total:         calculator.Format(e.Total),
			AlreadyInCart: e.AlreadyInCart,
			CanIncrement:  e.CanIncrement,
			CanSave:       e.CanSave,
		}
	}

	if s.Screen == flow.ScreenPayment {
		out.Payment = &api.Payment{
			Step:   string(s.Payment.Step),
			Status: string(s.Payment.Status),
			Method: string(s.Payment.Method),
		}
	}

	if s.Screen == flow.ScreenPouring {
		out.Pouring = &api.Pouring{
			Index:    s.Pouring.Index,
			Count:    s.Pouring.Count,
			Progress: s.Pouring.Progress,
		}
	}

	return out
}

// OrderToAPI converts a journal order to its wire form.
func OrderToAPI(o *models.Order) api.Order {
	out := api.Order{
		ID:            o.ID,
		Lines:         make([]api.OrderLine, len(o.Lines)),
		Total:         calculator.Format(o.Total),
		PaymentMethod: string(o.PaymentMethod),
		CompletedAt:   o.CompletedAt,
	}
	for i, line := range o.Lines {
		out.Lines[i] = api.OrderLine{
			DrinkID:   line.DrinkID,
			Name:      line.Name,
			IsDouble:  line.IsDouble,
			Quantity:  line.Quantity,
			UnitPrice: calculator.Format(line.UnitPrice),
			LineTotal: calculator.Format(line.LineTotal),
		}
	}
	return out
}
