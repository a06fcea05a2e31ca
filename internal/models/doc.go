// Package models defines the core domain models for the drinko kiosk.
//
// # Models
//
//   - Drink: immutable catalog entry (loaded once, never mutated)
//   - LineItem: one cart entry, a Drink snapshot plus variant and quantity
//   - EditorState: the drink editor (modal) currently shown, if any
//   - Order: journal record written when a session completes
//
// # Design Principles
//
// 1. **Snapshots, not references**: a LineItem copies the Drink it was built
// from, so catalog reloads never change an open cart
// 2. **Exact money**: prices are decimal.Decimal, never float64
// 3. **Line identity**: LineID is distinct from the drink ID so one drink can
// appear as separate regular and double lines
package models
