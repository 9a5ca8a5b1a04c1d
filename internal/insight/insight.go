// Package insight derives overspending alerts and overrun predictions for a
// single owner's current-month budgets. Reports are computed fresh on every
// call and never cached or persisted.
package insight

import (
	"github.com/mgoncalo/centavo/internal/money"
)

// Alert flags a category whose month-to-date spend has reached or exceeded
// its budget.
type Alert struct {
	Category string
	Budget   money.Amount
	Spent    money.Amount
	Overage  money.Amount
	Message  string
}

// Prediction flags a category still under budget but projected, at the
// current daily rate, to exceed it before the month ends.
type Prediction struct {
	Category  string
	Budget    money.Amount
	Spent     money.Amount
	Projected money.Amount
	Message   string
}

// Report is the full insight result for one owner and reference date.
// Both slices are ordered by category name; a category appears in at most
// one of them.
type Report struct {
	Overspending []Alert
	Predictions  []Prediction
}
