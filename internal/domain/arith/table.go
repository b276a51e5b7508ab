package arith

import (
	"encoding/json"
	"strings"

	"github.com/phrazzld/digits/internal/domain"
)

// Cell is one entry of an operation table.
type Cell struct {
	LHS    domain.Digit  `json:"lhs"`
	RHS    domain.Digit  `json:"rhs"`
	Result domain.Result `json:"result"`
	Err    error         `json:"-"`
}

// MarshalJSON writes the result for successful cells and the error text
// for failed ones.
func (c Cell) MarshalJSON() ([]byte, error) {
	out := struct {
		LHS    domain.Digit   `json:"lhs"`
		RHS    domain.Digit   `json:"rhs"`
		Result *domain.Result `json:"result,omitempty"`
		Error  string         `json:"error,omitempty"`
	}{LHS: c.LHS, RHS: c.RHS}
	if c.Err != nil {
		out.Error = c.Err.Error()
	} else {
		out.Result = &c.Result
	}
	return json.Marshal(out)
}

// Table holds the result of an operator for every pair of digits, indexed
// as Cells[lhs][rhs].
type Table struct {
	Operator domain.Operator
	Cells    [domain.Radix][domain.Radix]Cell
}

// buildTable evaluates op over all 100 digit pairs.
func buildTable(op domain.Operator) Table {
	table := Table{Operator: op}
	for _, lhs := range domain.All() {
		for _, rhs := range domain.All() {
			res, err := domain.Apply(op, lhs, rhs)
			table.Cells[lhs][rhs] = Cell{LHS: lhs, RHS: rhs, Result: res, Err: err}
		}
	}
	return table
}

// Lookup returns the stored result for lhs and rhs.
func (t Table) Lookup(lhs, rhs domain.Digit) (domain.Result, error) {
	if !lhs.IsValid() || !rhs.IsValid() {
		return domain.Result{}, domain.ErrDigitOutOfRange
	}
	cell := t.Cells[lhs][rhs]
	return cell.Result, cell.Err
}

// Format renders the table as a grid with lhs rows and rhs columns. Each
// entry is written as "d" or "d,s"; failed entries are written as "err".
func (t Table) Format() string {
	var b strings.Builder
	b.WriteString(t.Operator.Symbol())
	for _, rhs := range domain.All() {
		b.WriteString("    ")
		b.WriteString(rhs.String())
	}
	b.WriteByte('\n')

	for _, lhs := range domain.All() {
		b.WriteString(lhs.String())
		for _, rhs := range domain.All() {
			cell := t.Cells[lhs][rhs]
			entry := "err"
			if cell.Err == nil {
				entry = cell.Result.String()
			}
			b.WriteString(strings.Repeat(" ", 5-len(entry)))
			b.WriteString(entry)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
