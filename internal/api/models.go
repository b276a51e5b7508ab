package api

import (
	"github.com/phrazzld/digits/internal/domain"
	"github.com/phrazzld/digits/internal/domain/arith"
)

// OperationRequest defines the payload for the digit operation endpoint.
// Operands are decimal strings; the engine decides whether values above 9
// are rejected or clamped.
type OperationRequest struct {
	LHS string `json:"lhs" validate:"required,numeric,max=20"`
	RHS string `json:"rhs" validate:"required,numeric,max=20"`
}

// OperationResponse defines the successful response for the digit operation endpoint.
type OperationResponse struct {
	Operator domain.Operator `json:"operator"`
	LHS      string          `json:"lhs"`
	RHS      string          `json:"rhs"`

	// Digit is the primary result digit
	Digit domain.Digit `json:"digit"`

	// Secondary is the carry, borrow or remainder; null when absent
	Secondary domain.Secondary `json:"secondary"`

	// SecondaryKind names what Secondary means for this operator
	SecondaryKind string `json:"secondary_kind"`
}

// TableCellResponse is one entry of an operation table.
type TableCellResponse struct {
	LHS       domain.Digit      `json:"lhs"`
	RHS       domain.Digit      `json:"rhs"`
	Digit     *domain.Digit     `json:"digit,omitempty"`
	Secondary *domain.Secondary `json:"secondary,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// TableResponse defines the response for the operation table endpoint.
type TableResponse struct {
	Operator      domain.Operator     `json:"operator"`
	SecondaryKind string              `json:"secondary_kind"`
	Cells         []TableCellResponse `json:"cells"`
}

func resultToResponse(op domain.Operator, lhs, rhs string, res domain.Result) OperationResponse {
	return OperationResponse{
		Operator:      op,
		LHS:           lhs,
		RHS:           rhs,
		Digit:         res.Digit,
		Secondary:     res.Secondary,
		SecondaryKind: op.SecondaryKind(),
	}
}

func tableToResponse(table arith.Table) TableResponse {
	cells := make([]TableCellResponse, 0, domain.Radix*domain.Radix)
	for _, row := range table.Cells {
		for _, cell := range row {
			out := TableCellResponse{LHS: cell.LHS, RHS: cell.RHS}
			if cell.Err != nil {
				out.Error = GetSafeErrorMessage(cell.Err)
			} else {
				digit, secondary := cell.Result.Digit, cell.Result.Secondary
				out.Digit = &digit
				out.Secondary = &secondary
			}
			cells = append(cells, out)
		}
	}
	return TableResponse{
		Operator:      table.Operator,
		SecondaryKind: table.Operator.SecondaryKind(),
		Cells:         cells,
	}
}
