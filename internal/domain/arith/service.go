package arith

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phrazzld/digits/internal/domain"
)

// Common errors
var (
	ErrNilParams    = errors.New("params cannot be nil")
	ErrEmptyOperand = errors.New("operand cannot be empty")
)

// Service defines the interface for digit engine operations
type Service interface {
	// Apply performs op on two digits.
	//
	// Returns:
	//   - (domain.Result, nil) on success
	//   - an *OperationError wrapping domain.ErrDivisionByZero when op is divide
	//     and rhs is Zero
	//   - an *OperationError wrapping domain.ErrInvalidOperator for an unknown op
	Apply(op domain.Operator, lhs, rhs domain.Digit) (domain.Result, error)

	// ParseOperator resolves an operator name or symbol. Symbols are rejected
	// when Params.AllowSymbols is false. Failures are *OperationError values
	// wrapping domain.ErrInvalidOperator.
	ParseOperator(text string) (domain.Operator, error)

	// Evaluate parses two textual operands and applies op to them. Operands
	// are decimal integers; values above 9 are rejected or clamped according
	// to Params.StrictConversion.
	Evaluate(op domain.Operator, lhs, rhs string) (domain.Result, error)

	// Table returns the results of op for all 100 digit pairs.
	Table(op domain.Operator) (Table, error)
}

// OperationError wraps a failed digit operation with its inputs.
// Use errors.Is on it to test for the underlying domain error.
type OperationError struct {
	Operator domain.Operator
	LHS      string
	RHS      string
	Err      error
}

// Error implements the error interface for OperationError.
func (e *OperationError) Error() string {
	op := string(e.Operator)
	if op == "" {
		op = "operation"
	}
	if e.LHS == "" && e.RHS == "" {
		return fmt.Sprintf("%s failed: %v", op, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %s failed: %v", e.LHS, e.Operator.Symbol(), e.RHS, op, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
	tables map[domain.Operator]Table
	logger *slog.Logger
}

// NewDefaultService creates a new engine service with default parameters
func NewDefaultService() (Service, error) {
	return NewServiceWithParams(NewDefaultParams(), nil)
}

// NewServiceWithParams creates a new engine service with custom parameters.
// A nil logger falls back to slog.Default().
func NewServiceWithParams(params *Params, logger *slog.Logger) (Service, error) {
	if params == nil {
		return nil, ErrNilParams
	}
	if logger == nil {
		logger = slog.Default()
	}

	tables := make(map[domain.Operator]Table, len(domain.Operators()))
	for _, op := range domain.Operators() {
		tables[op] = buildTable(op)
	}

	return &defaultService{
		params: params,
		tables: tables,
		logger: logger.With(slog.String("component", "digit_engine")),
	}, nil
}

// Apply implements the Service interface
func (s *defaultService) Apply(
	op domain.Operator,
	lhs, rhs domain.Digit,
) (domain.Result, error) {
	res, err := domain.Apply(op, lhs, rhs)
	if err != nil {
		s.logger.Debug("digit operation failed",
			slog.String("operator", string(op)),
			slog.String("lhs", lhs.String()),
			slog.String("rhs", rhs.String()),
			slog.String("error", err.Error()))
		return domain.Result{}, &OperationError{
			Operator: op,
			LHS:      lhs.String(),
			RHS:      rhs.String(),
			Err:      err,
		}
	}
	return res, nil
}

// ParseOperator implements the Service interface
func (s *defaultService) ParseOperator(text string) (domain.Operator, error) {
	operator, err := domain.ParseOperator(text)
	if err != nil {
		return "", &OperationError{Err: err}
	}
	if !s.params.AllowSymbols && !strings.EqualFold(strings.TrimSpace(text), string(operator)) {
		return "", &OperationError{
			Err: fmt.Errorf("%w: %q (symbols disabled)", domain.ErrInvalidOperator, text),
		}
	}
	return operator, nil
}

// Evaluate implements the Service interface
func (s *defaultService) Evaluate(operator domain.Operator, lhs, rhs string) (domain.Result, error) {
	if !operator.IsValid() {
		return domain.Result{}, &OperationError{
			Operator: operator,
			LHS:      lhs,
			RHS:      rhs,
			Err:      fmt.Errorf("%w: %q", domain.ErrInvalidOperator, string(operator)),
		}
	}

	left, err := s.parseOperand(lhs)
	if err != nil {
		return domain.Result{}, &OperationError{Operator: operator, LHS: lhs, RHS: rhs, Err: err}
	}
	right, err := s.parseOperand(rhs)
	if err != nil {
		return domain.Result{}, &OperationError{Operator: operator, LHS: lhs, RHS: rhs, Err: err}
	}

	return s.Apply(operator, left, right)
}

// Table implements the Service interface
func (s *defaultService) Table(op domain.Operator) (Table, error) {
	table, ok := s.tables[op]
	if !ok {
		return Table{}, &OperationError{
			Operator: op,
			Err:      fmt.Errorf("%w: %q", domain.ErrInvalidOperator, string(op)),
		}
	}
	return table, nil
}

// parseOperand converts a decimal integer string to a digit
func (s *defaultService) parseOperand(text string) (domain.Digit, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Zero, ErrEmptyOperand
	}

	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if s.params.StrictConversion {
				return domain.Zero, fmt.Errorf("%w: %s", domain.ErrDigitOutOfRange, text)
			}
			return domain.Nine, nil
		}
		return domain.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidDigitChar, text)
	}

	if s.params.StrictConversion {
		return domain.FromOrdinal(n)
	}
	return domain.FromOrdinalSaturating(n), nil
}
