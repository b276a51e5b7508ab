package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/digits/internal/api/shared"
	"github.com/phrazzld/digits/internal/domain"
	"github.com/phrazzld/digits/internal/domain/arith"
	"github.com/phrazzld/digits/internal/platform/logger"
)

// OperatorParam is the URL parameter naming the operator.
const OperatorParam = "op"

// DigitHandler handles digit arithmetic HTTP requests
type DigitHandler struct {
	engine arith.Service
	logger *slog.Logger
}

// NewDigitHandler creates a new DigitHandler
func NewDigitHandler(engine arith.Service, logger *slog.Logger) *DigitHandler {
	if engine == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("engine cannot be nil for DigitHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DigitHandler{
		engine: engine,
		logger: logger.With(slog.String("component", "digit_handler")),
	}
}

// Compute handles POST /digits/{op} requests.
// It applies the operator in the path to the two operands in the body.
func (h *DigitHandler) Compute(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	operator, err := h.engine.ParseOperator(operatorParam(r))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req OperationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode operation request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	res, err := h.engine.Evaluate(operator, req.LHS, req.RHS)
	if err != nil {
		if errors.Is(err, domain.ErrDivisionByZero) {
			log.Debug("division by zero requested",
				slog.String("lhs", req.LHS),
				slog.String("rhs", req.RHS))
		}
		HandleAPIError(w, r, err, "Failed to evaluate operation")
		return
	}

	log.Debug("digit operation evaluated",
		slog.String("operator", string(operator)),
		slog.String("result", res.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, resultToResponse(operator, req.LHS, req.RHS, res))
}

// Table handles GET /digits/{op}/table requests.
// It returns the operator's result for every pair of digits.
func (h *DigitHandler) Table(w http.ResponseWriter, r *http.Request) {
	operator, err := h.engine.ParseOperator(operatorParam(r))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	table, err := h.engine.Table(operator)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to build operation table")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tableToResponse(table))
}

// operatorParam returns the decoded operator path segment.
// chi matches on the escaped path, so "/" arrives as "%2F".
func operatorParam(r *http.Request) string {
	raw := chi.URLParam(r, OperatorParam)
	op, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return op
}
