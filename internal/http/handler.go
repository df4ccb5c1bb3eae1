package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Mohamed2661994/glass-transfer-service/internal/circuitbreaker"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
	"github.com/Mohamed2661994/glass-transfer-service/internal/i18n"
	"github.com/Mohamed2661994/glass-transfer-service/internal/middleware"
	"github.com/Mohamed2661994/glass-transfer-service/internal/service"
	"github.com/Mohamed2661994/glass-transfer-service/internal/upstream"
)

// Handler provides HTTP handlers for the transfer routes.
//
// Each preview opens a workflow session; execute and cancel resolve it.
// The workflow's state machine makes an execute without a prior preview,
// or a second execute of the same session, a protocol error instead of a
// duplicated stock movement.
type Handler struct {
	transfers service.TransferService
	receipts  service.ReceiptsService
	sessions  *sessionStore
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithSessionTTL overrides how long a previewed transfer stays confirmable.
func WithSessionTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.sessions.stop()
		h.sessions = newSessionStore(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(transfers service.TransferService, receipts service.ReceiptsService, opts ...HandlerOption) *Handler {
	h := &Handler{
		transfers: transfers,
		receipts:  receipts,
		sessions:  newSessionStore(DefaultSessionTTL),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Close releases handler resources.
func (h *Handler) Close() {
	h.sessions.stop()
}

// PreviewTransfer handles POST /api/transfer/preview requests.
//
// @Summary      Preview a wholesale-to-retail transfer
// @Description  Sends the cart to the stock service for a read-only fulfillability check and returns one reviewable line per product, enriched with converted retail quantities. The returned session_id must be presented to execute or cancel the transfer.
// @Tags         Transfers
// @Accept       json
// @Produce      json
// @Param        request body dto.TransferRequest true "Cart contents"
// @Success      200 {object} dto.SuccessResponse "Preview built"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid cart"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Stock service rejected the preview"
// @Failure      503 {object} dto.ErrorResponse "Stock service unavailable"
// @Security     BearerAuth
// @Router       /api/transfer/preview [post]
func (h *Handler) PreviewTransfer(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.TransferRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, validationKey(err), err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "preview", "Transfer preview requested", map[string]interface{}{
				"items": len(req.Items),
			})
		}
	}

	workflow := service.NewWorkflow(h.transfers)
	preview, err := workflow.Preview(c.Request.Context(), req)
	if err != nil {
		h.upstreamError(builder, i18n.ErrKeyPreviewFailed, err)
		return
	}

	sessionID := h.sessions.create(workflow)
	builder.SuccessOK(dto.PreviewResponse{
		SessionID: sessionID,
		Preview:   preview,
	})
}

// ExecuteTransfer handles POST /api/transfer/execute requests.
//
// @Summary      Execute a previewed transfer
// @Description  Confirms a previously previewed transfer session and commits the stock movement upstream. A session can be executed at most once; repeated confirmation attempts return a conflict.
// @Tags         Transfers
// @Accept       json
// @Produce      json
// @Param        request body dto.ExecuteTransferRequest true "Session to confirm"
// @Success      200 {object} dto.SuccessResponse "Transfer executed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - nothing transferable"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - insufficient role"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired session"
// @Failure      409 {object} dto.ErrorResponse "Conflict - already executed or execution in flight"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Stock service rejected the transfer"
// @Failure      503 {object} dto.ErrorResponse "Stock service unavailable"
// @Security     BearerAuth
// @Router       /api/transfer/execute [post]
func (h *Handler) ExecuteTransfer(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ExecuteTransferRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	workflow := h.sessions.get(req.SessionID)
	if workflow == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	result, err := workflow.Confirm(c.Request.Context())
	if err != nil {
		h.confirmError(c, builder, err)
		return
	}

	h.recordReceipt(c, workflow, result)

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "execute", "Transfer executed", map[string]interface{}{
				"transfer_id": result.TransferID,
				"session_id":  req.SessionID,
			})
		}
	}

	builder.SuccessOK(dto.ExecuteResponse{
		TransferID: result.TransferID,
		State:      workflow.State().String(),
	})
}

// CancelTransfer handles POST /api/transfer/cancel requests.
//
// @Summary      Cancel a previewed transfer
// @Description  Abandons a previewed transfer session without touching stock. A session whose execution is in flight cannot be cancelled.
// @Tags         Transfers
// @Accept       json
// @Produce      json
// @Param        request body dto.CancelTransferRequest true "Session to cancel"
// @Success      200 {object} dto.SuccessResponse "Session cancelled"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired session"
// @Failure      409 {object} dto.ErrorResponse "Conflict - execution in flight or already executed"
// @Security     BearerAuth
// @Router       /api/transfer/cancel [post]
func (h *Handler) CancelTransfer(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CancelTransferRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	workflow := h.sessions.get(req.SessionID)
	if workflow == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	if err := workflow.Cancel(); err != nil {
		h.confirmError(c, builder, err)
		return
	}
	h.sessions.remove(req.SessionID)

	builder.SuccessOK(gin.H{"state": workflow.State().String()})
}

// TransferHistory handles GET /api/transfer/history requests.
//
// @Summary      List executed transfer receipts
// @Description  Returns receipts of executed transfers, newest first.
// @Tags         Transfers
// @Produce      json
// @Param        limit query int false "Maximum receipts to return" default(50)
// @Success      200 {object} dto.SuccessResponse "Receipts"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/transfer/history [get]
func (h *Handler) TransferHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if h.receipts == nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, service.ErrRepositoryNotConfigured)
		return
	}

	receipts, err := h.receipts.Recent(c.Request.Context(), query.Limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(receipts)
}

// recordReceipt persists the receipt of an executed transfer. Receipt
// storage is best-effort; the stock movement already happened upstream,
// so a storage failure must not fail the request.
func (h *Handler) recordReceipt(c *gin.Context, workflow *service.Workflow, result *model.ExecuteResult) {
	if h.receipts == nil {
		return
	}

	requestID := middleware.GetRequestID(c)
	executedBy := ""
	if email, exists := c.Get("user_email"); exists {
		if e, ok := email.(string); ok {
			executedBy = e
		}
	}

	if err := h.receipts.Record(c.Request.Context(), result, workflow.Previewed(), requestID, executedBy); err != nil {
		log.Warn().
			Err(err).
			Int64("transfer_id", result.TransferID).
			Msg("Failed to store transfer receipt")
	}
}

// confirmError maps workflow and upstream errors to HTTP responses.
func (h *Handler) confirmError(c *gin.Context, builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrNotPreviewed):
		builder.Error(http.StatusConflict, i18n.ErrKeyNotPreviewed, err)
	case errors.Is(err, service.ErrAlreadyExecuted):
		builder.Error(http.StatusConflict, i18n.ErrKeyAlreadyExecuted, err)
	case errors.Is(err, service.ErrExecuteInFlight), errors.Is(err, service.ErrExecutePending):
		builder.Error(http.StatusConflict, i18n.ErrKeyExecutePending, err)
	case errors.Is(err, service.ErrWorkflowCancelled):
		builder.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
	case errors.Is(err, service.ErrNothingTransferable):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyNothingTransferable, err)
	default:
		h.upstreamError(builder, i18n.ErrKeyExecuteFailed, err)
	}
}

// upstreamError surfaces stock service failures. A server-provided message
// is passed through verbatim; transport failures get a translated message.
func (h *Handler) upstreamError(builder *ResponseBuilder, fallbackKey string, err error) {
	var upstreamErr *upstream.Error
	if errors.As(err, &upstreamErr) && upstreamErr.Message != "" {
		builder.ErrorWithMessage(http.StatusBadGateway, upstreamErr.Message, err)
		return
	}
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyUpstreamUnavailable, err)
		return
	}
	builder.Error(http.StatusBadGateway, fallbackKey, err)
}

// validationKey picks the translation key for a cart validation error.
func validationKey(err error) string {
	switch {
	case errors.Is(err, dto.ErrEmptyCart):
		return i18n.ErrKeyEmptyCart
	case errors.Is(err, dto.ErrDuplicateProduct):
		return i18n.ErrKeyDuplicateProduct
	case errors.Is(err, dto.ErrInvalidQuantity):
		return i18n.ErrKeyInvalidQuantity
	default:
		return i18n.ErrKeyInvalidRequestBody
	}
}
