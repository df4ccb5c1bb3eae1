package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
)

// WorkflowState is a typed state of the two-phase transfer protocol.
// Transitions are enforced by Workflow; illegal ones return an error
// instead of being silently absorbed by boolean flags.
type WorkflowState int

const (
	// StateIdle is the initial state, before any preview was requested.
	StateIdle WorkflowState = iota
	// StatePreviewing means the read-only preview call is in flight.
	StatePreviewing
	// StatePreviewed means line items are available and await confirmation.
	StatePreviewed
	// StateExecuting means the side-effecting execute call is in flight.
	StateExecuting
	// StateSucceeded is terminal: the server returned a transfer identifier.
	StateSucceeded
	// StateCancelled is terminal: the user walked away before confirming.
	StateCancelled
)

// String returns the state name.
func (s WorkflowState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreviewing:
		return "previewing"
	case StatePreviewed:
		return "previewed"
	case StateExecuting:
		return "executing"
	case StateSucceeded:
		return "succeeded"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

var (
	// ErrPreviewInFlight is returned when a preview is requested while one is running.
	ErrPreviewInFlight = errors.New("preview request already in flight")
	// ErrExecuteInFlight is returned when confirm is invoked while an execute is running.
	ErrExecuteInFlight = errors.New("execute request already in flight")
	// ErrNotPreviewed is returned when confirm is invoked before a successful preview.
	ErrNotPreviewed = errors.New("transfer has not been previewed")
	// ErrAlreadyExecuted is returned when the workflow already holds a transfer id.
	ErrAlreadyExecuted = errors.New("transfer already executed")
	// ErrWorkflowCancelled is returned for any operation on a cancelled workflow.
	ErrWorkflowCancelled = errors.New("workflow was cancelled")
	// ErrNothingTransferable is returned when every previewed line was rejected.
	ErrNothingTransferable = errors.New("no transferable lines in preview")
	// ErrExecutePending is returned by Cancel while an execute call is in flight:
	// once sent, the client must wait for resolution rather than abandon it.
	ErrExecutePending = errors.New("cannot cancel while execute is in flight")
)

// Workflow drives one wholesale-to-retail transfer through the two-phase
// protocol: preview (read-only), explicit confirmation, execute
// (side-effecting, at most once). It is safe for concurrent use; the
// guards double as the required protection against duplicate submission.
type Workflow struct {
	mu        sync.Mutex
	state     WorkflowState
	transfers TransferService

	req     *dto.TransferRequest
	preview *model.TransferPreview
	result  *model.ExecuteResult
	lastErr error
}

// NewWorkflow creates an idle workflow over the given transfer service.
func NewWorkflow(transfers TransferService) *Workflow {
	return &Workflow{
		state:     StateIdle,
		transfers: transfers,
	}
}

// Preview runs the read-only phase. Allowed from Idle, and from Previewed
// to refresh the line items; the cart payload is held immutably for the
// subsequent Confirm.
func (w *Workflow) Preview(ctx context.Context, req *dto.TransferRequest) (*model.TransferPreview, error) {
	w.mu.Lock()
	switch w.state {
	case StatePreviewing:
		w.mu.Unlock()
		return nil, ErrPreviewInFlight
	case StateExecuting:
		w.mu.Unlock()
		return nil, ErrExecuteInFlight
	case StateSucceeded:
		w.mu.Unlock()
		return nil, ErrAlreadyExecuted
	case StateCancelled:
		w.mu.Unlock()
		return nil, ErrWorkflowCancelled
	}
	w.state = StatePreviewing
	w.mu.Unlock()

	preview, err := w.transfers.Preview(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		// Preview has no side effects, so a failure simply returns the
		// workflow to idle for a user-initiated retry.
		w.state = StateIdle
		w.lastErr = err
		return nil, err
	}

	w.state = StatePreviewed
	w.req = req
	w.preview = preview
	w.lastErr = nil
	return preview, nil
}

// Confirm runs the side-effecting phase. It is only legal after a
// successful Preview and is rejected while an execute call is in flight,
// which is the duplicate-submit guard. On failure the workflow returns to
// Previewed so the user may retry without rebuilding the request.
func (w *Workflow) Confirm(ctx context.Context) (*model.ExecuteResult, error) {
	w.mu.Lock()
	switch w.state {
	case StateExecuting:
		w.mu.Unlock()
		return nil, ErrExecuteInFlight
	case StateSucceeded:
		w.mu.Unlock()
		return nil, ErrAlreadyExecuted
	case StateCancelled:
		w.mu.Unlock()
		return nil, ErrWorkflowCancelled
	case StateIdle, StatePreviewing:
		w.mu.Unlock()
		return nil, ErrNotPreviewed
	}
	if w.preview.TransferableCount == 0 {
		w.mu.Unlock()
		return nil, ErrNothingTransferable
	}
	req := w.req
	w.state = StateExecuting
	w.mu.Unlock()

	result, err := w.transfers.Execute(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.state = StatePreviewed
		w.lastErr = err
		return nil, err
	}

	w.state = StateSucceeded
	w.result = result
	w.lastErr = nil
	return result, nil
}

// Cancel abandons the workflow before confirmation. A cancel before
// Confirm has no network effect. An in-flight execute cannot be
// cancelled: the outcome must be observed to avoid unknown server state.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateExecuting:
		return ErrExecutePending
	case StateSucceeded:
		return ErrAlreadyExecuted
	case StateCancelled:
		return nil
	}
	w.state = StateCancelled
	return nil
}

// State returns the current workflow state.
func (w *Workflow) State() WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Previewed returns the most recent preview, nil before the first
// successful Preview.
func (w *Workflow) Previewed() *model.TransferPreview {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.preview
}

// Result returns the execute result, nil before success.
func (w *Workflow) Result() *model.ExecuteResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}

// Err returns the most recent operation error, nil after a success.
func (w *Workflow) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}
