package errors

import "net/http"

// Step names one remote mutation inside a buy/sell workflow. The workflows
// have no cross-step atomicity, so when a step fails the caller must learn
// exactly which one: the product write, the ledger write, or the profile
// reference append.
type Step string

const (
	StepProductWrite     Step = "product-write"
	StepTransactionWrite Step = "transaction-write"
	StepProfileAppend    Step = "profile-append"
)

// StepError marks a workflow failure at a specific step. Steps before it
// completed and are not rolled back; steps after it never ran.
// Implements the AppError interface.
type StepError struct {
	step Step
	err  error
}

// NewStepError records a failure at the given workflow step.
func NewStepError(step Step, err error) *StepError {
	return &StepError{step: step, err: err}
}

// Step returns the workflow step that failed.
func (e *StepError) Step() Step {
	return e.step
}

// Error implements the error interface
func (e *StepError) Error() string {
	return "workflow step " + string(e.step) + " failed: " + e.err.Error()
}

// Unwrap exposes the step's underlying error.
func (e *StepError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StepError) HTTPCode() int {
	if app, ok := e.err.(AppError); ok {
		return app.HTTPCode()
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *StepError) ErrorCode() string {
	return "WORKFLOW_STEP_FAILED"
}

// Message returns the user-friendly error message
func (e *StepError) Message() string {
	return "Workflow failed at step " + string(e.step)
}

// Details returns detailed error information
func (e *StepError) Details() string {
	return e.err.Error()
}
