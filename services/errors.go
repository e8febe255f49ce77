package services

// Error taxonomy for the payment core. Controllers map these onto HTTP
// statuses; everything else is treated as an internal error.

// ValidationError marks user-correctable input problems.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConfigurationError means no usable gateway is set up. The user cannot
// fix it; it surfaces as a server-side failure.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// UpstreamError wraps a gateway call that errored or returned garbage.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string { return e.Message }
func (e *UpstreamError) Unwrap() error { return e.Err }

// NotFoundError marks a missing order or user.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// AlreadyProcessedError is not a failure: the order reached a terminal
// state in a competing request and this attempt is a no-op.
type AlreadyProcessedError struct {
	Status string
}

func (e *AlreadyProcessedError) Error() string {
	return "order already processed with status " + e.Status
}
