package command

// Result is the wire mapping returned for every command.
type Result map[string]any

// NewSuccess builds a success result wrapping the serialized data.
func NewSuccess(data any) Result {
	r := Result{"success": true}
	if data != nil {
		r["data"] = data
	}
	return r
}

// NewError builds a failure result with a single message.
func NewError(message string) Result {
	return Result{"success": false, "error": message}
}

// NewValidationError builds a failure result carrying every collected
// validation message.
func NewValidationError(errs []string) Result {
	return Result{"success": false, "error": "validation failed", "validationErrors": errs}
}

// AttachCompilationWait records the gate's wait on a mutating result.
func (r Result) AttachCompilationWait(waited bool, durationMillis int64, timedOut bool) {
	r["compilationWait"] = map[string]any{
		"waited":     waited,
		"durationMs": durationMillis,
		"timedOut":   timedOut,
	}
}
