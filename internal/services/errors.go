package services

import "errors"

var (
	// ErrUserNotFound indicates the pipeline was invoked for an unknown
	// user id. Nothing past the fetch stage runs.
	ErrUserNotFound = errors.New("user not found")

	// ErrGenerationFailed wraps any failure from the generation client.
	// The pipeline does not retry; retries live inside the client.
	ErrGenerationFailed = errors.New("failed to generate next-day plan")

	// ErrAmbiguousReply indicates the model reply contained no task
	// delimiter, so the parser fell back to a single full-text task.
	ErrAmbiguousReply = errors.New("model reply contains no task delimiter")
)
