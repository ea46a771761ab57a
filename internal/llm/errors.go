package llm

import "errors"

var (
	// ErrMissingAPIKey indicates the client was constructed without a
	// credential. Raised at construction time, before any request.
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY environment variable is not set")

	// ErrEmptyCompletion indicates the API answered 200 but returned
	// no completion choices.
	ErrEmptyCompletion = errors.New("no completion choices returned")
)
