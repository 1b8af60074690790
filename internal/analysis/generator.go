package analysis

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"github.com/bobmcallan/meme-scanner/internal/models"
)

var (
	// ErrPermissionDenied means the provider rejected or lacked credentials.
	ErrPermissionDenied = errors.New("analysis provider denied access")
	// ErrResourceNotFound means the configured model or resource does not exist.
	ErrResourceNotFound = errors.New("analysis provider resource not found")
	// ErrProviderFailure covers timeouts, 5xx and network failures.
	ErrProviderFailure = errors.New("analysis provider failed")
	// ErrMalformedResponse means the body did not match the response schema.
	ErrMalformedResponse = errors.New("analysis response malformed")
)

// GenerateRequest is one structured-generation call.
type GenerateRequest struct {
	Model           string
	Prompt          string
	Schema          *genai.Schema
	SearchGrounding bool
	ThinkingBudget  int
}

// GenerateResponse is the raw provider output: the JSON body plus any
// search-grounding citations.
type GenerateResponse struct {
	Text      string
	Citations []models.Source
}

// Generator performs structured generation. Implementations return errors
// wrapping ErrPermissionDenied, ErrResourceNotFound or ErrProviderFailure.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

func (f GeneratorFunc) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return f(ctx, req)
}
