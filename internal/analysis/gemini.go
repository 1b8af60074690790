package analysis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/bobmcallan/meme-scanner/internal/config"
	"github.com/bobmcallan/meme-scanner/internal/models"
)

// GeminiGenerator runs structured generation against the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
}

// NewGenerator returns a Gemini-backed Generator, or one that always reports
// ErrPermissionDenied when no credential is configured. The service still
// starts without a key so market lookups and the UI remain usable.
func NewGenerator(ctx context.Context, cfg config.AnalysisConfig) (Generator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return unconfiguredGenerator{}, nil
	}
	return NewGeminiGenerator(ctx, cfg.APIKey, cfg.BaseURL, nil)
}

// NewGeminiGenerator creates a client for the Gemini developer API. baseURL and
// httpClient are optional.
func NewGeminiGenerator(ctx context.Context, apiKey, baseURL string, httpClient *http.Client) (*GeminiGenerator, error) {
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client}, nil
}

// Generate issues one GenerateContent call. No retries are attempted.
func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	gc := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	}
	if req.SearchGrounding {
		gc.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	if req.ThinkingBudget > 0 {
		gc.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(req.ThinkingBudget))}
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), gc)
	if err != nil {
		return nil, classifyAPIError(err)
	}

	out := &GenerateResponse{Text: resp.Text()}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil {
				continue
			}
			out.Citations = append(out.Citations, models.Source{Title: chunk.Web.Title, URL: chunk.Web.URI})
		}
	}
	return out, nil
}

// classifyAPIError maps SDK errors onto the package error classes.
func classifyAPIError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var p *genai.APIError
		if errors.As(err, &p) && p != nil {
			apiErr = *p
		} else {
			return fmt.Errorf("%w: %v", ErrProviderFailure, err)
		}
	}

	status := strings.ToUpper(apiErr.Status)
	msg := strings.ToLower(apiErr.Message)
	switch {
	case apiErr.Code == http.StatusUnauthorized, apiErr.Code == http.StatusForbidden,
		status == "PERMISSION_DENIED", status == "UNAUTHENTICATED":
		return fmt.Errorf("%w: %s", ErrPermissionDenied, apiErr.Message)
	case apiErr.Code == http.StatusBadRequest && strings.Contains(msg, "api key"):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, apiErr.Message)
	case apiErr.Code == http.StatusNotFound, status == "NOT_FOUND":
		return fmt.Errorf("%w: %s", ErrResourceNotFound, apiErr.Message)
	}
	return fmt.Errorf("%w: %d %s: %s", ErrProviderFailure, apiErr.Code, apiErr.Status, apiErr.Message)
}

type unconfiguredGenerator struct{}

func (unconfiguredGenerator) Generate(context.Context, GenerateRequest) (*GenerateResponse, error) {
	return nil, fmt.Errorf("%w: no API credential configured", ErrPermissionDenied)
}
