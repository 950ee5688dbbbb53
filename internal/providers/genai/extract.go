package genai

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrNoCandidates reports a response with an absent or empty candidate list.
var ErrNoCandidates = errors.New("genai: no candidates in response")

// ErrNoParts reports a first candidate with an absent or empty part list.
var ErrNoParts = errors.New("genai: no parts in response")

// APIError is a non-success status returned by the provider, carrying its raw
// error text for diagnosis.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("genai: gemini status %d: %s", e.StatusCode, e.Message)
}

// NoImageError reports a successful call that produced no inline image. Text
// preserves the provider's explanation (e.g. a safety refusal) so the caller
// can display it instead of a blank failure.
type NoImageError struct {
	Text string
}

func (e *NoImageError) Error() string {
	return "genai: no image in response"
}

// extractImage scans the first candidate's parts in order and returns the
// first one carrying inline data. The mime type defaults to image/png when the
// part omits it. First match wins: if the provider ever returned several
// images only the first is surfaced.
func extractImage(resp generateContentResponse) (*ImageResult, error) {
	if len(resp.Candidates) == 0 {
		return nil, ErrNoCandidates
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return nil, ErrNoParts
	}

	for _, p := range parts {
		if p.InlineData == nil || p.InlineData.Data == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
		if err != nil {
			return nil, fmt.Errorf("genai: decode inline data: %w", err)
		}
		mime := p.InlineData.MimeType
		if mime == "" {
			mime = "image/png"
		}
		return &ImageResult{MIME: mime, Data: data}, nil
	}

	// No binary part: surface the first text part as a diagnostic.
	for _, p := range parts {
		if p.Text != "" {
			return nil, &NoImageError{Text: p.Text}
		}
	}
	return nil, &NoImageError{}
}

// extractText returns the first text part of the first candidate.
func extractText(resp generateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", ErrNoParts
	}
	for _, p := range parts {
		if p.Text != "" {
			return p.Text, nil
		}
	}
	return "", ErrNoParts
}
