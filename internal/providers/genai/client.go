// Package genai is a lightweight client for the Gemini generateContent REST
// API, covering exactly what the design tools need: multi-modal image
// generation and plain text generation. Requests carry zero or more inline
// image parts followed by one text part; responses are scanned for the first
// inline image.
package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	ImageModel string
	TextModel  string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client talks to the Gemini generateContent endpoint. One request per call;
// no retry, no backoff.
type Client struct {
	apiKey     string
	baseURL    string
	imageModel string
	textModel  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient constructs a Gemini client with sane defaults. Callers may provide
// a nil HTTP client; one with a generation-sized timeout will be created.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("genai: api key is required")
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	imageModel := opts.ImageModel
	if imageModel == "" {
		imageModel = "gemini-3-pro-image-preview"
	}
	textModel := opts.TextModel
	if textModel == "" {
		textModel = "gemini-2.0-flash"
	}

	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		imageModel: imageModel,
		textModel:  textModel,
		httpClient: client,
		logger:     opts.Logger,
	}, nil
}

// ImageModel returns the configured image model identifier.
func (c *Client) ImageModel() string { return c.imageModel }

// TextModel returns the configured text model identifier.
func (c *Client) TextModel() string { return c.textModel }

// ImagePart is one inline image attached to a request.
type ImagePart struct {
	MIME string
	Data []byte
}

// GenerationConfig carries the fixed sampling parameters attached per tool.
type GenerationConfig struct {
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
	Modalities      []string
}

// Sampling presets matching the generation behavior each tool needs. Drawing
// tools (floor plans, 3D conversion, reference transfer) sample hot; photo
// restyling stays conservative so the room structure survives.
var (
	ConfigDrawing = GenerationConfig{Temperature: 1, TopP: 0.95, TopK: 64, MaxOutputTokens: 8192, Modalities: []string{"image", "text"}}
	ConfigRestyle = GenerationConfig{Temperature: 0.7, TopP: 0.9, TopK: 40, MaxOutputTokens: 8192, Modalities: []string{"image", "text"}}
	ConfigVision  = GenerationConfig{Temperature: 1, TopP: 0.95, TopK: 40, MaxOutputTokens: 8192, Modalities: []string{"image", "text"}}
	ConfigConcept = GenerationConfig{Temperature: 0.7, TopP: 0.9, TopK: 40, MaxOutputTokens: 2048}
)

// ImageRequest describes one multi-modal generation call: the ordered image
// parts, the rendered prompt, and the sampling parameters.
type ImageRequest struct {
	Images []ImagePart
	Prompt string
	Config GenerationConfig
}

// ImageResult is the first inline image found in the provider's response.
type ImageResult struct {
	MIME string
	Data []byte
}

// DataURI renders the image as a browser-displayable data URI.
func (r *ImageResult) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", r.MIME, base64.StdEncoding.EncodeToString(r.Data))
}

// GenerateImage issues a single generateContent call and returns the first
// inline image of the response. When the provider replies with text only, the
// error is a *NoImageError carrying that text.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	payload := generateContentRequest{
		Contents:         []content{{Parts: buildParts(req.Images, req.Prompt)}},
		GenerationConfig: wireConfig(req.Config),
	}

	var resp generateContentResponse
	if err := c.invoke(ctx, c.imageModel, payload, &resp); err != nil {
		return nil, err
	}

	result, err := extractImage(resp)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("model", c.imageModel).
		Int("image_parts", len(req.Images)).
		Int("bytes", len(result.Data)).
		Msg("genai: generated image")

	return result, nil
}

// TextRequest describes one text-only generation call.
type TextRequest struct {
	Prompt string
	Config GenerationConfig
}

// GenerateText issues a single generateContent call and returns the first text
// part of the first candidate.
func (c *Client) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	payload := generateContentRequest{
		Contents:         []content{{Parts: []part{{Text: req.Prompt}}}},
		GenerationConfig: wireConfig(req.Config),
	}

	var resp generateContentResponse
	if err := c.invoke(ctx, c.textModel, payload, &resp); err != nil {
		return "", err
	}

	return extractText(resp)
}

// buildParts assembles the wire parts: every image first, in the order
// supplied, then exactly one text part. The image order is semantic (subject
// before style reference); reordering silently changes model behavior.
func buildParts(images []ImagePart, prompt string) []part {
	parts := make([]part, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: img.MIME,
			Data:     base64.StdEncoding.EncodeToString(img.Data),
		}})
	}
	parts = append(parts, part{Text: prompt})
	return parts
}

func wireConfig(cfg GenerationConfig) *generationConfig {
	return &generationConfig{
		Temperature:        cfg.Temperature,
		TopP:               cfg.TopP,
		TopK:               cfg.TopK,
		MaxOutputTokens:    cfg.MaxOutputTokens,
		ResponseModalities: cfg.Modalities,
	}
}

func (c *Client) invoke(ctx context.Context, model string, payload any, out any) error {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(model))
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("genai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("genai: create request: %w", err)
	}
	q := req.URL.Query()
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("genai: invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("genai: decode response: %w", err)
	}
	return nil
}

func (c *Client) apiError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var envelope errorResponse
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
}
