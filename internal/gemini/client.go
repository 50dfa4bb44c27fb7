package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"autoservice-backend/internal/models"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"
)

const apiVersion = "v1beta"

var ErrDisabled = errors.New("diagnosis disabled: no api key configured")

type Client struct {
	genai    *genai.Client
	model    string
	language string
}

type DiagnosisInput struct {
	Description string
	CarBrand    string
	ServiceType string
	// ImageURL is only sent to the model when it is a base64 data URI.
	ImageURL string
}

// NewClient builds a Gemini client. An empty apiKey gives a disabled client
// whose Diagnose returns ErrDisabled; baseURL overrides the public endpoint.
func NewClient(ctx context.Context, baseURL, apiKey, model, language string) (*Client, error) {
	if language == "" {
		language = "English"
	}
	c := &Client{model: model, language: language}
	if apiKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Timeout:   60 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    baseURL,
			APIVersion: apiVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	c.genai = client
	return c, nil
}

func (c *Client) Enabled() bool {
	return c != nil && c.genai != nil
}

// Diagnose asks the model for a structured diagnosis of the customer's
// description and, when present, photo.
func (c *Client) Diagnose(ctx context.Context, input DiagnosisInput) (*models.DiagnosisResult, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	ctx, span := otel.Tracer("gemini").Start(ctx, "GeminiDiagnose")
	defer span.End()
	span.SetAttributes(
		attribute.String("model", c.model),
		attribute.String("carBrand", input.CarBrand),
		attribute.Bool("withImage", input.ImageURL != ""),
	)

	result, err := c.diagnose(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "diagnosis failed")
		return nil, err
	}
	return result, nil
}

func (c *Client) diagnose(ctx context.Context, input DiagnosisInput) (*models.DiagnosisResult, error) {
	parts := []*genai.Part{genai.NewPartFromText(c.prompt(input))}
	if mimeType, data, ok := inlineImage(input.ImageURL); ok {
		parts = append(parts, genai.NewPartFromBytes(data, mimeType))
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   diagnosisSchema(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate diagnosis: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("diagnosis blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return nil, fmt.Errorf("empty diagnosis in response")
	}

	var diagnosis models.DiagnosisResult
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &diagnosis); err != nil {
		return nil, fmt.Errorf("failed to decode diagnosis: %w, text: %s", err, text)
	}
	diagnosis.Urgency = models.ParseUrgency(string(diagnosis.Urgency))

	return &diagnosis, nil
}

func (c *Client) prompt(input DiagnosisInput) string {
	var b strings.Builder
	b.WriteString("Analyze this car request and provide a diagnosis in JSON format.\n")
	fmt.Fprintf(&b, "Car Brand: %s\n", input.CarBrand)
	fmt.Fprintf(&b, "Service Requested: %s\n", input.ServiceType)
	fmt.Fprintf(&b, "User Description: %s\n\n", input.Description)
	b.WriteString("If an image is provided, consider it in your analysis.\n")
	b.WriteString(`Output must follow the schema: { "possibleIssue": string, "estimatedCostRange": string, "urgency": "Low" | "Medium" | "High" }` + "\n")
	fmt.Fprintf(&b, "Please reply in %s for the text parts. Be specific to the %s brand if possible.", c.language, input.CarBrand)
	return b.String()
}

func diagnosisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"possibleIssue":      {Type: genai.TypeString},
			"estimatedCostRange": {Type: genai.TypeString},
			"urgency": {
				Type:        genai.TypeString,
				Description: "Must be one of: Low, Medium, High",
				Enum:        []string{"Low", "Medium", "High"},
			},
		},
		Required: []string{"possibleIssue", "estimatedCostRange", "urgency"},
	}
}

// inlineImage decodes a "data:<mime>;base64,<payload>" URI.
func inlineImage(imageURL string) (string, []byte, bool) {
	if !strings.HasPrefix(imageURL, "data:") {
		return "", nil, false
	}
	header, payload, ok := strings.Cut(strings.TrimPrefix(imageURL, "data:"), ",")
	if !ok || payload == "" || !strings.HasSuffix(header, ";base64") {
		return "", nil, false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}
	mimeType := strings.TrimSuffix(header, ";base64")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return mimeType, data, true
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	return strings.TrimSpace(strings.TrimSuffix(text, "```"))
}
