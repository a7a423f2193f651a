package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"carousel/internal/core"
)

const (
	// DefaultModel is the default Gemini model used for content expansion.
	DefaultModel = "gemini-flash-lite-latest"

	// expandPromptTemplate instructs the model to behave like the local
	// template expander: fill out terse lines, keep one idea per block.
	expandPromptTemplate = `Rewrite the following notes into fuller statements for a %s-tone social media carousel targeting %s.
Keep one idea per block, separate blocks with a blank line, and do not add headings, numbering, or commentary.

Notes:
%s`
)

// Client wraps the Gemini API for the optional remote expansion path. It
// satisfies the expander's remote backend interface.
type Client struct {
	gClient   *genai.Client
	modelName string
}

// NewClient creates a Gemini-backed expansion client. The API key is
// required; the model name falls back to DefaultModel.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	gClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{gClient: gClient, modelName: modelName}, nil
}

// ExpandContent asks the model to rewrite terse input into fuller prose.
// Callers fall back to local template expansion when this returns an error.
func (c *Client) ExpandContent(ctx context.Context, input string, tone core.Tone, platform core.Platform) (string, error) {
	model := c.gClient.GenerativeModel(c.modelName)
	prompt := fmt.Sprintf(expandPromptTemplate, tone, platform, input)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini expansion failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.gClient.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String())
}
