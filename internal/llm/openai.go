package llm

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIClient implements Provider against the OpenAI Chat Completions API.
type OpenAIClient struct {
	Model       string
	MaxTokens   int64
	Temperature float64

	client openai.Client
}

// NewOpenAI reads OPENAI_API_KEY from the environment and constructs the
// provider. A missing key fails here, before any network call.
func NewOpenAI(model string, maxTokens int64, temperature float64) (*OpenAIClient, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	return &OpenAIClient{
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		client:      openai.NewClient(option.WithAPIKey(key)),
	}, nil
}

// Name returns provider name.
func (c *OpenAIClient) Name() string { return "openai" }

// Generate issues one synchronous completion request and returns the
// trimmed text.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
		Model:       shared.ChatModel(c.Model),
		MaxTokens:   openai.Int(c.MaxTokens),
		Temperature: openai.Float(c.Temperature),
	})
	if err != nil {
		return "", &GenerationError{Provider: c.Name(), Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &GenerationError{Provider: c.Name(), Err: errors.New("empty completion")}
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
