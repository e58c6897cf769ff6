package advice

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/logging"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/ports"
)

// chatClient is the slice of the OpenAI client the generator uses.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGenerator answers free-form questions through the OpenAI chat
// API, one persona per advisor category.
type OpenAIGenerator struct {
	client chatClient
	model  string
	logger *slog.Logger
}

var _ ports.AdviceGenerator = (*OpenAIGenerator)(nil)

// GeneratorOption configures an OpenAIGenerator.
type GeneratorOption func(*OpenAIGenerator)

// WithModel overrides the chat model.
func WithModel(model string) GeneratorOption {
	return func(g *OpenAIGenerator) {
		g.model = model
	}
}

// WithGeneratorLogger sets the logger.
func WithGeneratorLogger(logger *slog.Logger) GeneratorOption {
	return func(g *OpenAIGenerator) {
		g.logger = logger
	}
}

// withClient swaps the API client, for tests.
func withClient(client chatClient) GeneratorOption {
	return func(g *OpenAIGenerator) {
		g.client = client
	}
}

// NewOpenAIGenerator builds a generator talking to the OpenAI API.
func NewOpenAIGenerator(apiKey string, opts ...GeneratorOption) *OpenAIGenerator {
	g := &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate answers one advice request. Failures come back as a
// GenerationError; the caller decides how to degrade.
func (g *OpenAIGenerator) Generate(ctx context.Context, req *domain.AdviceRequest) (*domain.Advice, error) {
	tpl := Prompt(req.Category, language(req))

	system := tpl.System
	if hints := contextHints(req.Context); hints != "" {
		system = system + "\n\nUser context:\n" + hints
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: req.Question},
		},
	})
	if err != nil {
		g.logger.Error("chat completion failed", "category", req.Category, "err", err)
		return nil, &domain.GenerationError{Goal: string(req.Category), Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &domain.GenerationError{Goal: string(req.Category), Err: fmt.Errorf("empty completion response")}
	}

	choice := resp.Choices[0]
	confidence := 0.9
	if choice.FinishReason != openai.FinishReasonStop {
		confidence = 0.6
	}

	return &domain.Advice{
		Answer:     choice.Message.Content,
		Confidence: confidence,
		Disclaimer: tpl.Disclaimer,
	}, nil
}

func language(req *domain.AdviceRequest) string {
	if req.Language != "" {
		return req.Language
	}
	return DefaultLanguage
}

// contextHints flattens the accumulated context into stable, readable
// lines for the system prompt. Nested values are skipped.
func contextHints(ctx map[string]any) string {
	if len(ctx) == 0 {
		return ""
	}
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		switch v := ctx[k].(type) {
		case string:
			fmt.Fprintf(&b, "- %s: %s\n", k, v)
		case float64, int, bool:
			fmt.Fprintf(&b, "- %s: %v\n", k, v)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
