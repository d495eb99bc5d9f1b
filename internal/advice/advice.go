package advice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/misterclayt0n/wendler/internal/logger"
	"github.com/misterclayt0n/wendler/internal/wendler"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	ErrNoAPIKey      = errors.New("OPENAI_API_KEY not set")
	ErrEmptyResponse = errors.New("empty response from model")
)

// Advisor turns recent training history into a training max recommendation.
type Advisor interface {
	Recommend(ctx context.Context, req wendler.AdviceRequest) (string, error)
}

type Client struct {
	client openai.Client
	model  openai.ChatModel
	log    *logger.Logger
}

// New returns a client for model (gpt-4o when empty). Extra request options
// are passed to the OpenAI client, e.g. a different base URL.
func New(apiKey, model string, log *logger.Logger, opts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	chatModel := openai.ChatModel(model)
	if model == "" {
		chatModel = openai.ChatModelGPT4o
	}
	if log == nil {
		log = logger.Nop()
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{
		client: openai.NewClient(opts...),
		model:  chatModel,
		log:    log.With("component", "advice"),
	}, nil
}

const systemPrompt = `You are an expert in the Wendler 5/3/1 training program.

You will analyze the user's workout history and provide a recommendation for weight adjustments in the next cycle.

Consider the following:

- If the user consistently failed to hit the target reps, recommend reducing the weight.
- If the user consistently exceeded the target reps, recommend increasing the weight.
- If the user was able to hit the target reps, recommend a standard weight increase.
- If there is not enough workout history, recommend continuing with the same weight.`

var userPrompt = template.Must(template.New("advice").Parse(`Workout History: {{.WorkoutHistory}}

Current Max: {{.CurrentMax}}

Exercise: {{.Exercise}}

Based on this information, what adjustment to the training max do you recommend? Explain your reasoning.`))

// Prompt renders the user message for req.
func Prompt(req wendler.AdviceRequest) (string, error) {
	var sb strings.Builder
	data := struct {
		WorkoutHistory string
		CurrentMax     string
		Exercise       string
	}{req.WorkoutHistory, wendler.FormatNumber(req.CurrentMax), req.Exercise}
	if err := userPrompt.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (c *Client) Recommend(ctx context.Context, req wendler.AdviceRequest) (string, error) {
	prompt, err := Prompt(req)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	c.log.Debug("requesting advice", "exercise", req.Exercise, "model", c.model)

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Model: c.model,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}

	c.log.Debug("advice received",
		"prompt_tokens", completion.Usage.PromptTokens,
		"completion_tokens", completion.Usage.CompletionTokens)
	return content, nil
}
