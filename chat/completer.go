package chat

import (
	"context"
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"
)

// Completer issues chat completion requests against the OpenAI Chat
// Completions API with a fixed model and tool catalog. The catalog and
// preamble are bound at construction and sent unchanged on every request.
type Completer struct {
	client *openai.Client
	model  string
	tools  []openai.Tool
}

// NewCompleter creates a Completer authenticated with the given API key.
func NewCompleter(apiKey, model string, catalog []ToolDef) *Completer {
	return NewCompleterWithConfig(openai.DefaultConfig(apiKey), model, catalog)
}

// NewCompleterWithConfig creates a Completer from a prebuilt client config,
// for OpenAI-compatible endpoints and tests.
func NewCompleterWithConfig(cfg openai.ClientConfig, model string, catalog []ToolDef) *Completer {
	return &Completer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		tools:  catalogTools(catalog),
	}
}

// Model returns the configured model identifier.
func (c *Completer) Model() string {
	return c.model
}

// GetChatCompletion sends exactly one completion request carrying the
// developer preamble, the caller's messages, the full tool catalog, and a
// tool choice of "auto", then translates the top response choice back into
// the application's message model. Failures are classified into the closed
// error taxonomy; nothing is retried.
func (c *Completer) GetChatCompletion(ctx context.Context, messages []Message) (Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:      c.model,
		Messages:   buildPayload(messages),
		Tools:      c.tools,
		ToolChoice: "auto",
	})
	if err != nil {
		return Response{}, classifyProviderError(c.model, err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, &ChatError{Message: "completion response contained no choices"}
	}

	msg := resp.Choices[0].Message
	toolCalls := make([]ToolCall, 0, len(msg.ToolCalls))
	for _, tc := range msg.ToolCalls {
		toolCalls = append(toolCalls, ToolCall{
			ID:        tc.ID,
			Type:      string(tc.Type),
			Name:      tc.Function.Name,
			Arguments: json.RawMessage(tc.Function.Arguments),
		})
	}

	return Response{
		Message: Message{
			Role:      RoleAssistant,
			Content:   msg.Content,
			ToolCalls: toolCalls,
		},
		RequiresTool: len(toolCalls) > 0,
	}, nil
}

// buildPayload converts the conversation into provider format. The preamble
// is always the first entry; caller messages follow in order with their
// tool-call fields carried through verbatim.
func buildPayload(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	out = append(out, openai.ChatCompletionMessage{
		Role:    string(RoleDeveloper),
		Content: Preamble,
	})
	for _, m := range messages {
		cm := openai.ChatCompletionMessage{
			Role:       string(m.Role),
			Content:    m.Content,
			Name:       m.Name,
			ToolCallID: m.ToolCallID,
		}
		for _, tc := range m.ToolCalls {
			cm.ToolCalls = append(cm.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: string(tc.Arguments),
				},
			})
		}
		out = append(out, cm)
	}
	return out
}

// catalogTools converts the static tool catalog into SDK tool definitions.
func catalogTools(defs []ToolDef) []openai.Tool {
	out := make([]openai.Tool, len(defs))
	for i, d := range defs {
		out[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        d.Name,
				Description: d.Description,
				Strict:      d.Strict,
				Parameters:  d.Parameters,
			},
		}
	}
	return out
}
