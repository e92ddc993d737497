// Package chat adapts the application's conversation model to the OpenAI
// Chat Completions API.
package chat

import "encoding/json"

// Role identifies who produced a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleDeveloper Role = "developer"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is a model-initiated request to invoke a named function. The
// arguments payload is opaque to the adapter and passed through unchanged.
type ToolCall struct {
	ID        string          `json:"id"`
	Type      string          `json:"type,omitempty"` // "function"
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Message is the application-internal chat message. A tool-result message
// carries both ToolCallID and Name; an assistant message that requested
// tool execution carries ToolCalls. Messages are immutable once built.
type Message struct {
	Role       Role       `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// DeveloperMessage creates a developer-role Message.
func DeveloperMessage(text string) Message {
	return Message{Role: RoleDeveloper, Content: text}
}

// UserMessage creates a user Message.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// AssistantMessage creates an assistant Message with text content.
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}

// ToolResultMessage creates a tool-role Message carrying the serialized
// result of an executed tool call.
func ToolResultMessage(toolCallID, name, content string) Message {
	return Message{
		Role:       RoleTool,
		Content:    content,
		ToolCallID: toolCallID,
		Name:       name,
	}
}

// ToolDef describes one entry of the static tool catalog advertised to the
// provider on every request.
type ToolDef struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"` // JSON Schema
	Strict      bool                   `json:"strict,omitempty"`
}

// Request is the inbound shape of a chat exchange: the full conversation
// history in order.
type Request struct {
	Messages []Message `json:"messages"`
}

// Response is the terminal output of one completion: the assistant message
// and whether it asked the caller to execute tools.
type Response struct {
	Message      Message                `json:"message"`
	ProfileData  map[string]interface{} `json:"profile_data,omitempty"`
	RequiresTool bool                   `json:"requires_tool"`
}
