package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/profilescribe/profilescribe/chat"
	"github.com/profilescribe/profilescribe/profile"
	"github.com/profilescribe/profilescribe/tools"
)

// handleChat runs a chat exchange with tool-calling support.
func (s *Server) handleChat(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	resp, err := s.runConversation(c.Request.Context(), req.Messages)
	if err != nil {
		log.Printf("chat error: %v", err)
		status, detail := chatErrorStatus(err)
		c.JSON(status, gin.H{"detail": detail})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// runConversation performs one completion and, when the assistant requests
// tool calls, executes each sequentially, feeds the result back as a tool
// message, and completes again. The final assistant message is returned.
func (s *Server) runConversation(ctx context.Context, messages []chat.Message) (chat.Response, error) {
	resp, err := s.chat.GetChatCompletion(ctx, messages)
	if err != nil {
		return chat.Response{}, err
	}
	if !resp.RequiresTool {
		return resp, nil
	}

	history := append([]chat.Message(nil), messages...)
	assistant := resp.Message
	history = append(history, assistant)

	final := resp
	for _, tc := range assistant.ToolCalls {
		result, err := s.executeToolCall(ctx, tc)
		if err != nil {
			return chat.Response{}, &chat.ChatError{Message: "tool call failed", Cause: err}
		}

		history = append(history, chat.ToolResultMessage(tc.ID, tc.Name, result))
		completion, err := s.chat.GetChatCompletion(ctx, history)
		if err != nil {
			return chat.Response{}, err
		}
		history = append(history, completion.Message)
		final = completion
	}

	final.RequiresTool = false
	return final, nil
}

// executeToolCall dispatches one tool call and returns its serialized result.
func (s *Server) executeToolCall(ctx context.Context, tc chat.ToolCall) (string, error) {
	switch tc.Name {
	case tools.ExtractToolName:
		var args tools.ExtractArgs
		if err := json.Unmarshal(tc.Arguments, &args); err != nil {
			return "", fmt.Errorf("invalid tool arguments: %w", err)
		}
		p, err := s.extractor.Extract(ctx, args.Email, args.Password, args.ProfileURL)
		if err != nil {
			return "", err
		}
		data, err := json.Marshal(p)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown tool: %s", tc.Name)
	}
}

// chatErrorStatus maps the chat error taxonomy onto HTTP status codes.
func chatErrorStatus(err error) (int, string) {
	var notAvail *chat.ModelNotAvailableError
	if errors.As(err, &notAvail) {
		return http.StatusServiceUnavailable, err.Error()
	}
	var conn *chat.ConnectionError
	if errors.As(err, &conn) {
		return http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again later."
	}
	var rate *chat.RateLimitError
	if errors.As(err, &rate) {
		return http.StatusTooManyRequests, "Rate limit exceeded. Please try again later."
	}
	var chatErr *chat.ChatError
	if errors.As(err, &chatErr) {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusInternalServerError, "An unexpected error occurred"
}

// handleTestCompletion verifies the completion path without any tools.
func (s *Server) handleTestCompletion(c *gin.Context) {
	messages := []chat.Message{
		chat.DeveloperMessage("You are a helpful assistant."),
		chat.UserMessage("Say 'Hello, testing!' if you can hear me."),
	}

	resp, err := s.chat.GetChatCompletion(c.Request.Context(), messages)
	if err != nil {
		log.Printf("test completion error: %v", err)
		_, detail := chatErrorStatus(err)
		c.JSON(http.StatusOK, gin.H{
			"status":    "error",
			"error":     detail,
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"model":     s.chat.Model(),
		"response":  resp.Message.Content,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleHealth reports basic readiness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"api_key_configured": s.settings.OpenAIAPIKey != "",
		"model":              s.settings.OpenAIModel,
		"timestamp":          time.Now().Format(time.RFC3339),
	})
}

// handleProfile returns the latest rendered profile HTML.
func (s *Server) handleProfile(c *gin.Context) {
	path := filepath.Join(s.settings.OutputDir, profile.HTMLFile)
	content, err := os.ReadFile(path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "No profile has been generated yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": string(content)})
}

// handleProfileDownload serves the rendered markdown as a download.
func (s *Server) handleProfileDownload(c *gin.Context) {
	path := filepath.Join(s.settings.OutputDir, profile.MarkdownFile)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "No profile document has been generated yet"})
		return
	}
	c.FileAttachment(path, "profile.md")
}
