package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/teilomillet/gollm"
)

const structureInstruction = "Extract the LinkedIn profile information into a structured format."

// Structurer turns raw profile page text into a structured Profile using an
// LLM. Retries are disabled; callers own retry policy.
type Structurer struct {
	llm      gollm.LLM
	generate func(ctx context.Context, prompt *gollm.Prompt) (string, error)
}

// NewStructurer creates a Structurer backed by the given OpenAI model.
func NewStructurer(apiKey, model string) (*Structurer, error) {
	llm, err := gollm.NewLLM(
		gollm.SetProvider("openai"),
		gollm.SetModel(model),
		gollm.SetAPIKey(apiKey),
		gollm.SetMaxRetries(0),
		gollm.SetLogLevel(gollm.LogLevelWarn),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create structuring LLM: %w", err)
	}
	s := &Structurer{llm: llm}
	s.generate = func(ctx context.Context, prompt *gollm.Prompt) (string, error) {
		return s.llm.Generate(ctx, prompt)
	}
	return s, nil
}

// Structure asks the model for JSON matching the Profile schema and decodes
// the reply.
func (s *Structurer) Structure(ctx context.Context, rawText string) (*Profile, error) {
	schemaJSON, _ := json.MarshalIndent(profileSchema(), "", "  ")
	system := fmt.Sprintf(
		"%s\nYou must respond with valid JSON matching this schema:\n```json\n%s\n```\nRespond ONLY with the JSON object, no other text.",
		structureInstruction, schemaJSON,
	)
	prompt := gollm.NewPrompt(rawText,
		gollm.WithSystemPrompt(system, gollm.CacheTypeEphemeral),
	)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("profile structuring failed: %w", err)
	}

	var p Profile
	if err := json.Unmarshal([]byte(stripJSONFence(text)), &p); err != nil {
		return nil, fmt.Errorf("model returned invalid profile JSON: %w", err)
	}
	return &p, nil
}

// stripJSONFence removes a surrounding markdown code fence, which models
// emit even when told not to.
func stripJSONFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func profileSchema() map[string]interface{} {
	stringList := map[string]interface{}{
		"type":  "array",
		"items": map[string]interface{}{"type": "string"},
	}
	objectList := func(props map[string]interface{}, required []string) map[string]interface{} {
		return map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":       "object",
				"properties": props,
				"required":   required,
			},
		}
	}
	str := map[string]interface{}{"type": "string"}

	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name":     str,
			"headline": str,
			"location": str,
			"about":    str,
			"experience": objectList(map[string]interface{}{
				"title":       str,
				"company":     str,
				"duration":    str,
				"description": str,
			}, []string{"title", "company", "duration"}),
			"education": objectList(map[string]interface{}{
				"school": str,
				"degree": str,
				"field":  str,
				"years":  str,
			}, []string{"school", "degree"}),
			"skills":    stringList,
			"languages": stringList,
			"certifications": objectList(map[string]interface{}{
				"name":   str,
				"issuer": str,
				"date":   str,
			}, []string{"name", "issuer"}),
			"volunteer": objectList(map[string]interface{}{
				"organization": str,
				"role":         str,
				"duration":     str,
			}, []string{"organization", "role"}),
			"recommendations": objectList(map[string]interface{}{
				"author":       str,
				"relationship": str,
				"text":         str,
			}, []string{"author", "relationship", "text"}),
		},
		"required": []string{"name", "headline", "location", "about", "experience", "education", "skills"},
	}
}
