// Package tools holds the static tool catalog advertised to the model.
package tools

import "github.com/profilescribe/profilescribe/chat"

// ExtractToolName is the function the assistant calls to start a profile
// extraction.
const ExtractToolName = "linkedin_highlight_and_extract"

// Catalog returns the fixed set of callable tool definitions. The catalog
// is passed unchanged on every chat completion request.
func Catalog() []chat.ToolDef {
	return []chat.ToolDef{
		{
			Name:        ExtractToolName,
			Description: "Extract and convert a LinkedIn profile to markdown and docx formats. Call this when the user wants to extract their LinkedIn profile.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"email": map[string]interface{}{
						"type":        "string",
						"description": "LinkedIn login email/username",
					},
					"password": map[string]interface{}{
						"type":        "string",
						"description": "LinkedIn password (will be handled securely)",
					},
					"profile_url": map[string]interface{}{
						"type":        "string",
						"description": "Full URL of the LinkedIn profile to extract (e.g., https://www.linkedin.com/in/username)",
					},
				},
				"required":             []string{"email", "password", "profile_url"},
				"additionalProperties": false,
			},
			Strict: true,
		},
	}
}

// ExtractArgs is the decoded argument payload of an ExtractToolName call.
type ExtractArgs struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	ProfileURL string `json:"profile_url"`
}
