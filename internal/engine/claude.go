package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/seamlessly/outreach-cli/pkg/anthropic"
)

// ClaudeGenerator produces pitch content with the Anthropic API.
type ClaudeGenerator struct {
	client anthropic.Client
	model  string
}

// NewClaudeGenerator creates a generator around an Anthropic client.
func NewClaudeGenerator(client anthropic.Client, model string) *ClaudeGenerator {
	if model == "" {
		model = anthropic.DefaultModel
	}
	return &ClaudeGenerator{client: client, model: model}
}

// Generate asks the model for a speaker pitch and parses the JSON reply.
func (g *ClaudeGenerator) Generate(ctx context.Context, req PitchRequest) (*Pitch, error) {
	prompt := fmt.Sprintf(
		"Write a short speaker pitch email (2-3 paragraphs, under 200 words). "+
			"Event: %s (%s). Organizer: %s. Audience: %s. "+
			"Sign off as Seamlessly founder. "+
			`Return ONLY valid JSON: {"subject":"...","body":"...","topic":"..."}`,
		req.EventName, req.EventType, req.OrganizerName, req.AudienceType,
	)

	resp, err := g.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     g.model,
		MaxTokens: 1024,
		Messages:  []anthropic.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, eris.Wrap(err, "claude: generate pitch")
	}

	var pitch Pitch
	payload := struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
		Topic   string `json:"topic"`
	}{}
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Text())), &payload); err != nil {
		return nil, eris.Wrap(err, "claude: parse pitch JSON")
	}
	pitch.Subject = payload.Subject
	pitch.Body = payload.Body
	pitch.Topic = payload.Topic
	return &pitch, nil
}

// ConnectionNote asks the model for a short LinkedIn connection note.
func (g *ClaudeGenerator) ConnectionNote(ctx context.Context, name, organization string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a LinkedIn connection request note (under 300 characters, no hashtags) "+
			"to %s at %s from the founder of a hospitality technology company. "+
			"Return only the note text.",
		name, organization,
	)

	resp, err := g.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     g.model,
		MaxTokens: 256,
		Messages:  []anthropic.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", eris.Wrap(err, "claude: generate connection note")
	}
	return strings.TrimSpace(resp.Text()), nil
}

// stripCodeFence removes a surrounding markdown code fence from model
// output. Models sometimes wrap JSON despite being told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
