package engine

import (
	"context"
	"fmt"
)

// TemplateGenerator is the deterministic offline fallback used when no
// generation credential is configured. Same input, same pitch, every time.
type TemplateGenerator struct{}

// Generate returns the stock speaker pitch for the event.
func (TemplateGenerator) Generate(_ context.Context, req PitchRequest) (*Pitch, error) {
	greeting := req.OrganizerName
	if greeting == "" {
		greeting = "there"
	}
	return &Pitch{
		Subject: fmt.Sprintf("Speaking opportunity: %s", req.EventName),
		Body: fmt.Sprintf("Hi %s,\n\nI'd love to explore speaking at %s. Our team has delivered keynotes on hospitality technology and guest experience at similar events.\n\nWould you be open to a short call?\n\nBest regards",
			greeting, req.EventName),
		Topic: "Hospitality Technology & Guest Experience",
	}, nil
}

// ConnectionNote returns the stock LinkedIn connection note.
func (TemplateGenerator) ConnectionNote(_ context.Context, name, organization string) (string, error) {
	if name == "" {
		name = "there"
	}
	if organization == "" {
		return fmt.Sprintf("Hi %s, I came across your work and would value connecting.", name), nil
	}
	return fmt.Sprintf("Hi %s, I noticed your work at %s and would value connecting.", name, organization), nil
}
