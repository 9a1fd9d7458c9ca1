package services

import (
	"strings"
	"testing"

	"keeneyes-backend/internal/models"
)

func TestCompose_ContainsKnowledgeBaseAndRules(t *testing.T) {
	composer := NewPromptComposer("Gold wash: $120", "+1 555 0123")

	prompt := composer.Compose(nil)

	if !strings.Contains(prompt, "Keen Eyes Detailing") {
		t.Error("Expected business identity in prompt")
	}
	if !strings.Contains(prompt, "Gold wash: $120") {
		t.Error("Expected knowledge base text in prompt")
	}
	if !strings.Contains(prompt, "NEVER provide pricing") {
		t.Error("Expected pricing rule in prompt")
	}
	if !strings.Contains(prompt, "+1 555 0123") {
		t.Error("Expected support phone in redirect rule")
	}
	if strings.Contains(prompt, "The user's vehicle is") {
		t.Error("Vehicle note must be omitted when no vehicle is known")
	}
}

func TestCompose_VehicleNote(t *testing.T) {
	composer := NewPromptComposer("kb text", "")

	prompt := composer.Compose(&models.VehicleInfo{MakeModel: "Honda Civic", Size: "Sedan"})

	if !strings.Contains(prompt, "The user's vehicle is Honda Civic (Sedan).") {
		t.Errorf("Expected vehicle context note, got:\n%s", prompt)
	}
}

func TestCompose_GenericRedirectWithoutPhone(t *testing.T) {
	composer := NewPromptComposer("kb text", "")

	prompt := composer.Compose(nil)

	if !strings.Contains(prompt, "support phone number") {
		t.Error("Expected generic redirect wording when no support phone is configured")
	}
}
