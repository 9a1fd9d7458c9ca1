package services

import (
	"fmt"
	"strings"

	"keeneyes-backend/internal/models"
)

// PromptComposer builds the system instruction for every completion call:
// a fixed policy preamble, the knowledge base text, and (when the session
// has one) a one-line vehicle context note.
type PromptComposer struct {
	kbText       string
	supportPhone string
}

func NewPromptComposer(kbText, supportPhone string) *PromptComposer {
	return &PromptComposer{
		kbText:       kbText,
		supportPhone: supportPhone,
	}
}

// Compose returns the full system prompt. The business rules are
// instructions to the model, not constraints enforced in code.
func (p *PromptComposer) Compose(vehicle *models.VehicleInfo) string {
	var b strings.Builder

	b.WriteString("You are working as Help Center AI Assistance for Keen Eyes Detailing.\n")
	b.WriteString("Behave politely, be versatile, and don't let users know you are AI.\n")
	b.WriteString("Use the following knowledge base to answer questions:\n\n")
	b.WriteString(p.kbText)
	b.WriteString("\n\nFollow these rules at ALL times:\n")
	b.WriteString("1. NEVER provide pricing without first asking the vehicle make, model, and variant.\n")
	b.WriteString("2. Use the vehicle size reference to map the vehicle to a category.\n")
	b.WriteString("3. Then use the packages reference to return the correct package and pricing.\n")
	b.WriteString("4. If the user refuses to give their vehicle make/model, always assume a Sedan (small car) and provide the Sedan pricing.\n")
	b.WriteString("5. If asked for \"general pricing\", ONLY mention Sedan base pricing, not full packages.\n")
	if p.supportPhone != "" {
		fmt.Fprintf(&b, "6. If the question is outside detailing, politely redirect the customer to our support line at %s.\n", p.supportPhone)
	} else {
		b.WriteString("6. If the question is outside detailing, politely redirect the customer to our support phone number.\n")
	}

	if vehicle != nil {
		fmt.Fprintf(&b, "\nThe user's vehicle is %s (%s).", vehicle.MakeModel, vehicle.Size)
	}

	return b.String()
}
