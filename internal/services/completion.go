package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"keeneyes-backend/internal/models"
)

const completionModel = "gemini-2.0-flash"

// Low temperature keeps replies close to the knowledge base and the
// policy rules instead of improvising.
const completionTemperature = 0.2

// CompletionErrKind classifies a failed completion call so callers can
// show a distinct user-facing message per failure class.
type CompletionErrKind int

const (
	ErrTransport CompletionErrKind = iota
	ErrAuth
	ErrMalformed
)

type CompletionError struct {
	Kind CompletionErrKind
	Err  error
}

func (e *CompletionError) Error() string { return e.Err.Error() }
func (e *CompletionError) Unwrap() error { return e.Err }

// CompletionService generates assistant replies via the Gemini API.
type CompletionService struct {
	client   *genai.Client
	rateChan chan struct{} // Token bucket
}

func NewCompletionService(ctx context.Context, apiKey string, concurrentReqs int) (*CompletionService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Token bucket for limiting concurrent upstream calls
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &CompletionService{
		client:   client,
		rateChan: rateChan,
	}, nil
}

func (s *CompletionService) Close() {
	s.client.Close()
}

// acquireRate blocks until a rate slot is available
func (s *CompletionService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *CompletionService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Complete sends the conversation to Gemini and returns the generated
// reply. messages must end with the turn being answered; earlier turns
// are sent as chat history.
func (s *CompletionService) Complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", &CompletionError{Kind: ErrMalformed, Err: errors.New("no messages to send")}
	}

	if err := s.acquireRate(ctx); err != nil {
		return "", &CompletionError{Kind: ErrTransport, Err: err}
	}
	defer s.releaseRate()

	// A fresh model per call: SystemInstruction is per-conversation
	// state and the service is shared across requests.
	model := s.client.GenerativeModel(completionModel)
	model.SetTemperature(completionTemperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	last := messages[len(messages)-1]
	history := make([]*genai.Content, 0, len(messages)-1)
	for _, m := range messages[:len(messages)-1] {
		history = append(history, &genai.Content{
			Role:  geminiRole(m.Role),
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	chat := model.StartChat()
	chat.History = history

	resp, err := chat.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", classifyCompletionError(err)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", &CompletionError{Kind: ErrMalformed, Err: errors.New("completion response contained no text")}
	}

	return text, nil
}

func geminiRole(r models.Role) string {
	if r == models.RoleAssistant {
		return "model"
	}
	return "user"
}

func classifyCompletionError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return &CompletionError{Kind: ErrAuth, Err: err}
		}
	}
	return &CompletionError{Kind: ErrTransport, Err: err}
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
