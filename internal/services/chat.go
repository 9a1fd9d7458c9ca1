package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"keeneyes-backend/internal/catalog"
	"keeneyes-backend/internal/models"
	"keeneyes-backend/internal/session"
)

// MaxHistory caps the conversation window sent to the completion
// service; older turns are dropped.
const MaxHistory = 10

// Completer generates a reply for an ordered conversation.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage) (string, error)
}

// ChatService orchestrates one chat turn: session lookup, vehicle
// detection, prompt composition, the completion call, and the history
// update.
type ChatService struct {
	store     *session.Store
	catalog   *catalog.Catalog
	composer  *PromptComposer
	completer Completer
}

func NewChatService(store *session.Store, cat *catalog.Catalog, composer *PromptComposer, completer Completer) *ChatService {
	return &ChatService{
		store:     store,
		catalog:   cat,
		composer:  composer,
		completer: completer,
	}
}

// Ask handles one chat turn. Failures from the completion service come
// back as flagged answer text, never as an error: the widget renders
// whatever is in answer.
func (s *ChatService) Ask(ctx context.Context, q models.ChatQuery) models.ChatResponse {
	sessionID := q.SessionID
	if sessionID == "" {
		sessionID = "default"
	}
	role := models.ParseRole(q.Role)

	sess := s.store.GetOrCreate(sessionID)
	sess.Lock()
	defer sess.Unlock()

	if q.Query == "" {
		return answer("⚠️ I didn't receive a question.")
	}

	// Every incoming turn is recorded under the user role, including
	// widget-seeded greetings that declare themselves assistant.
	sess.History = append(sess.History, models.ChatMessage{Role: models.RoleUser, Content: q.Query})

	// Pre-seeded greeting: store it and skip the completion call.
	if role == models.RoleAssistant {
		return models.ChatResponse{Status: "greeting_saved"}
	}

	sess.TruncateHistory(MaxHistory)

	if info, ok := s.catalog.Detect(q.Query); ok {
		sess.Vehicle = &info
	}

	systemPrompt := s.composer.Compose(sess.Vehicle)
	messages := make([]models.ChatMessage, len(sess.History))
	copy(messages, sess.History)

	reply, err := s.completer.Complete(ctx, systemPrompt, messages)
	if err != nil {
		return answer(userFacingError(err))
	}

	reply = strings.TrimSpace(reply)
	sess.History = append(sess.History, models.ChatMessage{Role: models.RoleAssistant, Content: reply})

	return answer(reply)
}

func answer(text string) models.ChatResponse {
	return models.ChatResponse{Answer: &text}
}

func userFacingError(err error) string {
	var cerr *CompletionError
	if errors.As(err, &cerr) {
		switch cerr.Kind {
		case ErrAuth:
			return fmt.Sprintf("❌ The assistant could not authenticate with its provider: %v", cerr.Err)
		case ErrMalformed:
			return fmt.Sprintf("❌ The assistant returned an unusable reply: %v", cerr.Err)
		}
	}
	return fmt.Sprintf("❌ Assistant error: %v", err)
}
