package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"keeneyes-backend/internal/models"
)

type chatService interface {
	Ask(ctx context.Context, q models.ChatQuery) models.ChatResponse
}

type ChatHandler struct {
	chat chatService
}

func NewChatHandler(chat chatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat handles POST /chat. Downstream failures still answer with HTTP
// 200; the error detail travels inside the answer text so the widget can
// render it like any other reply.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatQuery
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	log.Printf("chat request: session=%q role=%q len=%d", req.SessionID, req.Role, len(req.Query))

	resp := h.chat.Ask(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}
