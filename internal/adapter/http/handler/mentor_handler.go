package handler

import (
	"context"
	"net/http"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/domain"
)

// AdviceService defines the behavior needed to answer mentor questions.
type AdviceService interface {
	Advise(ctx context.Context, query string) (string, error)
}

// ConversationService defines the behavior needed to store the transcript.
type ConversationService interface {
	History(ctx context.Context) ([]domain.Message, error)
	Save(ctx context.Context, messages []domain.Message) ([]domain.Message, error)
}

// MentorHandler handles the financial mentor endpoints.
type MentorHandler struct {
	adviceUC       AdviceService
	conversationUC ConversationService
}

// NewMentorHandler creates a new MentorHandler.
func NewMentorHandler(adviceUC AdviceService, conversationUC ConversationService) *MentorHandler {
	return &MentorHandler{adviceUC: adviceUC, conversationUC: conversationUC}
}

// History returns the stored conversation.
func (h *MentorHandler) History(w http.ResponseWriter, r *http.Request) {
	messages, err := h.conversationUC.History(r.Context())
	if err != nil {
		writeDomainError(w, "failed to load conversation", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ConversationFromDomain(messages))
}

// Save replaces the stored conversation.
func (h *MentorHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveConversationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	messages, err := h.conversationUC.Save(r.Context(), req.ToDomain())
	if err != nil {
		writeDomainError(w, "failed to save conversation", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ConversationFromDomain(messages))
}

// Advice answers a question about the user's finances.
func (h *MentorHandler) Advice(w http.ResponseWriter, r *http.Request) {
	var req dto.AdviceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := domain.ValidateQuery(req.Query); err != nil {
		writeDomainError(w, "invalid query", err)
		return
	}

	advice, err := h.adviceUC.Advise(r.Context(), req.Query)
	if err != nil {
		writeDomainError(w, "failed to generate advice", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AdviceResponse{Advice: advice})
}
