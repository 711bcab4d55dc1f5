package handlers

import (
	"context"
	"net/http"

	"github.com/Abidimam7/leadgen/internal/infra/http/middleware"
	"github.com/Abidimam7/leadgen/internal/usecase"
)

type ChatExecutor interface {
	Execute(ctx context.Context, input usecase.ChatInput) (*usecase.ChatOutput, error)
}

type ChatHandler struct {
	uc ChatExecutor
}

func NewChatHandler(uc ChatExecutor) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Samples serves the fixed example leads.
func (h *ChatHandler) Samples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"leads": usecase.SampleLeads()})
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var input usecase.ChatInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.uc.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if out.Leads != nil {
		middleware.RecordParseStage(string(out.Leads.Stage))
	}
	writeJSON(w, http.StatusOK, out)
}
