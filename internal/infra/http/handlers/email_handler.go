package handlers

import (
	"context"
	"net/http"

	"github.com/Abidimam7/leadgen/internal/usecase"
)

type EmailGenerator interface {
	Execute(ctx context.Context, input usecase.GenerateEmailsInput) (*usecase.GenerateEmailsOutput, error)
}

type EmailHandler struct {
	uc EmailGenerator
}

func NewEmailHandler(uc EmailGenerator) *EmailHandler {
	return &EmailHandler{uc: uc}
}

func (h *EmailHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerateEmailsInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.uc.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
