package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Abidimam7/leadgen/internal/leadparse"
	"github.com/Abidimam7/leadgen/internal/logger"
	"go.uber.org/zap"
)

type ChatUseCase struct {
	Completion CompletionClient
	Parser     LeadParser
}

func NewChatUseCase(completion CompletionClient, parser LeadParser) *ChatUseCase {
	if parser == nil {
		parser = leadparse.New(nil)
	}
	return &ChatUseCase{Completion: completion, Parser: parser}
}

// SampleLeads is served to clients that have not generated anything yet.
func SampleLeads() []leadparse.LeadCandidate {
	return []leadparse.LeadCandidate{
		{CompanyName: "Tech Solutions Ltd", Address: "123 Silicon Valley", Email: "contact@techsol.com", Phone: "123-456-7890"},
		{CompanyName: "Green Energy Inc.", Address: "456 Eco Street", Email: "info@greenenergy.com", Phone: "987-654-3210"},
	}
}

// Execute generates leads from active_lead when present, otherwise it
// replies to user_input as a plain conversation turn.
func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	log := logger.FromContext(ctx)

	if err := ValidateChatInput(input); err != nil {
		return nil, err
	}
	convo := objectOrEmpty(input.Context)

	if hasValue(input.ActiveLead) {
		prompt, err := buildLeadPrompt(supplierInfo(input.ActiveLead))
		if err != nil {
			return nil, err
		}

		text, err := uc.Completion.Complete(ctx, prompt)
		if err != nil {
			log.Error("lead generation failed", zap.Error(err))
			return nil, &UpstreamError{Service: ServiceCompletion, Message: "Failed to generate response", Err: err}
		}

		result := uc.Parser.Parse(text)
		log.Info("leads generated",
			zap.String("stage", string(result.Stage)),
			zap.Int("count", len(result.Leads)),
		)
		return &ChatOutput{Leads: &result, Context: convo}, nil
	}

	text, err := uc.Completion.Complete(ctx, strings.TrimSpace(input.UserInput))
	if err != nil {
		log.Error("chat completion failed", zap.Error(err))
		return nil, &UpstreamError{Service: ServiceCompletion, Message: "Failed to generate response", Err: err}
	}
	return &ChatOutput{Message: &text, Context: convo}, nil
}

// supplierInfo renders active_lead for the prompt. A JSON string is used
// unquoted; anything else is embedded as compact JSON.
func supplierInfo(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
