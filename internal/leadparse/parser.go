// Package leadparse turns free-text completions into lead candidates.
//
// Completions are tried against an ordered list of strategies; the first one
// that yields leads wins. When none does, the result carries a failure marker
// instead of an error.
package leadparse

import (
	"encoding/json"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// FailureMessage is reported in the sentinel when no strategy matched.
const FailureMessage = "Failed to extract leads from AI response"

// Stage names which strategy produced a Result.
type Stage string

const (
	StageJSON      Stage = "json"
	StageEmbedded  Stage = "embedded_json"
	StageTextBlock Stage = "text_blocks"
	StageFailed    Stage = "failed"
)

// LeadCandidate is the shape produced by the text block stage and the fixed samples.
type LeadCandidate struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// Failure is the sentinel returned in place of leads.
type Failure struct {
	Error       string `json:"error"`
	RawResponse string `json:"raw_response"`
}

// Result is either a list of leads or a Failure, never both. Leads hold the
// array elements exactly as the completion wrote them.
type Result struct {
	Leads   []json.RawMessage
	Failure *Failure
	Stage   Stage
}

func (r Result) Failed() bool {
	return r.Failure != nil
}

// MarshalJSON encodes leads as an array, and a failure as a one-element array
// holding the sentinel object.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failure != nil {
		return json.Marshal([]*Failure{r.Failure})
	}
	if r.Leads == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Leads)
}

// Strategy attempts to extract leads from raw text. ok=false hands over to the next one.
type Strategy struct {
	Stage Stage
	Parse func(raw string) (leads []json.RawMessage, ok bool, err error)
}

var (
	embeddedArray = regexp.MustCompile(`(?s)(\[.*\])`)
	textBlock     = regexp.MustCompile(`(?s)Company:\s*(.*?)\nAddress:\s*(.*?)\nEmail:\s*(.*?)\nPhone:\s*(.*?)\n`)
)

// DefaultStrategies is the chain used by ParseLeads.
var DefaultStrategies = []Strategy{
	{Stage: StageJSON, Parse: parseWhole},
	{Stage: StageEmbedded, Parse: parseEmbedded},
	{Stage: StageTextBlock, Parse: parseTextBlocks},
}

type Parser struct {
	strategies []Strategy
	log        *zap.Logger
}

func New(log *zap.Logger, strategies ...Strategy) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	if len(strategies) == 0 {
		strategies = DefaultStrategies
	}
	return &Parser{strategies: strategies, log: log}
}

// ParseLeads runs the default chain without logging.
func ParseLeads(raw string) Result {
	return New(nil).Parse(raw)
}

func (p *Parser) Parse(raw string) Result {
	for _, s := range p.strategies {
		leads, ok, err := s.Parse(raw)
		if ok {
			return Result{Leads: leads, Stage: s.Stage}
		}
		p.log.Warn("lead extraction stage failed",
			zap.String("stage", string(s.Stage)),
			zap.Error(err),
			zap.String("excerpt", excerpt(raw, 200)),
		)
	}

	return Result{
		Failure: &Failure{Error: FailureMessage, RawResponse: raw},
		Stage:   StageFailed,
	}
}

func parseWhole(raw string) ([]json.RawMessage, bool, error) {
	var leads []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &leads); err != nil {
		return nil, false, err
	}
	if leads == nil {
		// "null" decodes without error but is not an array
		return nil, false, errNotArray
	}
	return leads, true, nil
}

func parseEmbedded(raw string) ([]json.RawMessage, bool, error) {
	m := embeddedArray.FindStringSubmatch(raw)
	if m == nil {
		return nil, false, errNoArray
	}
	return parseWhole(m[1])
}

func parseTextBlocks(raw string) ([]json.RawMessage, bool, error) {
	matches := textBlock.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil, false, errNoBlocks
	}

	leads := make([]json.RawMessage, 0, len(matches))
	for _, m := range matches {
		lead, err := json.Marshal(LeadCandidate{
			CompanyName: strings.TrimSpace(m[1]),
			Address:     strings.TrimSpace(m[2]),
			Email:       strings.TrimSpace(m[3]),
			Phone:       strings.TrimSpace(m[4]),
		})
		if err != nil {
			return nil, false, err
		}
		leads = append(leads, lead)
	}
	return leads, true, nil
}

func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
