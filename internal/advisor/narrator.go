package advisor

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/udyamlabs/finhealth-cli/internal/model"
	"github.com/udyamlabs/finhealth-cli/internal/resilience"
)

const (
	defaultModel     = "claude-sonnet-4-5-20250929"
	defaultMaxTokens = 1024

	systemPrompt = "You are a financial advisor for Indian small businesses. " +
		"Given metrics and rule-based findings, write a short, practical " +
		"narrative in plain English. Do not invent numbers."
)

// messageCreator is the slice of the Anthropic SDK the narrator uses.
type messageCreator interface {
	New(ctx context.Context, params sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// Narrator turns rule-based advice into a prose narrative using the
// Anthropic messages API.
type Narrator struct {
	messages  messageCreator
	model     string
	maxTokens int64
}

// NewNarrator builds a Narrator. Returns nil when apiKey is empty, in
// which case callers should fall back to AdviceText.
func NewNarrator(apiKey, modelID string) *Narrator {
	if apiKey == "" {
		return nil
	}
	if modelID == "" {
		modelID = defaultModel
	}
	client := sdk.NewClient(option.WithAPIKey(apiKey))
	return &Narrator{
		messages:  &client.Messages,
		model:     modelID,
		maxTokens: defaultMaxTokens,
	}
}

// Narrate produces a narrative for the metrics and findings. On API
// failure it logs a warning and returns the rule-based text instead,
// so the caller always gets usable advice.
func (n *Narrator) Narrate(ctx context.Context, m model.Metrics, findings []string) (string, error) {
	prompt := buildPrompt(m, findings)

	msg, err := resilience.Do(ctx, resilience.DefaultConfig(), "advisor.narrate",
		func(ctx context.Context) (*sdk.Message, error) {
			return n.messages.New(ctx, sdk.MessageNewParams{
				Model:     sdk.Model(n.model),
				MaxTokens: n.maxTokens,
				System:    []sdk.TextBlockParam{{Text: systemPrompt}},
				Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(prompt))},
			})
		})
	if err != nil {
		zap.L().Warn("advisor: narrative request failed, using rule-based advice",
			zap.Error(err))
		return strings.Join(findings, "\n\n"), eris.Wrap(err, "advisor: create message")
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return strings.Join(findings, "\n\n"), nil
	}
	return sb.String(), nil
}

func buildPrompt(m model.Metrics, findings []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Revenue: %.2f\nExpense: %.2f\nProfit: %.2f\n", m.Revenue, m.Expense, m.Profit)
	fmt.Fprintf(&sb, "Profit margin: %.2f%%\nExpense ratio: %.2f%%\nGrowth: %.2f%%\n",
		m.ProfitMarginPct, m.ExpenseRatioPct, m.GrowthPct)
	if m.HasWorkingCapital {
		fmt.Fprintf(&sb, "Working capital: %.2f\n", m.WorkingCapital)
	}
	sb.WriteString("\nFindings:\n")
	for _, f := range findings {
		sb.WriteString("- ")
		sb.WriteString(f)
		sb.WriteString("\n")
	}
	return sb.String()
}
