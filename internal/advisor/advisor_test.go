package advisor

import (
	"context"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

func TestAdvice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    model.Metrics
		want []string
	}{
		{
			name: "struggling business",
			m:    model.Metrics{Revenue: 5000, ProfitMarginPct: 5, ExpenseRatioPct: 95},
			want: []string{
				"Low profit margin. Reduce costs or increase pricing.",
				"Expenses too high. Optimize operational spending.",
				"Revenue is low. Focus on customer growth and sales.",
				"Maintain working capital and monitor cash flow regularly.",
			},
		},
		{
			name: "healthy business",
			m:    model.Metrics{Revenue: 330000, ProfitMarginPct: 34.24, ExpenseRatioPct: 65.76},
			want: []string{
				"Strong profit margin. Business is healthy.",
				"Revenue trend looks stable.",
				"Maintain working capital and monitor cash flow regularly.",
			},
		},
		{
			name: "middling margin gives no margin line",
			m:    model.Metrics{Revenue: 100000, ProfitMarginPct: 15, ExpenseRatioPct: 85},
			want: []string{
				"Expenses too high. Optimize operational spending.",
				"Revenue trend looks stable.",
				"Maintain working capital and monitor cash flow regularly.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Advice(tt.m))
		})
	}
}

func TestAdviceText(t *testing.T) {
	t.Parallel()

	text := AdviceText(model.Metrics{Revenue: 330000, ProfitMarginPct: 34.24, ExpenseRatioPct: 65.76})
	assert.Equal(t,
		"Strong profit margin. Business is healthy.\n\n"+
			"Revenue trend looks stable.\n\n"+
			"Maintain working capital and monitor cash flow regularly.", text)
}

func TestNewNarratorWithoutKey(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewNarrator("", "whatever"))
	assert.NotNil(t, NewNarrator("sk-test", ""))
}

type fakeMessages struct {
	gotPrompt string
	reply     *sdk.Message
	err       error
}

func (f *fakeMessages) New(_ context.Context, params sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	if len(params.Messages) > 0 {
		for _, block := range params.Messages[0].Content {
			if block.OfText != nil {
				f.gotPrompt = block.OfText.Text
			}
		}
	}
	return f.reply, f.err
}

func TestNarrate(t *testing.T) {
	t.Parallel()

	fake := &fakeMessages{
		reply: &sdk.Message{
			Content: []sdk.ContentBlockUnion{{Type: "text", Text: "Your margins look strong."}},
		},
	}
	n := &Narrator{messages: fake, model: "test-model", maxTokens: 256}

	m := model.Metrics{Revenue: 330000, ProfitMarginPct: 34.24}
	out, err := n.Narrate(context.Background(), m, []string{"finding one"})
	require.NoError(t, err)
	assert.Equal(t, "Your margins look strong.", out)
	assert.Contains(t, fake.gotPrompt, "Revenue: 330000.00")
	assert.Contains(t, fake.gotPrompt, "- finding one")
}

func TestNarrateFallsBackOnError(t *testing.T) {
	t.Parallel()

	fake := &fakeMessages{err: eris.New("api unavailable")}
	n := &Narrator{messages: fake, model: "test-model", maxTokens: 256}

	out, err := n.Narrate(context.Background(), model.Metrics{}, []string{"a", "b"})
	require.Error(t, err)
	assert.Equal(t, "a\n\nb", out)
}

func TestNarrateEmptyReplyFallsBack(t *testing.T) {
	t.Parallel()

	fake := &fakeMessages{reply: &sdk.Message{}}
	n := &Narrator{messages: fake, model: "test-model", maxTokens: 256}

	out, err := n.Narrate(context.Background(), model.Metrics{}, []string{"only finding"})
	require.NoError(t, err)
	assert.Equal(t, "only finding", out)
}
