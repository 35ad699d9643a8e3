package scout

import (
	"context"
	"errors"
	"testing"

	"arcade_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	text   string
	err    error
	prompt string
}

func (s *stubLLM) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

func TestParseReport(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		title string
	}{
		{"plain", `{"title":"Cup final","summary":"Team A won."}`, "Cup final"},
		{"fenced", "```json\n{\"title\":\"Cup final\",\"summary\":\"Team A won.\"}\n```", "Cup final"},
		{"chatter around", `Sure! Here it is: {"title":" Cup final ","summary":"Team A won.","source_url":"https://x"} Hope it helps`, "Cup final"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := ParseReport(tt.text)
			require.NoError(t, err)
			require.NotNil(t, report)
			assert.Equal(t, tt.title, report.Title)
			assert.Equal(t, "Team A won.", report.Summary)
		})
	}
}

func TestParseReportNull(t *testing.T) {
	report, err := ParseReport(" null ")
	assert.NoError(t, err)
	assert.Nil(t, report)
}

func TestParseReportMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"I could not find anything",
		`{"title": "cut off`,
		`{"title":"only title"}`,
		`{"title": 5, "summary": "x"}`,
	} {
		report, err := ParseReport(text)
		assert.ErrorIs(t, err, model.ErrMalformedPayload, text)
		assert.Nil(t, report)
	}
}

func TestLongTitleIsTrimmed(t *testing.T) {
	long := make([]rune, 300)
	for i := range long {
		long[i] = 'ж'
	}
	report, err := ParseReport(`{"title":"` + string(long) + `","summary":"s"}`)
	require.NoError(t, err)
	assert.Len(t, []rune(report.Title), maxTitleRunes)
}

func TestScoutPassesTopicAndRemoteErrors(t *testing.T) {
	llm := &stubLLM{text: `{"title":"t","summary":"s"}`}
	report, err := NewScout(llm).Scout(context.Background(), "chess", "games")
	require.NoError(t, err)
	assert.Equal(t, "t", report.Title)
	assert.Contains(t, llm.prompt, `"chess"`)
	assert.Contains(t, llm.prompt, `"games"`)

	down := &stubLLM{err: errors.New("dial tcp: refused")}
	_, err = NewScout(down).Scout(context.Background(), "chess", "games")
	assert.Error(t, err)
}
