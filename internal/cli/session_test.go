package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	questionnaire "github.com/Kaybarax/questionnaire-exercise"
	"github.com/Kaybarax/questionnaire-exercise/internal/logging"
	"github.com/Kaybarax/questionnaire-exercise/internal/testutils"
	"github.com/Kaybarax/questionnaire-exercise/pkg/adapters/memory"
	"github.com/Kaybarax/questionnaire-exercise/pkg/adapters/terminal"
	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
	"github.com/Kaybarax/questionnaire-exercise/pkg/ports"
)

func newSessionEngine(t *testing.T, console ports.Console) *questionnaire.Engine {
	t.Helper()
	loader, err := memory.NewFromQuestions("Pet Survey",
		testutils.YesNo("pets", "Do you have pets?"),
	)
	require.NoError(t, err)

	engine, err := questionnaire.New("",
		questionnaire.WithLoader(loader),
		questionnaire.WithConsole(console),
	)
	require.NoError(t, err)
	return engine
}

func TestRunSessions_SingleRound(t *testing.T) {
	// Answer the question, then decline another round.
	console := testutils.NewScriptedConsole("yes", "no")
	engine := newSessionEngine(t, console)

	err := RunSessions(context.Background(), engine, console, RunOptions{SessionID: "round-1"}, logging.NewNop())
	require.NoError(t, err)

	displayed := console.Displayed
	require.NotEmpty(t, displayed)
	joined := ""
	for _, d := range displayed {
		joined += d + "\n"
	}
	assert.Contains(t, joined, "Summary: Pet Survey")
	assert.Contains(t, joined, "Do you have pets?\n   yes")
	assert.Contains(t, joined, terminal.DefaultFarewell)
	assert.Contains(t, console.Prompts, "Would you like to start a new session? (yes/no)")
}

func TestRunSessions_RestartRunsAnotherSession(t *testing.T) {
	// First round, accept a restart, second round, then decline.
	console := testutils.NewScriptedConsole("yes", "y", "no", "no")
	engine := newSessionEngine(t, console)

	err := RunSessions(context.Background(), engine, console, RunOptions{SessionID: "round-1"}, logging.NewNop())
	require.NoError(t, err)

	asked := 0
	for _, p := range console.Prompts {
		if p == "Do you have pets? (yes/no)" {
			asked++
		}
	}
	assert.Equal(t, 2, asked)
}

func TestRunSessions_EOFDuringSessionIsAQuietExit(t *testing.T) {
	// The script runs dry mid-session: the user closed stdin, not an error.
	console := testutils.NewScriptedConsole()
	engine := newSessionEngine(t, console)

	err := RunSessions(context.Background(), engine, console, RunOptions{}, logging.NewNop())
	assert.NoError(t, err)
}

func TestRunSessions_ConfigErrorIsFatal(t *testing.T) {
	console := testutils.NewScriptedConsole("yes")
	loader := &failingLoader{err: &domain.SchemaError{Index: 0, Reason: `missing required field "id"`}}

	engine, err := questionnaire.New("",
		questionnaire.WithLoader(loader),
		questionnaire.WithConsole(console),
	)
	require.NoError(t, err)

	err = RunSessions(context.Background(), engine, console, RunOptions{}, logging.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigSchema)

	require.NotEmpty(t, console.Errors)
	assert.Contains(t, console.Errors[0], "Cannot run questionnaire")
	// No retry offer for configuration problems.
	assert.NotContains(t, console.Prompts, "Try again? (yes/no)")
}

func TestRunSessions_UnexpectedErrorOffersRetry(t *testing.T) {
	console := testutils.NewScriptedConsole("y", "yes", "no")
	loader := &flakyLoader{
		err: errors.New("disk on fire"),
		doc: testutils.Doc(t, "Pet Survey", testutils.YesNo("pets", "Do you have pets?")),
	}

	engine, err := questionnaire.New("",
		questionnaire.WithLoader(loader),
		questionnaire.WithConsole(console),
	)
	require.NoError(t, err)

	err = RunSessions(context.Background(), engine, console, RunOptions{}, logging.NewNop())
	require.NoError(t, err)

	require.NotEmpty(t, console.Errors)
	assert.Contains(t, console.Errors[0], "Something went wrong")
	assert.Contains(t, console.Prompts, "Try again? (yes/no)")
	// The second attempt went through the whole flow.
	assert.Contains(t, console.Prompts, "Do you have pets? (yes/no)")
}

func TestRunSessions_RetryDeclinedExitsClean(t *testing.T) {
	console := testutils.NewScriptedConsole("nah")
	loader := &failingLoader{err: errors.New("disk on fire")}

	engine, err := questionnaire.New("",
		questionnaire.WithLoader(loader),
		questionnaire.WithConsole(console),
	)
	require.NoError(t, err)

	err = RunSessions(context.Background(), engine, console, RunOptions{}, logging.NewNop())
	assert.NoError(t, err)
}

func TestPromptYesNo(t *testing.T) {
	cases := []struct {
		answer string
		want   bool
	}{
		{"yes", true},
		{"y", true},
		{"YES", true},
		{"  y  ", true},
		{"no", false},
		{"n", false},
		{"maybe", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run("answer "+tc.answer, func(t *testing.T) {
			console := testutils.NewScriptedConsole(tc.answer)
			got := promptYesNo(context.Background(), console, "Continue? (yes/no)")
			assert.Equal(t, tc.want, got)
		})
	}
}

// failingLoader always errors.
type failingLoader struct {
	err error
}

func (l *failingLoader) Load(ctx context.Context) (*domain.Document, error) {
	return nil, l.err
}

// flakyLoader errors once, then serves the document.
type flakyLoader struct {
	err   error
	doc   *domain.Document
	calls int
}

func (l *flakyLoader) Load(ctx context.Context) (*domain.Document, error) {
	l.calls++
	if l.calls == 1 {
		return nil, l.err
	}
	return l.doc, nil
}
