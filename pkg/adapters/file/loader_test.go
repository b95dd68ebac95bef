package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
	"github.com/Kaybarax/questionnaire-exercise/pkg/ports"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const petSurveyJSON = `{
  "title": "Pet Survey",
  "questions": [
    {"id": "name", "text": "What is your name?", "kind": "Text"},
    {"id": "pets", "text": "Do you have pets?", "kind": "YesNo"},
    {
      "id": "kind",
      "text": "What kind of pet?",
      "kind": "MultipleChoice",
      "choices": ["Dog", "Cat", "Bird"],
      "condition": {"questionId": "pets", "expectedAnswer": ["yes", "y"]}
    },
    {
      "id": "why",
      "text": "Why no pets?",
      "kind": "Text",
      "condition": {"questionId": "pets", "expectedAnswer": "no"}
    }
  ]
}`

const petSurveyYAML = `title: Pet Survey
questions:
  - id: name
    text: What is your name?
    kind: Text
  - id: pets
    text: Do you have pets?
    kind: YesNo
  - id: kind
    text: What kind of pet?
    kind: MultipleChoice
    choices: [Dog, Cat, Bird]
    condition:
      questionId: pets
      expectedAnswer: ["yes", "y"]
  - id: why
    text: Why no pets?
    kind: Text
    condition:
      questionId: pets
      expectedAnswer: "no"
`

func petSurveyDocument() *domain.Document {
	return &domain.Document{
		Title: "Pet Survey",
		Questions: []domain.Question{
			{ID: "name", Text: "What is your name?", Kind: domain.KindText},
			{ID: "pets", Text: "Do you have pets?", Kind: domain.KindYesNo},
			{
				ID:      "kind",
				Text:    "What kind of pet?",
				Kind:    domain.KindMultipleChoice,
				Choices: []string{"Dog", "Cat", "Bird"},
				Condition: &domain.Condition{
					QuestionID:      "pets",
					ExpectedAnswers: []string{"yes", "y"},
				},
			},
			{
				ID:   "why",
				Text: "Why no pets?",
				Kind: domain.KindText,
				Condition: &domain.Condition{
					QuestionID:      "pets",
					ExpectedAnswers: []string{"no"},
				},
			},
		},
	}
}

func TestLoader_Contract(t *testing.T) {
	path := writeFixture(t, "questionnaire.json", petSurveyJSON)
	ports.RunDocumentLoaderContract(t, New(path), petSurveyDocument())
}

func TestLoad_JSON(t *testing.T) {
	path := writeFixture(t, "questionnaire.json", petSurveyJSON)

	doc, err := New(path).Load(t.Context())
	require.NoError(t, err)
	assert.Equal(t, petSurveyDocument(), doc)
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"questionnaire.yaml", "questionnaire.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFixture(t, name, petSurveyYAML)

			doc, err := New(path).Load(t.Context())
			require.NoError(t, err)
			assert.Equal(t, petSurveyDocument(), doc)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	doc, err := New(path).Load(t.Context())
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	assert.Contains(t, err.Error(), path)
	assert.True(t, domain.IsConfigError(err))
}

func TestLoad_MalformedPayload(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
	}{
		{name: "truncated json", file: "broken.json", content: `{"title": "Oops", "questions": [`},
		{name: "json in disguise", file: "broken.json", content: `not json at all`},
		{name: "bad yaml indentation", file: "broken.yaml", content: "title: Oops\n questions:\n- what"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixture(t, tc.file, tc.content)

			doc, err := New(path).Load(t.Context())
			assert.Nil(t, doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfigParse)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	cases := []struct {
		name      string
		content   string
		wantIndex int
		wantIn    string
	}{
		{
			name:      "missing title",
			content:   `{"questions": [{"id": "q", "text": "Q?", "kind": "Text"}]}`,
			wantIndex: -1,
			wantIn:    `missing required field "title"`,
		},
		{
			name:      "title is not a string",
			content:   `{"title": 42, "questions": []}`,
			wantIndex: -1,
			wantIn:    `"title" must be a string`,
		},
		{
			name:      "questions is not a list",
			content:   `{"title": "T", "questions": {"id": "q"}}`,
			wantIndex: -1,
			wantIn:    `"questions" must be a list`,
		},
		{
			name:      "no questions",
			content:   `{"title": "T", "questions": []}`,
			wantIndex: -1,
			wantIn:    "at least one question",
		},
		{
			name:      "question is not an object",
			content:   `{"title": "T", "questions": ["just a string"]}`,
			wantIndex: 0,
			wantIn:    "expected a map",
		},
		{
			name:      "missing id",
			content:   `{"title": "T", "questions": [{"id": "a", "text": "A?", "kind": "Text"}, {"text": "B?", "kind": "Text"}]}`,
			wantIndex: 1,
			wantIn:    `missing required field "id"`,
		},
		{
			name:      "duplicate id",
			content:   `{"title": "T", "questions": [{"id": "a", "text": "A?", "kind": "Text"}, {"id": "a", "text": "B?", "kind": "Text"}]}`,
			wantIndex: 1,
			wantIn:    `duplicate id "a"`,
		},
		{
			name:      "unknown kind",
			content:   `{"title": "T", "questions": [{"id": "a", "text": "A?", "kind": "Slider"}]}`,
			wantIndex: 0,
			wantIn:    `unrecognized kind "Slider"`,
		},
		{
			name:      "multiple choice without choices",
			content:   `{"title": "T", "questions": [{"id": "a", "text": "A?", "kind": "MultipleChoice"}]}`,
			wantIndex: 0,
			wantIn:    `"choices" must be a non-empty list`,
		},
		{
			name:      "condition missing questionId",
			content:   `{"title": "T", "questions": [{"id": "a", "text": "A?", "kind": "Text", "condition": {"expectedAnswer": "yes"}}]}`,
			wantIndex: 0,
			wantIn:    `condition is missing required field "questionId"`,
		},
		{
			name:      "condition missing expectedAnswer",
			content:   `{"title": "T", "questions": [{"id": "a", "text": "A?", "kind": "Text", "condition": {"questionId": "b"}}]}`,
			wantIndex: 0,
			wantIn:    `condition is missing required field "expectedAnswer"`,
		},
		{
			name:      "expectedAnswer is a number",
			content:   `{"title": "T", "questions": [{"id": "a", "text": "A?", "kind": "Text", "condition": {"questionId": "b", "expectedAnswer": 7}}]}`,
			wantIndex: 0,
			wantIn:    `"expectedAnswer" must be a string or a list of strings`,
		},
		{
			name:      "expectedAnswer list holds a number",
			content:   `{"title": "T", "questions": [{"id": "a", "text": "A?", "kind": "Text", "condition": {"questionId": "b", "expectedAnswer": ["yes", 7]}}]}`,
			wantIndex: 0,
			wantIn:    `"expectedAnswer" entries must be strings`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixture(t, "questionnaire.json", tc.content)

			doc, err := New(path).Load(t.Context())
			assert.Nil(t, doc)
			require.Error(t, err)
			require.ErrorIs(t, err, domain.ErrConfigSchema)

			var serr *domain.SchemaError
			require.True(t, errors.As(err, &serr))
			if tc.wantIndex < 0 {
				assert.Negative(t, serr.Index)
			} else {
				assert.Equal(t, tc.wantIndex, serr.Index)
			}
			assert.Contains(t, serr.Reason, tc.wantIn)
		})
	}
}

func TestLoad_DropsChoicesOutsideMultipleChoice(t *testing.T) {
	path := writeFixture(t, "questionnaire.json",
		`{"title": "T", "questions": [{"id": "a", "text": "A?", "kind": "Text", "choices": ["stray", "list"]}]}`)

	doc, err := New(path).Load(t.Context())
	require.NoError(t, err)
	assert.Nil(t, doc.Questions[0].Choices)
}

func TestLoad_ScalarExpectedAnswer(t *testing.T) {
	path := writeFixture(t, "questionnaire.json",
		`{"title": "T", "questions": [
			{"id": "a", "text": "A?", "kind": "YesNo"},
			{"id": "b", "text": "B?", "kind": "Text", "condition": {"questionId": "a", "expectedAnswer": "yes"}}
		]}`)

	doc, err := New(path).Load(t.Context())
	require.NoError(t, err)
	require.NotNil(t, doc.Questions[1].Condition)
	assert.Equal(t, []string{"yes"}, doc.Questions[1].Condition.ExpectedAnswers)
}

func TestDefaultPath(t *testing.T) {
	t.Run("falls back to working directory", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		assert.Equal(t, DefaultFileName, DefaultPath())
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "surveys/onboarding.yaml")
		assert.Equal(t, "surveys/onboarding.yaml", DefaultPath())
	})
}

func TestPath(t *testing.T) {
	assert.Equal(t, "some/file.json", New("some/file.json").Path())
}
