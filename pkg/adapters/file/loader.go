package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

const (
	// DefaultFileName is the questionnaire looked up in the working directory
	// when no path is given.
	DefaultFileName = "questionnaire.json"
	// EnvConfigPath overrides the default questionnaire path.
	EnvConfigPath = "QUESTIONNAIRE_FILE"
)

// DefaultPath resolves the questionnaire path from the environment, falling
// back to DefaultFileName in the working directory.
func DefaultPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return DefaultFileName
}

// Loader implements ports.DocumentLoader for a questionnaire file on disk.
// The payload is parsed as YAML when the extension says so, JSON otherwise.
type Loader struct {
	path string
}

// New creates a Loader reading from the given path.
func New(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the file the loader reads from.
func (l *Loader) Path() string {
	return l.path
}

// Load reads, parses and validates the questionnaire file. Every failure is
// classified under one of the domain error categories: a missing or
// unreadable file is ErrConfigNotFound, a syntactically broken payload is
// ErrConfigParse, and structural violations surface as *domain.SchemaError.
func (l *Loader) Load(ctx context.Context) (*domain.Document, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, l.path)
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigNotFound, l.path, err)
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigParse, l.path, err)
	}

	doc, err := buildDocument(raw)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func buildDocument(raw map[string]any) (*domain.Document, error) {
	doc := &domain.Document{}

	if titleField, ok := raw["title"]; ok {
		title, ok := titleField.(string)
		if !ok {
			return nil, &domain.SchemaError{Index: -1, Reason: fmt.Sprintf(`"title" must be a string, got %T`, titleField)}
		}
		doc.Title = title
	}

	questionsField, ok := raw["questions"]
	if !ok {
		// Validate reports the missing list.
		return doc, nil
	}
	list, ok := questionsField.([]any)
	if !ok {
		return nil, &domain.SchemaError{Index: -1, Reason: fmt.Sprintf(`"questions" must be a list, got %T`, questionsField)}
	}

	doc.Questions = make([]domain.Question, 0, len(list))
	for i, item := range list {
		q, err := buildQuestion(i, item)
		if err != nil {
			return nil, err
		}
		doc.Questions = append(doc.Questions, q)
	}
	return doc, nil
}

func buildQuestion(index int, item any) (domain.Question, error) {
	var rq rawQuestion
	if err := mapstructure.Decode(item, &rq); err != nil {
		return domain.Question{}, &domain.SchemaError{Index: index, Reason: decodeReason(err)}
	}

	q := domain.Question{
		ID:   rq.ID,
		Text: rq.Text,
		Kind: domain.Kind(rq.Kind),
	}

	// Choices only mean something for MultipleChoice; drop them elsewhere so
	// a stray list on a Text question cannot leak into prompts.
	if q.Kind == domain.KindMultipleChoice {
		q.Choices = rq.Choices
	}

	if rq.Condition != nil {
		expected, err := normalizeExpected(index, rq.Condition.ExpectedAnswer)
		if err != nil {
			return domain.Question{}, err
		}
		q.Condition = &domain.Condition{
			QuestionID:      rq.Condition.QuestionID,
			ExpectedAnswers: expected,
		}
	}

	return q, nil
}

// normalizeExpected accepts the two wire shapes of "expectedAnswer": a single
// string or a list of strings.
func normalizeExpected(index int, value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		// Validate reports the missing field.
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		expected := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &domain.SchemaError{Index: index, Reason: fmt.Sprintf(`"expectedAnswer" entries must be strings, got %T`, item)}
			}
			expected = append(expected, s)
		}
		return expected, nil
	default:
		return nil, &domain.SchemaError{Index: index, Reason: fmt.Sprintf(`"expectedAnswer" must be a string or a list of strings, got %T`, value)}
	}
}

func decodeReason(err error) string {
	var merr *mapstructure.Error
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		return merr.Errors[0]
	}
	return err.Error()
}
