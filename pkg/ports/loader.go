package ports

import (
	"context"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
)

// DocumentLoader defines how the engine retrieves the questionnaire
// definition. This allows the configuration source (file, in-memory,
// embedded) to be decoupled from the session runtime.
type DocumentLoader interface {
	// Load retrieves the full questionnaire document. Implementations wrap
	// failures in the domain configuration error categories
	// (ErrConfigNotFound, ErrConfigParse, ErrConfigSchema) so callers can
	// classify them with errors.Is.
	Load(ctx context.Context) (*domain.Document, error)
}
