package ports

import (
	"context"
	"testing"

	"github.com/Kaybarax/questionnaire-exercise/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDocumentLoaderContract runs a suite of tests to verify that a
// DocumentLoader implementation adheres to the defined interface contract.
// want is the document the loader is expected to produce.
func RunDocumentLoaderContract(t *testing.T, loader DocumentLoader, want *domain.Document) {
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		doc, err := loader.Load(ctx)
		require.NoError(t, err, "Load should not return error")
		require.NotNil(t, doc)

		assert.Equal(t, want.Title, doc.Title)
		require.Len(t, doc.Questions, len(want.Questions))
		for i := range want.Questions {
			assert.Equal(t, want.Questions[i].ID, doc.Questions[i].ID)
			assert.Equal(t, want.Questions[i].Kind, doc.Questions[i].Kind)
		}
	})

	t.Run("Load Is Repeatable", func(t *testing.T) {
		first, err := loader.Load(ctx)
		require.NoError(t, err)
		second, err := loader.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second, "Load should be side-effect free")
	})

	t.Run("Loaded Document Is Valid", func(t *testing.T) {
		doc, err := loader.Load(ctx)
		require.NoError(t, err)
		assert.NoError(t, doc.Validate(), "loaders must only hand out schema-valid documents")
	})
}
