package generator

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accident-analyzer/config"
	"accident-analyzer/utils"
)

func TestGenerate(t *testing.T) {
	logger := utils.NewLogger(utils.Options{Level: "error"})
	logger.SetOutput(io.Discard)

	gen := NewGenerator(&config.Config{}, logger)
	accidents := gen.Generate()

	require.Len(t, accidents, 8)

	seen := make(map[int]bool)
	for _, a := range accidents {
		assert.False(t, seen[a.ID], "duplicate id %d", a.ID)
		seen[a.ID] = true

		assert.NotEmpty(t, a.Car)
		assert.NotEmpty(t, a.Location)
		assert.NotEmpty(t, a.City)
		assert.NotEmpty(t, a.DateTime)
	}
}
