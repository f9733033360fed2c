package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/bobmcallan/vibeterms/internal/models"
)

func TestTermResponseSchema(t *testing.T) {
	s := termResponseSchema()
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, termFields, s.Required)
	for _, f := range termFields {
		assert.Contains(t, s.Properties, f)
	}
	assert.Equal(t, genai.TypeArray, s.Properties["tags"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["tags"].Items.Type)
	assert.Len(t, s.Properties["category"].Enum, len(models.Categories()))
}

func TestValidator(t *testing.T) {
	v, err := newValidator()
	require.NoError(t, err)

	assert.NoError(t, v.validate(dockerJSON))
	assert.Error(t, v.validate(`{"word":"x"}`))
	assert.Error(t, v.validate(`{"word":"", "category":"개발/코딩","definition":"d","simpleExplanation":"s","analogy":"a","examplePrompt":"p","tags":[]}`))
	assert.Error(t, v.validate(`[]`))
	assert.Error(t, v.validate(`not json`))
}
