package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTerm() Term {
	return Term{
		ID:                "1",
		Word:              "API",
		Category:          CategoryCoding,
		Definition:        "프로그램끼리 대화하는 약속",
		SimpleExplanation: "식당 메뉴판 같은 것",
		Analogy:           "웨이터",
		ExamplePrompt:     "이 API 사용법을 알려줘",
		Tags:              []string{"연동"},
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "category %q", c)
	}
	assert.False(t, CategoryAll.Valid())
	assert.False(t, Category("Coding").Valid())
	assert.Len(t, CategoryValues(), 6)
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cs := Categories()
	cs[0] = "mutated"
	assert.Equal(t, CategoryPlanning, Categories()[0])
}

func TestTerm_Validate(t *testing.T) {
	term := validTerm()
	require.NoError(t, term.Validate())

	term.Analogy = "   "
	err := term.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analogy")

	term = validTerm()
	term.Category = "기타"
	assert.Error(t, term.Validate())

	// id is assigned later and is not part of the shape check
	term = validTerm()
	term.ID = ""
	assert.NoError(t, term.Validate())
}

func TestTerm_Clone(t *testing.T) {
	term := validTerm()
	clone := term.Clone()
	clone.Tags[0] = "changed"
	assert.Equal(t, "연동", term.Tags[0])
}

func TestTerm_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(validTerm())
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"simpleExplanation"`)
	assert.Contains(t, s, `"examplePrompt"`)
	assert.Contains(t, s, `"category":"개발/코딩"`)
}
