package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/vibeterms/internal/services/tutor"
)

func TestRegisterTools(t *testing.T) {
	a := newTestApp(t)
	names := make([]string, 0)
	for _, st := range a.tools() {
		names = append(names, st.Tool.Name)
	}
	assert.ElementsMatch(t, []string{"get_version", "search_terms", "get_term", "generate_term", "explain_term", "delete_term", "reset_catalog"}, names)
}

func TestTool_GetVersion(t *testing.T) {
	a := newTestApp(t)
	res := callTool(t, a, "get_version", nil)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Status: OK")
}

func TestTool_SearchTerms(t *testing.T) {
	a := newTestApp(t)

	res := callTool(t, a, "search_terms", map[string]any{"category": "개발/코딩"})
	require.False(t, res.IsError)
	text := resultText(t, res)
	assert.Contains(t, text, "| ID | 용어 |")
	assert.Contains(t, text, "개발/코딩")

	res = callTool(t, a, "search_terms", map[string]any{"query": "zzz-no-match"})
	assert.Contains(t, resultText(t, res), "검색 결과가 없습니다.")

	res = callTool(t, a, "search_terms", map[string]any{"category": "요리"})
	assert.True(t, res.IsError)
}

func TestTool_GetTerm(t *testing.T) {
	a := newTestApp(t)

	res := callTool(t, a, "get_term", map[string]any{"id": "1"})
	require.False(t, res.IsError)
	term, _ := a.Catalog.Get("1")
	assert.Contains(t, resultText(t, res), "# "+term.Word)

	res = callTool(t, a, "get_term", map[string]any{"id": "missing"})
	assert.True(t, res.IsError)

	res = callTool(t, a, "get_term", map[string]any{})
	assert.True(t, res.IsError)
}

func TestTool_GenerateTerm(t *testing.T) {
	a := newTestApp(t)

	res := callTool(t, a, "generate_term", map[string]any{"keyword": "RAG"})
	assert.True(t, res.IsError)
	assert.Equal(t, tutor.MsgGenerateNoCredential, resultText(t, res))

	t.Setenv("GEMINI_API_KEY", "env-key")
	a.gemini.text = "not json"
	res = callTool(t, a, "generate_term", map[string]any{"keyword": "RAG"})
	assert.True(t, res.IsError)
	assert.Equal(t, tutor.MsgGenerateFailed, resultText(t, res))

	a.gemini.text = ragJSON
	res = callTool(t, a, "generate_term", map[string]any{"keyword": "RAG"})
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "RAG (검색 증강 생성)")
	assert.Equal(t, "RAG (검색 증강 생성)", a.Catalog.AllTerms()[0].Word)
}

func TestTool_ExplainTerm(t *testing.T) {
	a := newTestApp(t)
	t.Setenv("GEMINI_API_KEY", "env-key")

	a.gemini.text = "## 설명"
	res := callTool(t, a, "explain_term", map[string]any{"id": "1", "question": "왜 필요해요?"})
	require.False(t, res.IsError)
	assert.Equal(t, "## 설명", resultText(t, res))

	a.gemini.err = errors.New("down")
	res = callTool(t, a, "explain_term", map[string]any{"id": "1"})
	assert.True(t, res.IsError)
	assert.Equal(t, tutor.MsgConnectionFailed, resultText(t, res))

	res = callTool(t, a, "explain_term", map[string]any{"id": "missing"})
	assert.True(t, res.IsError)
}

func TestTool_DeleteAndReset(t *testing.T) {
	a := newTestApp(t)
	total := len(a.Catalog.AllTerms())

	res := callTool(t, a, "delete_term", map[string]any{"id": "1"})
	require.False(t, res.IsError)
	_, ok := a.Catalog.Get("1")
	assert.False(t, ok)
	assert.Len(t, a.Catalog.AllTerms(), total-1)

	res = callTool(t, a, "reset_catalog", nil)
	require.False(t, res.IsError)
	_, ok = a.Catalog.Get("1")
	assert.True(t, ok)
	assert.Empty(t, a.Catalog.State().DeletedDefaultIDs)
}
