package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/interfaces"
	"github.com/bobmcallan/vibeterms/internal/models"
	"github.com/bobmcallan/vibeterms/internal/services/tutor"
	"github.com/bobmcallan/vibeterms/internal/storage"
)

type fakeGemini struct {
	text string
	err  error
}

func (f *fakeGemini) GenerateContent(context.Context, string) (string, error) { return f.text, f.err }
func (f *fakeGemini) GenerateJSON(context.Context, string, *genai.Schema) (string, error) {
	return f.text, f.err
}

const ragJSON = `{"word":"RAG (검색 증강 생성)","category":"프롬프트/주문","definition":"검색 결과를 참고해 답하는 기법입니다.","simpleExplanation":"오픈북 시험처럼 자료를 보고 답해요.","analogy":"참고서를 펴놓고 푸는 시험","examplePrompt":"이 문서를 참고해서 답해줘","tags":["검색","LLM","프롬프트"]}`

type testApp struct {
	*App
	gemini *fakeGemini
	keys   []string
}

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"GEMINI_API_KEY", "VIBETERMS_GEMINI_API_KEY", "API_KEY", "GOOGLE_API_KEY"} {
		t.Setenv(name, "")
	}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	clearCredentialEnv(t)

	ta := &testApp{gemini: &fakeGemini{}}
	factory := func(_ context.Context, apiKey string) (interfaces.GeminiClient, error) {
		ta.keys = append(ta.keys, apiKey)
		return ta.gemini, nil
	}

	config := common.NewDefaultConfig()
	config.Storage.Backend = "memory"
	a, err := New(context.Background(), config, common.NewSilentLogger(), storage.NewMemoryStore(), factory)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	ta.App = a
	return ta
}

func TestNew_LogsCatalogLoadOnce(t *testing.T) {
	clearCredentialEnv(t)
	var buf bytes.Buffer
	logger := common.NewLoggerWithOutput("info", &buf)

	factory := func(context.Context, string) (interfaces.GeminiClient, error) { return &fakeGemini{}, nil }

	a, err := New(context.Background(), common.NewDefaultConfig(), logger, storage.NewMemoryStore(), factory)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	assert.Equal(t, 1, strings.Count(buf.String(), "Catalog"), buf.String())
}

func TestNew_LoadsBuiltins(t *testing.T) {
	a := newTestApp(t)
	assert.NotEmpty(t, a.Catalog.AllTerms())
	assert.NotNil(t, a.MCPServer)
}

func TestUserKey_Precedence(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	assert.Equal(t, "", a.UserKey(ctx))

	require.NoError(t, a.Settings.SetAPIKey(ctx, "saved-key"))
	assert.Equal(t, "saved-key", a.UserKey(ctx))

	override := common.WithUserContext(ctx, &common.UserContext{GeminiAPIKey: "header-key"})
	assert.Equal(t, "header-key", a.UserKey(override))
}

func TestGenerateTerm_AddsToCatalog(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, a.Settings.SetAPIKey(ctx, "saved-key"))
	a.gemini.text = ragJSON
	before := len(a.Catalog.AllTerms())

	res := a.GenerateTerm(ctx, "RAG")

	require.True(t, res.OK())
	all := a.Catalog.AllTerms()
	assert.Len(t, all, before+1)
	assert.Equal(t, res.Term.ID, all[0].ID, "generated term is listed first")
	assert.Equal(t, []string{"saved-key"}, a.keys)
}

func TestGenerateTerm_FailureLeavesCatalog(t *testing.T) {
	a := newTestApp(t)
	before := len(a.Catalog.AllTerms())

	res := a.GenerateTerm(context.Background(), "RAG")
	assert.Equal(t, models.FailureNoCredential, res.Failure)
	assert.Len(t, a.Catalog.AllTerms(), before)
	assert.Empty(t, a.keys)
}

func TestExplainTerm(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	_, found := a.ExplainTerm(ctx, "no-such-id", "")
	assert.False(t, found)

	res, found := a.ExplainTerm(ctx, "1", "")
	assert.True(t, found)
	assert.Equal(t, tutor.MsgNoCredential, res.Text)

	t.Setenv("GEMINI_API_KEY", "env-key")
	a.gemini.err = errors.New("boom")
	res, _ = a.ExplainTerm(ctx, "1", "질문")
	assert.Equal(t, tutor.MsgConnectionFailed, res.Text)
	assert.Equal(t, []string{"env-key"}, a.keys)
}

func TestGenerateFailureMessage(t *testing.T) {
	assert.Equal(t, tutor.MsgGenerateNoCredential, GenerateFailureMessage(models.FailureNoCredential))
	assert.Equal(t, tutor.MsgGenerateFailed, GenerateFailureMessage(models.FailureMalformed))
	assert.Equal(t, tutor.MsgGenerateFailed, GenerateFailureMessage(models.FailureConnection))
}

func TestResolveConfigPath(t *testing.T) {
	assert.Equal(t, "explicit.toml", ResolveConfigPath("explicit.toml"))

	t.Setenv("VIBETERMS_CONFIG", "/etc/vibeterms.toml")
	assert.Equal(t, "/etc/vibeterms.toml", ResolveConfigPath(""))
}

func callTool(t *testing.T, a *testApp, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var tool *server.ServerTool
	for _, st := range a.tools() {
		if st.Tool.Name == name {
			tool = &st
		}
	}
	require.NotNil(t, tool, "tool %s not registered", name)

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}
