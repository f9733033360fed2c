package main

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/bobmcallan/vibeterms/internal/app"
	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/interfaces"
	"github.com/bobmcallan/vibeterms/internal/server"
	"github.com/bobmcallan/vibeterms/internal/services/tutor"
	"github.com/bobmcallan/vibeterms/internal/storage"
)

type cannedGemini struct {
	text string
	err  error
}

func (g *cannedGemini) GenerateContent(context.Context, string) (string, error) { return g.text, g.err }
func (g *cannedGemini) GenerateJSON(context.Context, string, *genai.Schema) (string, error) {
	return g.text, g.err
}

const vibeJSON = `{"word":"바이브 코딩 (Vibe Coding)","category":"프롬프트/주문","definition":"AI에게 말로 설명하며 코드를 만드는 방식입니다.","simpleExplanation":"느낌을 말하면 AI가 코드를 써줘요.","analogy":"인테리어 업자에게 분위기만 설명하기","examplePrompt":"따뜻한 느낌의 카페 홈페이지를 만들어줘","tags":["AI","코딩","프롬프트"]}`

// fixture shares one memory store across CLI invocations.
type fixture struct {
	kv     *storage.MemoryStore
	gemini *cannedGemini
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	for _, name := range []string{"GEMINI_API_KEY", "VIBETERMS_GEMINI_API_KEY", "API_KEY", "GOOGLE_API_KEY", "VIBETERMS_SERVER_URL"} {
		t.Setenv(name, "")
	}
	return &fixture{kv: storage.NewMemoryStore(), gemini: &cannedGemini{}}
}

func (f *fixture) newApp(t *testing.T) *app.App {
	t.Helper()
	factory := func(context.Context, string) (interfaces.GeminiClient, error) { return f.gemini, nil }
	a, err := app.New(context.Background(), common.NewDefaultConfig(), common.NewSilentLogger(), f.kv, factory)
	require.NoError(t, err)
	return a
}

func (f *fixture) localOpener(t *testing.T) opener {
	return func(configPath, serverURL string) (glossary, error) {
		if serverURL != "" {
			return newRemoteGlossary(serverURL), nil
		}
		return &localGlossary{app: f.newApp(t)}, nil
	}
}

func run(t *testing.T, open opener, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(open)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestCLI_ListAndShow(t *testing.T) {
	f := newFixture(t)
	open := f.localOpener(t)

	out, _, err := run(t, open, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "| ID | 용어 |")

	out, _, err = run(t, open, "list", "--category", "디자인/UI")
	require.NoError(t, err)
	assert.Contains(t, out, "디자인/UI")
	assert.NotContains(t, out, "| 개발/코딩 |")

	_, _, err = run(t, open, "list", "--category", "cooking")
	assert.Error(t, err)

	out, _, err = run(t, open, "show", "1", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "## 비유")

	_, _, err = run(t, open, "show", "missing")
	assert.ErrorIs(t, err, errTermNotFound)
}

func TestCLI_GenerateDeleteReset(t *testing.T) {
	f := newFixture(t)
	open := f.localOpener(t)

	_, _, err := run(t, open, "generate", "Vibe", "Coding")
	require.Error(t, err)
	assert.Equal(t, tutor.MsgGenerateNoCredential, err.Error())

	_, _, err = run(t, open, "key", "set", "cli-key-0001")
	require.NoError(t, err)
	out, _, err := run(t, open, "key", "show")
	require.NoError(t, err)
	assert.Equal(t, "********0001\n", out)

	f.gemini.text = vibeJSON
	out, _, err = run(t, open, "generate", "Vibe", "Coding")
	require.NoError(t, err)
	assert.Contains(t, out, "바이브 코딩 (Vibe Coding)")

	out, _, err = run(t, open, "list", "-q", "바이브")
	require.NoError(t, err)
	assert.Contains(t, out, "· 1개")

	_, _, err = run(t, open, "delete", "1")
	require.NoError(t, err)
	_, _, err = run(t, open, "show", "1")
	assert.Error(t, err)

	_, _, err = run(t, open, "reset")
	assert.Error(t, err, "reset needs --yes")
	_, _, err = run(t, open, "reset", "--yes")
	require.NoError(t, err)

	_, _, err = run(t, open, "show", "1")
	assert.NoError(t, err)
	out, _, _ = run(t, open, "list", "-q", "바이브")
	assert.Contains(t, out, "· 0개")

	_, _, err = run(t, open, "key", "clear")
	require.NoError(t, err)
	out, _, _ = run(t, open, "key", "show")
	assert.Equal(t, "No API key saved\n", out)
}

func TestCLI_Explain(t *testing.T) {
	f := newFixture(t)
	open := f.localOpener(t)

	out, errOut, err := run(t, open, "explain", "1")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, tutor.MsgNoCredential)

	t.Setenv("GEMINI_API_KEY", "env-key")
	f.gemini.text = "## 예시\n회원가입 API"
	out, _, err = run(t, open, "explain", "1", "-Q", "어디에 써요?")
	require.NoError(t, err)
	assert.Contains(t, out, "회원가입 API")

	f.gemini.err = errors.New("timeout")
	_, errOut, err = run(t, open, "explain", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, tutor.MsgConnectionFailed)
}

func TestCLI_Remote(t *testing.T) {
	f := newFixture(t)
	a := f.newApp(t)
	ts := httptest.NewServer(server.NewServer(a).Handler())
	defer ts.Close()
	open := f.localOpener(t)

	out, _, err := run(t, open, "--server", ts.URL, "list", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "| ID | 용어 |")

	_, _, err = run(t, open, "--server", ts.URL, "generate", "Vibe")
	require.Error(t, err)
	assert.Equal(t, tutor.MsgGenerateNoCredential, err.Error())
	var apiErr *apiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 412, apiErr.Status)

	_, _, err = run(t, open, "--server", ts.URL, "key", "set", "remote-key-1234")
	require.NoError(t, err)
	out, _, err = run(t, open, "--server", ts.URL, "key", "show")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "1234"))

	f.gemini.text = vibeJSON
	out, _, err = run(t, open, "--server", ts.URL, "generate", "Vibe")
	require.NoError(t, err)
	assert.Contains(t, out, "바이브 코딩")

	f.gemini.text = "설명입니다"
	out, _, err = run(t, open, "--server", ts.URL, "explain", "1", "-Q", "왜요?")
	require.NoError(t, err)
	assert.Contains(t, out, "설명입니다")

	_, _, err = run(t, open, "--server", ts.URL, "delete", "1")
	require.NoError(t, err)
	_, _, err = run(t, open, "--server", ts.URL, "show", "1")
	require.Error(t, err)

	_, _, err = run(t, open, "--server", ts.URL, "reset", "--yes")
	require.NoError(t, err)
	_, _, err = run(t, open, "--server", ts.URL, "show", "1")
	assert.NoError(t, err)

	_, _, err = run(t, open, "--server", ts.URL, "key", "clear")
	require.NoError(t, err)
	out, _, _ = run(t, open, "--server", ts.URL, "key", "show")
	assert.Equal(t, "No API key saved\n", out)
}

func TestDisplay_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	display(&buf, "# 제목", false)
	assert.Equal(t, "# 제목\n", buf.String())
	assert.False(t, isTerminal(&buf))
}
