// Command vibeterms-mcp bridges an MCP client speaking stdio to the /mcp
// endpoint of a running vibeterms-server.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	defaultServerURL = "http://localhost:8080"

	// geminiKeyHeader mirrors server.GeminiKeyHeader without importing the server.
	geminiKeyHeader = "X-Vibeterms-Gemini-Key"

	// upstreamErrorCode is the JSON-RPC server-error code reported when the
	// glossary server cannot be reached or rejects the message.
	upstreamErrorCode = -32000
)

// glossaryBridge relays JSON-RPC messages to the glossary server. A user key,
// when set, rides along on every request so tool calls use it for Gemini.
type glossaryBridge struct {
	endpoint  string
	geminiKey string
	client    *http.Client
}

func newGlossaryBridge(serverURL, geminiKey string, client *http.Client) *glossaryBridge {
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}
	return &glossaryBridge{
		endpoint:  strings.TrimRight(serverURL, "/") + "/mcp",
		geminiKey: strings.TrimSpace(geminiKey),
		client:    client,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bridge := newGlossaryBridge(
		os.Getenv("VIBETERMS_SERVER_URL"),
		os.Getenv("VIBETERMS_USER_GEMINI_KEY"),
		nil,
	)
	if err := bridge.Run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "vibeterms-mcp: %v\n", err)
		os.Exit(1)
	}
}

// Run relays newline-delimited messages from r until EOF or ctx is done.
// Every request gets exactly one line on w; notifications get none.
func (b *glossaryBridge) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	in := bufio.NewReader(r)
	for {
		line, readErr := in.ReadBytes('\n')
		if msg := bytes.TrimSpace(line); len(msg) > 0 {
			out, err := b.relay(ctx, msg)
			if err != nil {
				out = rpcError(msg, err)
			}
			if len(out) > 0 {
				if _, err := fmt.Fprintf(w, "%s\n", out); err != nil {
					return err
				}
			}
		}

		switch {
		case errors.Is(readErr, io.EOF):
			return nil
		case readErr != nil:
			return readErr
		case ctx.Err() != nil:
			return nil
		}
	}
}

// relay posts one message and returns the JSON-RPC reply, or nil for an
// accepted notification. Streamed replies are unwrapped to their final event.
func (b *glossaryBridge) relay(ctx context.Context, msg []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(msg))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	if b.geminiKey != "" {
		req.Header.Set(geminiKeyHeader, b.geminiKey)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("glossary server unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read reply: %w", err)
	}

	if resp.StatusCode == http.StatusAccepted {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("glossary server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream") {
		return finalEvent(body), nil
	}
	return bytes.TrimSpace(body), nil
}

// finalEvent returns the data payload of the last event in an SSE body.
func finalEvent(body []byte) []byte {
	var data []byte
	for _, line := range bytes.Split(body, []byte("\n")) {
		if payload, ok := bytes.CutPrefix(bytes.TrimSpace(line), []byte("data:")); ok {
			data = bytes.TrimSpace(payload)
		}
	}
	return data
}

// requestID reads the id of a JSON-RPC message. Unparseable messages and
// notifications yield a nil id.
func requestID(msg []byte) mcp.RequestId {
	var envelope struct {
		ID mcp.RequestId `json:"id"`
	}
	_ = json.Unmarshal(msg, &envelope)
	return envelope.ID
}

// rpcError builds the JSON-RPC error reply for msg.
func rpcError(msg []byte, cause error) []byte {
	reply := mcp.NewJSONRPCError(requestID(msg), upstreamErrorCode, cause.Error(), nil)
	data, err := json.Marshal(reply)
	if err != nil {
		return nil
	}
	return data
}
