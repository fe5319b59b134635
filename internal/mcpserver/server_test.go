package mcpserver

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcalc/internal/calc"
	"qcalc/internal/logging"
	"qcalc/internal/mathexpr"
)

func newTestServer() (*Server, *calc.Controller) {
	session := calc.NewController(mathexpr.New())
	return New(session, "test", logging.NewNop()), session
}

func evaluate(t *testing.T, s *Server, args map[string]interface{}) EvaluateResponse {
	t.Helper()
	resp, err := s.handleEvaluate(context.Background(), mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	return resp
}

func historyEntries(t *testing.T, s *Server) []calc.HistoryEntry {
	t.Helper()
	result, err := s.handleHistory(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])

	var entries []calc.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(text.Text), &entries))
	return entries
}

func TestEvaluateTool(t *testing.T) {
	s, _ := newTestServer()

	resp := evaluate(t, s, map[string]interface{}{"expression": "2+2"})
	assert.Equal(t, EvaluateResponse{Expression: "2+2", AngleMode: "radians", Output: "4", OK: true}, resp)

	resp = evaluate(t, s, map[string]interface{}{"expression": "sin(90)", "angle_mode": "degrees"})
	assert.Equal(t, "1", resp.Output)
	assert.Equal(t, "degrees", resp.AngleMode)

	resp = evaluate(t, s, map[string]interface{}{"expression": "5/0"})
	assert.Equal(t, calc.ErrorMarker, resp.Output)
	assert.False(t, resp.OK)
}

func TestEvaluateToolRejectsUnknownMode(t *testing.T) {
	s, _ := newTestServer()
	_, err := s.handleEvaluate(context.Background(), mcp.CallToolRequest{},
		map[string]interface{}{"expression": "1", "angle_mode": "gradians"})
	assert.Error(t, err)
}

func TestHistoryTool(t *testing.T) {
	s, _ := newTestServer()
	assert.Empty(t, historyEntries(t, s))

	evaluate(t, s, map[string]interface{}{"expression": "1/3"})
	evaluate(t, s, map[string]interface{}{"expression": "oops("})
	evaluate(t, s, map[string]interface{}{"expression": "9"})

	assert.Equal(t, []calc.HistoryEntry{
		{Expression: "1/3", Result: "0.3333333333333333"},
		{Expression: "9", Result: "9"},
	}, historyEntries(t, s))
}

func TestEvaluateToolConcurrent(t *testing.T) {
	s, session := newTestServer()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := s.handleEvaluate(context.Background(), mcp.CallToolRequest{},
				map[string]interface{}{"expression": "6*7"})
			assert.NoError(t, err)
			assert.Equal(t, "42", resp.Output)
		}()
	}
	wg.Wait()

	assert.Len(t, session.History(), 20)
}
