// Package mcpserver exposes the calculator as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"qcalc/internal/calc"
)

// EvaluateResponse is the structured result of the evaluate tool.
type EvaluateResponse struct {
	Expression string `json:"expression" jsonschema_description:"The expression as submitted"`
	AngleMode  string `json:"angle_mode" jsonschema_description:"radians or degrees"`
	Output     string `json:"output" jsonschema_description:"Formatted result, or Syntax Error"`
	OK         bool   `json:"ok" jsonschema_description:"False when the expression could not be evaluated"`
}

// Server wraps one calculator session. MCP requests may arrive
// concurrently; the session itself is single-threaded, so every call holds mu.
type Server struct {
	mu        sync.Mutex
	session   *calc.Controller
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// New creates a Server over session.
func New(session *calc.Controller, version string, logger *slog.Logger) *Server {
	s := &Server{
		session:   session,
		logger:    logger,
		mcpServer: server.NewMCPServer("qcalc", version),
	}
	s.registerTools()
	return s
}

// ServeStdio serves on Stdin/Stdout until the input is closed.
func (s *Server) ServeStdio() error {
	s.logger.Info("MCP server started", "transport", "stdio")
	defer s.logger.Info("MCP server stopped")
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	evaluateTool := mcp.NewTool("evaluate",
		mcp.WithDescription("Evaluate a calculator expression. Supports + - * / ^, parentheses, sqrt, log10, log (natural), sin, cos and tan. Successful results are added to the session history."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Expression such as 2+2 or sin(90)")),
		mcp.WithString("angle_mode", mcp.Description("Angle unit for sin, cos and tan"), mcp.Enum("radians", "degrees")),
		mcp.WithOutputSchema[EvaluateResponse](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluate))

	s.mcpServer.AddTool(mcp.NewTool("history",
		mcp.WithDescription("List the successful evaluations of this session, oldest first."),
	), s.handleHistory)
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EvaluateResponse, error) {
	expr, _ := args["expression"].(string)
	modeArg, _ := args["angle_mode"].(string)

	mode, err := calc.ParseAngleMode(modeArg)
	if err != nil {
		return EvaluateResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.session.History())
	s.session.Dispatch(calc.Clear())
	s.session.Dispatch(calc.SetAngleMode(mode))
	s.session.Dispatch(calc.Append(expr))
	st := s.session.Dispatch(calc.Evaluate())

	return EvaluateResponse{
		Expression: expr,
		AngleMode:  mode.String(),
		Output:     st.Output,
		OK:         len(st.History) > before,
	}, nil
}

func (s *Server) handleHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	entries := s.session.History()
	s.mu.Unlock()

	if entries == nil {
		entries = []calc.HistoryEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode history: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
