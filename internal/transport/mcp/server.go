package mcp

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"strings"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/termfolio/internal/core"
	"github.com/sandevgo/termfolio/internal/service/terminal"
	"github.com/sandevgo/termfolio/pkg/log"
)

const (
	runCommandTool = "run_command"
	commandArg     = "command"
	emptyResult    = "(no output)"
)

// Registry is the command set exposed as a tool. Keys feed the enum of
// the tool argument.
type Registry interface {
	core.CmdRegistry
	Keys() []string
}

type Server struct {
	registry Registry
	mcp      *server.MCPServer
}

func NewServer(registry Registry) *Server {
	s := &Server{
		registry: registry,
		mcp: server.NewMCPServer(
			core.AppName,
			core.AppVersion,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
	}

	tool := mcpproto.NewTool(runCommandTool,
		mcpproto.WithDescription("Run a portfolio terminal command and return its text output"),
		mcpproto.WithString(commandArg,
			mcpproto.Required(),
			mcpproto.Description("Command name as typed in the terminal"),
			mcpproto.Enum(registry.Keys()...),
		),
	)
	s.mcp.AddTool(tool, s.handleRunCommand)

	return s
}

// Serve speaks MCP over in/out until ctx is done or in is closed.
// Nothing else may write to out.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("serving mcp over stdio")

	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(stdlog.New(logger, "", 0))

	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp stdio: %w", err)
	}
	return nil
}

func (s *Server) handleRunCommand(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	input, err := req.RequireString(commandArg)
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}

	text, err := Run(ctx, s.registry, input)
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}
	return mcpproto.NewToolResultText(text), nil
}

// Run dispatches input on a throwaway screen and joins the plain-text
// result lines.
func Run(ctx context.Context, registry core.CmdRegistry, input string) (string, error) {
	session := terminal.NewSession(registry, terminal.NewScreen())
	if err := session.Execute(ctx, input); err != nil {
		return "", err
	}

	var parts []string
	for _, line := range session.Screen().Lines() {
		if !line.IsEcho {
			parts = append(parts, line.Content)
		}
	}
	if len(parts) == 0 {
		return emptyResult, nil
	}
	return strings.Join(parts, "\n"), nil
}
