// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes seqren tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/seqren/internal/apperr"
	"github.com/starford/seqren/internal/renamer"
	"github.com/starford/seqren/internal/renameservice"
)

const namingSchemeURI = "seqren://naming-scheme"

// Server wraps the MCP server with seqren tools.
type Server struct {
	mcp    *server.MCPServer
	svc    *renameservice.Service
	scheme string
}

// New creates a new MCP server with all seqren tools registered.
func New(svc *renameservice.Service, naming renamer.Naming, version string) *Server {
	s := &Server{svc: svc, scheme: NamingScheme(naming)}

	s.mcp = server.NewMCPServer(
		"seqren",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_files",
		mcp.WithDescription("List the regular files in a directory in the order a rename batch would number them."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Directory relative to the server root (\".\" for the root itself)")),
	), s.listFiles)

	s.mcp.AddTool(mcp.NewTool("plan_rename",
		mcp.WithDescription("Preview a rename batch without touching the directory. "+
			"Returns every file's temporary and final name."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Directory relative to the server root")),
	), s.planRename)

	s.mcp.AddTool(mcp.NewTool("rename_files",
		mcp.WithDescription("Rename every regular file in a directory to \"part N.ext\". "+
			"Read the naming scheme via the seqren://naming-scheme resource or call plan_rename first."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Directory relative to the server root")),
		mcp.WithBoolean("verify", mcp.Description("Check file contents by SHA-256 before and after the batch")),
	), s.renameFiles)

	s.mcp.AddResource(
		mcp.NewResource(namingSchemeURI, "Naming Scheme",
			mcp.WithResourceDescription("How seqren orders and names files."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readNamingScheme,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// toolError prefixes the error kind so callers can branch without parsing.
func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", apperr.KindOf(err), err))
}

func (s *Server) listFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	files, err := s.svc.List(ctx, path)
	if err != nil {
		return toolError(err), nil
	}
	if len(files) == 0 {
		return mcp.NewToolResultText("no files to rename"), nil
	}
	return mcp.NewToolResultText(strings.Join(files, "\n")), nil
}

func (s *Server) planRename(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.svc.Plan(ctx, path)
	if err != nil {
		return toolError(err), nil
	}
	out, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) renameFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	verify := req.GetBool("verify", false)

	res, err := s.svc.Rename(ctx, path, verify)
	if err != nil {
		if res != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: %v (renamed %d before stopping)",
				apperr.KindOf(err), err, res.Renamed)), nil
		}
		return toolError(err), nil
	}
	out, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readNamingScheme(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      namingSchemeURI,
			MIMEType: "text/markdown",
			Text:     s.scheme,
		},
	}, nil
}
