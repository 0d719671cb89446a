package mcp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tezlab/tezcheck/internal/analysis"
	"github.com/tezlab/tezcheck/internal/config"
	"github.com/tezlab/tezcheck/internal/pdf"
)

// Server exposes the thesis checker over the Model Context Protocol.
type Server struct {
	config     *config.Config
	pdfService *pdf.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, pdfService *pdf.Service) (*Server, error) {
	if pdfService == nil {
		return nil, fmt.Errorf("pdfService cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:     cfg,
		pdfService: pdfService,
		mcpServer:  mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	checkFileTool := mcp.NewTool(
		"thesis_check_file",
		mcp.WithDescription("Check a PDF thesis file against the embedded writing guideline rules and return a scored compliance report"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the thesis PDF file"),
		),
	)
	s.mcpServer.AddTool(checkFileTool, s.handleCheckFile)

	checkDataTool := mcp.NewTool(
		"thesis_check_data",
		mcp.WithDescription("Check base64-encoded PDF thesis bytes against the writing guideline rules"),
		mcp.WithString("file_name",
			mcp.Required(),
			mcp.Description("Original file name, used for reporting"),
		),
		mcp.WithString("content_base64",
			mcp.Required(),
			mcp.Description("Base64-encoded PDF content"),
		),
	)
	s.mcpServer.AddTool(checkDataTool, s.handleCheckData)

	rulesTool := mcp.NewTool(
		"thesis_rules",
		mcp.WithDescription("List the embedded thesis writing guideline rule catalog"),
	)
	s.mcpServer.AddTool(rulesTool, s.handleRules)
}

func (s *Server) handleCheckFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.pdfService.CheckFile(pdf.CheckFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatCheckResult(result)), nil
}

func (s *Server) handleCheckData(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileName, err := request.RequireString("file_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	encoded, err := request.RequireString("content_base64")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid base64 content: %v", err)), nil
	}

	result, err := s.pdfService.CheckData(pdf.CheckDataRequest{FileName: fileName, Data: data})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatCheckResult(result)), nil
}

func (s *Server) handleRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog := s.pdfService.Catalog()

	var text strings.Builder
	fmt.Fprintf(&text, "Thesis rule catalog v%d (%d rules)\n", catalog.Meta.Version, catalog.RuleCount())
	for _, group := range catalog.Groups {
		fmt.Fprintf(&text, "\n%s\n", group.Title)
		for _, rule := range group.Rules {
			fmt.Fprintf(&text, "  [%s] %s: %s\n", rule.Level, rule.ID, rule.Description)
		}
	}

	return mcp.NewToolResultText(text.String()), nil
}

// formatCheckResult renders a report as readable text for tool output.
func (s *Server) formatCheckResult(result *pdf.CheckResult) string {
	var text strings.Builder

	fmt.Fprintf(&text, "Checked %s (%d pages, %d bytes)\n", result.FileName, result.PageCount, result.SizeBytes)
	fmt.Fprintf(&text, "Overall score: %.1f%%\n", result.Report.OverallScore)
	fmt.Fprintf(&text, "%s\n\n", result.Report.Summary)

	category := ""
	for _, item := range result.Report.Items {
		if item.Category != category {
			category = item.Category
			fmt.Fprintf(&text, "%s\n", category)
		}
		fmt.Fprintf(&text, "  %s %s\n    %s\n", statusMark(item.Status), item.Title, item.Details)
	}

	return text.String()
}

func statusMark(status analysis.RuleStatus) string {
	switch status {
	case analysis.StatusPassed:
		return "[PASS]"
	case analysis.StatusFailed:
		return "[FAIL]"
	case analysis.StatusWarning:
		return "[WARN]"
	case analysis.StatusInfo:
		return "[INFO]"
	default:
		return "[????]"
	}
}

// Run starts the MCP server on standard I/O.
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting thesis check MCP server in stdio mode")
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
