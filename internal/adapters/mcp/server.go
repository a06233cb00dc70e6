package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/datagate"
	"github.com/aretw0/datagate/internal/logging"
	"github.com/aretw0/datagate/pkg/common"
	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/ports"
	"github.com/aretw0/datagate/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// SchemaURI is the resource URI under which the declared schema is exposed.
const SchemaURI = "datagate://schema"

// ValidateResponse is the structured result of the validate_dataset tool.
type ValidateResponse struct {
	Valid    bool     `json:"valid" jsonschema_description:"Whether the dataset conforms to the schema"`
	DataPath string   `json:"data_path" jsonschema_description:"Path of the validated dataset"`
	Rows     int      `json:"rows" jsonschema_description:"Number of data rows read"`
	Messages []string `json:"messages" jsonschema_description:"Diagnostics, empty when valid"`
}

// StatusResponse is the structured result of the read_status tool.
type StatusResponse struct {
	Valid    bool     `json:"valid" jsonschema_description:"Outcome of the last validation run"`
	Messages []string `json:"messages" jsonschema_description:"Diagnostics recorded by the last run"`
}

// Gate defines what the MCP server needs from the validation gate.
type Gate interface {
	Run(ctx context.Context) (*domain.Report, error)
	Status() (*ports.StatusRecord, error)
	Schema() schema.Schema
}

type fileSizeArgs struct {
	Path string `mapstructure:"path"`
}

// Server wraps a Gate and exposes it as an MCP Server.
type Server struct {
	gate      Gate
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(gate Gate, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		gate:      gate,
		logger:    logger.With(logging.ModuleKey, "mcp"),
		mcpServer: server.NewMCPServer("datagate-mcp", strings.TrimSpace(datagate.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the MCP server over SSE on the given port until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: validate_dataset
	validateTool := mcp.NewTool("validate_dataset",
		mcp.WithDescription("Validate the configured dataset against the declared schema and write the status file."),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: read_status
	statusTool := mcp.NewTool("read_status",
		mcp.WithDescription("Read the outcome recorded by the last validation run."),
		mcp.WithOutputSchema[StatusResponse](),
	)
	s.mcpServer.AddTool(statusTool, mcp.NewStructuredToolHandler(s.handleStatus))

	// TOOL: file_size
	s.mcpServer.AddTool(mcp.NewTool("file_size",
		mcp.WithDescription("Report the approximate size of a file in kilobytes."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the file to measure")),
	), s.handleFileSize)
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	report, err := s.gate.Run(ctx)
	if err != nil {
		s.logger.Error("MCP validate failed", "error", err)
		return ValidateResponse{}, fmt.Errorf("validation failed: %w", err)
	}

	messages := report.Messages()
	if messages == nil {
		messages = []string{}
	}
	return ValidateResponse{
		Valid:    report.Valid,
		DataPath: report.DataPath,
		Rows:     report.Rows,
		Messages: messages,
	}, nil
}

func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StatusResponse, error) {
	rec, err := s.gate.Status()
	if err != nil {
		return StatusResponse{}, fmt.Errorf("read status: %w", err)
	}

	messages := rec.Messages
	if messages == nil {
		messages = []string{}
	}
	return StatusResponse{Valid: rec.Valid, Messages: messages}, nil
}

func (s *Server) handleFileSize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args fileSizeArgs
	if err := mapstructure.Decode(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	path, err := SanitizePath(args.Path)
	if err != nil {
		s.logger.Warn("MCP file_size: input rejected", "error", err, "size", len(args.Path))
		return mcp.NewToolResultError(fmt.Sprintf("input rejected: %v", err)), nil
	}
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	size, err := common.FileSizeKB(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("file size failed: %v", err)), nil
	}
	return mcp.NewToolResultText(size), nil
}

func (s *Server) registerResources() {
	// EXPOSE: datagate://schema
	s.mcpServer.AddResource(mcp.NewResource(SchemaURI, "Declared Schema",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.gate.Schema())
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      SchemaURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
