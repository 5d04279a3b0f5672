package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/tutormatch/internal/config"
	"github.com/vijay-prabhu/tutormatch/internal/database"
	"github.com/vijay-prabhu/tutormatch/internal/logging"
	"github.com/vijay-prabhu/tutormatch/internal/matcher"
)

// Server answers MCP requests for the tutor catalog over stdio
type Server struct {
	db       *database.DB
	config   *config.Config
	matcher  *matcher.Matcher
	handlers map[string]ToolHandler
	methods  map[string]methodHandler

	// Version is reported in the initialize response
	Version string
}

// ToolHandler runs one tool call and returns its result, which is
// rendered as indented JSON unless it is already a string
type ToolHandler func(ctx context.Context, params json.RawMessage) (interface{}, error)

type methodHandler func(ctx context.Context, req jsonRPCRequest) *jsonRPCResponse

// New creates a server backed by db
func New(db *database.DB, cfg *config.Config) *Server {
	s := &Server{
		db:       db,
		config:   cfg,
		matcher:  matcher.New(db, cfg),
		handlers: make(map[string]ToolHandler),
		Version:  "dev",
	}
	s.methods = map[string]methodHandler{
		"initialize":     s.handleInitialize,
		"ping":           s.handlePing,
		"tools/list":     s.handleToolsList,
		"tools/call":     s.handleToolsCall,
		"resources/list": s.handleResourcesList,
		"resources/read": s.handleResourcesRead,
	}
	s.registerHandlers()
	return s
}

// Start serves on stdin and stdout
func (s *Server) Start(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve handles one JSON-RPC message per line from r, writing replies to w,
// until r is exhausted or ctx is cancelled
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	enc := json.NewEncoder(w)
	logging.Info("mcp server started",
		zap.Int("tools", len(ToolDefinitions)),
		zap.Int("resources", len(ResourceDefinitions)))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := reader.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			if resp := s.handleMessage(ctx, line); resp != nil {
				if err := enc.Encode(resp); err != nil {
					return fmt.Errorf("write error: %w", err)
				}
			}
		}

		switch {
		case readErr != nil && ctx.Err() != nil:
			return ctx.Err()
		case readErr == io.EOF:
			logging.Info("mcp server stopped")
			return nil
		case readErr != nil:
			return fmt.Errorf("read error: %w", readErr)
		}
	}
}

func (s *Server) handleMessage(ctx context.Context, msg string) *jsonRPCResponse {
	var req jsonRPCRequest
	if err := json.Unmarshal([]byte(msg), &req); err != nil {
		return errorResponse(nil, codeParseError, "Parse error")
	}

	logging.Debug("mcp request", zap.String("method", req.Method))

	handler, ok := s.methods[req.Method]
	if !ok {
		if req.isNotification() {
			// initialized and other notifications need no reply
			return nil
		}
		return errorResponse(req.ID, codeMethodNotFound, "Method not found")
	}
	return handler(ctx, req)
}

func (s *Server) handleInitialize(_ context.Context, req jsonRPCRequest) *jsonRPCResponse {
	return resultResponse(req.ID, initializeResult{
		ProtocolVersion: protocolVersion,
		ServerInfo:      serverInfo{Name: serverName, Version: s.Version},
	})
}

func (s *Server) handlePing(_ context.Context, req jsonRPCRequest) *jsonRPCResponse {
	return resultResponse(req.ID, struct{}{})
}

func (s *Server) handleToolsList(_ context.Context, req jsonRPCRequest) *jsonRPCResponse {
	return resultResponse(req.ID, toolsListResult{Tools: ToolDefinitions})
}

func (s *Server) handleToolsCall(ctx context.Context, req jsonRPCRequest) *jsonRPCResponse {
	var params callToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params")
	}

	handler, ok := s.handlers[params.Name]
	if !ok {
		return errorResponse(req.ID, codeInvalidParams, fmt.Sprintf("Unknown tool: %s", params.Name))
	}

	log := logging.With(zap.String("tool", params.Name))
	start := time.Now()

	result, err := handler(ctx, params.Arguments)
	if err != nil {
		// Tool failures are reported in-band so the client can show them
		log.Warn("tool call failed", zap.Error(err))
		return resultResponse(req.ID, textResult(err.Error(), true))
	}
	log.Debug("tool call completed", zap.Duration("elapsed", time.Since(start)))

	text, ok := result.(string)
	if !ok {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Error("failed to encode tool result", zap.Error(err))
			return resultResponse(req.ID, textResult(err.Error(), true))
		}
		text = string(encoded)
	}
	return resultResponse(req.ID, textResult(text, false))
}

func (s *Server) handleResourcesList(_ context.Context, req jsonRPCRequest) *jsonRPCResponse {
	return resultResponse(req.ID, resourcesListResult{Resources: ResourceDefinitions})
}

func (s *Server) handleResourcesRead(ctx context.Context, req jsonRPCRequest) *jsonRPCResponse {
	var params readResourceParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params")
	}

	text, err := s.handleReadResource(ctx, params.URI)
	if err != nil {
		return errorResponse(req.ID, codeInvalidParams, err.Error())
	}

	return resultResponse(req.ID, readResourceResult{
		Contents: []resourceContent{{URI: params.URI, MimeType: "text/plain", Text: text}},
	})
}
