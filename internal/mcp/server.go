package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/nerrad567/gray-logic-assist/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-assist/internal/tools"
)

// maxLineBytes bounds a single inbound message. Reports can be large on the
// way out, but inbound requests are small; 1 MiB is generous.
const maxLineBytes = 1 << 20

// ToolRegistry is the dispatch surface for tools/list and tools/call.
type ToolRegistry interface {
	List() []tools.Descriptor
	Call(ctx context.Context, name string, args json.RawMessage) (string, error)
}

// Server is the protocol dispatcher. It owns no transport: Serve is handed
// a reader and writer (stdin/stdout in production, buffers in tests).
type Server struct {
	registry ToolRegistry
	log      *logging.Logger
	name     string
	version  string
}

// NewServer creates a Server identifying itself with the given name and
// version in initialize responses.
func NewServer(registry ToolRegistry, log *logging.Logger, name, version string) *Server {
	return &Server{
		registry: registry,
		log:      log.With("component", "mcp"),
		name:     name,
		version:  version,
	}
}

// Serve runs the request loop until end-of-input or context cancellation.
// Each line is handled fully, including any upstream calls it triggers,
// before the next line is read. Requests with a correlation id get exactly
// one response; notifications get none; malformed lines get a parse error
// and the loop continues.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		s.log.Debug("message received", "raw", string(line))

		resp := s.dispatch(ctx, line)
		if resp == nil {
			continue
		}
		if err := s.write(w, resp); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	s.log.Info("end of input, shutting down")
	return nil
}

// write emits one newline-terminated response and logs it.
func (s *Server) write(w io.Writer, resp *Response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	s.log.Debug("response sent", "raw", string(payload))

	if _, err := w.Write(append(payload, '\n')); err != nil {
		return err
	}
	return nil
}

// dispatch decodes one message and routes it. A nil return means no
// response is owed (the message was a notification).
func (s *Server) dispatch(ctx context.Context, line []byte) *Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		s.log.Warn("undecodable message", "error", err)
		return &Response{
			JSONRPC: "2.0",
			Error:   &Error{Code: CodeParseError, Message: "parse error: " + err.Error()},
		}
	}

	s.log.Info("request", "method", req.Method, "id", correlationID(req.ID))

	var result any
	var rpcErr *Error

	switch req.Method {
	case MethodInitialize:
		result = s.initialize(req.Params)
	case MethodInitialized, "initialized":
		// Handshake acknowledgement; nothing to answer.
		s.log.Info("client initialised")
		return nil
	case MethodPing:
		result = struct{}{}
	case MethodToolsList:
		result = toolsListResult{Tools: s.registry.List()}
	case MethodToolsCall:
		result, rpcErr = s.toolsCall(ctx, req.Params)
	default:
		s.log.Warn("unknown method", "method", req.Method)
		rpcErr = &Error{Code: CodeMethodNotFound, Message: "method not found: " + req.Method}
	}

	// Notifications never get a response, not even an error one.
	if req.IsNotification() {
		return nil
	}

	resp := &Response{JSONRPC: "2.0", ID: req.ID}
	if rpcErr != nil {
		resp.Error = rpcErr
	} else {
		resp.Result = result
	}
	return resp
}

// initialize echoes the requested protocol version (or the default) plus
// the static capability descriptor. It does not change server behaviour.
func (s *Server) initialize(raw json.RawMessage) initializeResult {
	version := protocolVersionDefault
	if len(raw) > 0 {
		var params initializeParams
		if err := json.Unmarshal(raw, &params); err == nil && params.ProtocolVersion != "" {
			version = params.ProtocolVersion
		}
	}

	return initializeResult{
		ProtocolVersion: version,
		Capabilities:    capabilities{},
		ServerInfo:      serverInfo{Name: s.name, Version: s.version},
	}
}

// toolsCall unwraps the nested tool invocation and maps handler failures
// onto protocol error codes.
func (s *Server) toolsCall(ctx context.Context, raw json.RawMessage) (any, *Error) {
	var params toolsCallParams
	if len(raw) == 0 || json.Unmarshal(raw, &params) != nil || params.Name == "" {
		return nil, &Error{Code: CodeInvalidParams, Message: "invalid params: tool name required"}
	}

	text, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		switch {
		case errors.Is(err, tools.ErrUnknownTool):
			return nil, &Error{Code: CodeMethodNotFound, Message: err.Error()}
		case errors.Is(err, tools.ErrInvalidParams):
			return nil, &Error{Code: CodeInvalidParams, Message: err.Error()}
		default:
			// Upstream failure: surface the original failure text.
			return nil, &Error{Code: CodeInternalError, Message: err.Error()}
		}
	}

	return toolsCallResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
	}, nil
}

// correlationID renders a raw id for logging.
func correlationID(id json.RawMessage) string {
	if len(id) == 0 {
		return "null"
	}
	return string(id)
}
