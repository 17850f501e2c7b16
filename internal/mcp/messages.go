package mcp

import (
	"encoding/json"

	"github.com/nerrad567/gray-logic-assist/internal/tools"
)

// JSON-RPC 2.0 error codes used by the dispatcher.
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Method names the dispatcher routes. The set is closed; anything else is
// answered with CodeMethodNotFound (or silence, for notifications).
const (
	MethodInitialize  = "initialize"
	MethodInitialized = "notifications/initialized"
	MethodPing        = "ping"
	MethodToolsList   = "tools/list"
	MethodToolsCall   = "tools/call"
)

// protocolVersionDefault is echoed when the client does not request a
// specific protocol version.
const protocolVersionDefault = "2024-11-05"

// Request is one inbound JSON-RPC message. The id is kept raw so string,
// number and null correlation ids round-trip verbatim.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification reports whether the message carries no correlation id.
// An explicit null id counts as a notification.
func (r *Request) IsNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// Response is one outbound JSON-RPC message. Exactly one of Result and
// Error is set. A nil ID marshals as null, which is what a parse-error
// response requires.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// initializeParams is the subset of initialize parameters the bridge reads.
type initializeParams struct {
	ProtocolVersion string `json:"protocolVersion"`
}

// initializeResult is the static capability descriptor and server identity.
type initializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    capabilities `json:"capabilities"`
	ServerInfo      serverInfo   `json:"serverInfo"`
}

type capabilities struct {
	Tools struct{} `json:"tools"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// toolsListResult carries the static tool catalog.
type toolsListResult struct {
	Tools []tools.Descriptor `json:"tools"`
}

// toolsCallParams is the nested tool invocation shape.
type toolsCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// toolsCallResult wraps tool output as a single text content block.
type toolsCallResult struct {
	Content []ContentBlock `json:"content"`
}

// ContentBlock is one piece of tool result content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
