// Package mcp implements the line-delimited JSON-RPC 2.0 dispatcher.
//
// The dispatcher is a single-threaded request/response loop: it reads one
// newline-delimited message, routes it by method name over a closed set of
// methods (initialize, the initialized notification, ping, tools/list,
// tools/call), and writes back at most one correlated response before
// reading the next line. Upstream HTTP calls triggered by a request finish
// before the next message is read; back-pressure is the transport blocking
// on the response line.
//
// The initialize handshake is accepted but not enforced: every method is
// served regardless of whether the client initialised first.
//
// Response discipline:
//
//   - exactly one response per request that carries a correlation id
//   - zero responses for notifications (absent or null id)
//   - malformed input answers with a parse error (id null) and the loop
//     keeps running
//   - the loop terminates cleanly on end-of-input
//
// Error codes follow JSON-RPC 2.0: -32700 parse error, -32601 method or
// tool not found, -32602 invalid params, -32603 internal (upstream) error.
package mcp
