// Package tools implements the bridge's tool catalog and handlers.
//
// Three tools are exposed over the protocol:
//
//   - list_entities: render the grouped-by-room state report, optionally
//     filtered by a regular expression over entity ids
//   - set_light_state: turn a light on or off, with optional brightness,
//     colour temperature and RGB attributes
//   - set_switch_state: turn a switch on or off
//
// Dispatch is a closed switch over the known tool names; the catalog served
// by tools/list is static data, not derived from runtime state. Arguments
// are decoded into typed per-tool structs and validated at the boundary:
// a shape mismatch or missing required field fails with ErrInvalidParams
// before any upstream call is made.
package tools
