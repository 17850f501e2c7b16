// Package hass provides the HTTP client for the Home Assistant REST API.
//
// The client performs authenticated, synchronous calls against a configured
// base URL using a long-lived bearer token. It exposes one generic request
// operation plus typed wrappers for the endpoints the bridge consumes:
//
//   - GET  /api/states                       current entity states
//   - GET  /api/config/area_registry         area registry
//   - GET  /api/config/device_registry       device registry
//   - GET  /api/config/entity_registry       entity registry
//   - POST /api/services/<domain>/<service>  service invocation
//
// Failure handling is deliberately thin: there are no retries and no backoff.
// Any transport error, non-2xx status or undecodable body is returned as an
// *UpstreamError wrapping the cause, and the caller decides how to surface
// it. Each call fetches fresh data; nothing is cached between requests.
package hass
