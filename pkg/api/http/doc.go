// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - The greeting at GET /
//   - Item lookup at GET /items/{item_id}, with integer coercion of item_id
//   - Health checks
//   - Prometheus metrics
//
// Path parameters that fail coercion are rejected with 422 and a list of
// validation errors under "detail"; unknown routes return 404 and known
// routes with the wrong method return 405.
package http
