// Package api implements the HTTP API for awsranges.
//
// The serve command exposes the filtering pipeline over HTTP: the ranges
// document is held in memory and queried with the same filter terms the CLI
// accepts. Routing is built on chi with recovery, request logging, CORS and
// JSON content-type middleware.
//
// # Endpoints
//
//   - GET  /api/v1/prefixes  — filtered prefixes (repeatable "filter" param)
//   - GET  /api/v1/serial    — serial of the loaded document
//   - POST /api/v1/refresh   — re-fetch the document from its source
//   - GET  /health           — liveness probe
//
// All API errors are returned as a JSON envelope with a stable error code.
package api
