// Package http serves the accounts and posts REST API.
//
// routes.go wires the chi router: tracing, access logging, gzip, CORS and
// the request timeout wrap every route, and the session guard wraps the
// /api/post group. Handlers decode the request, call the service layer and
// answer with a [models.Envelope]; errors_mapper.go turns service and store
// errors into statuses.
package http
