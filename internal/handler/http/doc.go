// Package http serves the landing builder REST API and the public preview
// pages.
//
// Document routes under /api/documents require a bearer token; the user ID
// it carries scopes every read and write. Register and login are rate
// limited per client IP. Document bodies are checked against the HashSHA256
// header when a hash key is configured. Tracing, access logging and gzip
// apply to every route.
package http
