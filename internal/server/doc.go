// Package server runs the HTTP server of the landing builder and stops it
// gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
