// Package server holds the HTTP server configuration.
//
// While cmd/start handles the server startup, this package defines the
// configuration structure for the listening port, the API key and the upload
// body limit.
package server
