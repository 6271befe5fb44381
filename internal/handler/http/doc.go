// Package http implements the REST transport of go-task-keeper.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, CORS, compression and bearer-token
// authentication are handled here before requests are delegated to the
// service layer. Every error leaves this package as {"error": "..."}.
package http
