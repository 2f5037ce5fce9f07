// Package http implements the HTTP transport of the reference quiz
// authority.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as request tracing, access logging, CORS and panic recovery
// are handled here before requests are delegated to [authority.Authority].
package http
