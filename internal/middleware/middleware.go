// Package middleware contains the HTTP middleware stack: CORS,
// recovery, request logging, request ids, authentication, tracing,
// rate limiting, and the global error handler that maps application
// errors onto the wire envelope.
package middleware
