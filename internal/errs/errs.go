// Package errs defines the application error taxonomy.
//
// Every failure a handler, service, or repository reports is expressed
// as an *HTTPError so the global error handler can translate it onto
// the wire envelope without inspecting driver-level errors itself.
package errs
