// Package handler is the HTTP entry point after the router.
//
// It parses and validates requests through the validation package,
// resolves the caller identity from middleware, and calls the
// appropriate service. Responses use the ok/item/items envelope.
package handler
