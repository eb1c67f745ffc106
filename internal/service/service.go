// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers hand it
// validated input, it enforces ownership and state transition rules,
// and it calls repositories to touch the data.
package service
