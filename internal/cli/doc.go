// Package cli is responsible for reading the positional argument protocol
// that configurators use to call a target algorithm, and for handling
// process-level concerns like exit codes. It translates the raw argument list
// into a point to evaluate.
package cli
