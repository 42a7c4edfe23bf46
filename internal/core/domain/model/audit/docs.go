// Package audit provides the domain model for API call auditing.
//
// Every inbound call under the audited path prefix produces exactly one
// Record holding the request/response pair, the returned status, and the
// correlation id that the caller also received as a response header.
// Records are append-only: created once after the call completes and never
// mutated or deleted afterward.
package audit
