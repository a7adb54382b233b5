// Package services defines the shared error taxonomy for pipeline stages.
//
// Every stage wraps its internal failures with one of the exported sentinel
// markers before returning to the orchestrator, so callers can classify a
// failure with errors.Is without parsing message text.
package services
