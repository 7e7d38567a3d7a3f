// Package signalx ties process signals to context cancellation, for shutting down servers gracefully.
package signalx
