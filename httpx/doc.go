// Package httpx serves HTTP requests routed by the URI parser of a [route.Router], with middleware for request
// logging and panic recovery.
package httpx
