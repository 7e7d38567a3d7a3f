// Package slogx has [slog.Handler] implementations used to build command loggers.
package slogx
