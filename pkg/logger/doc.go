// Package logger provides structured logging on top of log/slog with
// configurable levels and environment-aware output: text handlers for
// local development, JSON for production log ingestion.
package logger
