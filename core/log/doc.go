// Package log provides structured logging capabilities for the esta toolchain.
//
// Package: log
// Title: esta Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual information, multiple output formats, log levels,
//              and tight integration with the esta error handling system.
//              The parser, the frontend engine, and the command line all log
//              through it.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, console, and logfmt formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with request IDs and custom fields
// - Integration with the esta error system for automatic error logging
// - Performance metrics and timing measurements
//
// Usage:
//   import estalog "github.com/isgasho/esta/core/log"
//
//   // Create a logger with context
//   logger := estalog.New().
//     WithLevel(estalog.LevelInfo).
//     WithFormat(estalog.FormatJSON).
//     WithField("component", "parser").
//     WithRequestID("req-123")
//
//   // Log messages with different levels
//   logger.Info("source parsed", estalog.Field("statements", 12))
//   logger.Error("parse failed", estalog.Err(err))
//   logger.Debug("lexing source", estalog.Fields{
//     "source": "main.es",
//     "bytes":  1024,
//   })
//
//   // Log performance metrics
//   timer := logger.StartTimer("parse")
//   // ... run the parser
//   timer.Stop()
package log
