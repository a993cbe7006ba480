// File: doc.go
// Title: esta Frontend Package Documentation
// Description: Documents the driver layer of the esta front end. The
//              engine wraps the parser behind a request scoped API with
//              validation, timing, statistics, and file watching.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial engine implementation

/*
Package frontend drives the esta syntactic front end.

This package wraps the lexer and parser behind an engine that turns
source text into validated syntax trees:

  • Request tracking with unique identifiers per parse
  • Parse timing through the logging timer
  • Structural tree validation after every parse
  • Optional node statistics for parsed trees
  • Source file loading and fsnotify based watching

The engine integrates with the esta error handling and logging
infrastructure. Parsing is all or nothing: any lexical, syntactic, or
structural error yields a nil result and a structured error carrying
the request context.
*/
package frontend
