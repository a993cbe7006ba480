// File: engine.go
// Title: esta Frontend Engine
// Description: Implements the driver that turns esta source text into
//              validated syntax trees. Handles request tracking, parse
//              timing, tree validation, node statistics, and file
//              loading with structured error reporting.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial engine implementation

package frontend

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/isgasho/esta/ast"
	estaerror "github.com/isgasho/esta/core/error"
	estalog "github.com/isgasho/esta/core/log"
	"github.com/isgasho/esta/parser"
	"github.com/isgasho/esta/utils/stringx"
)

// Engine drives the syntactic front end: it parses source text into
// syntax trees, validates them, and reports structured results. An
// Engine is safe for concurrent use; parses are serialized because the
// underlying parser owns a single token cursor.
type Engine struct {
	parser  *parser.Parser
	logger  *estalog.Logger
	options Options
	mutex   sync.Mutex
}

// Options configures engine behavior
type Options struct {
	Logger        *estalog.Logger
	MaxSourceSize int           // Maximum accepted source length in bytes
	CollectStats  bool          // Gather node statistics for each parsed tree
	WatchDebounce time.Duration // Delay before re-parsing a changed file
}

// Result represents the outcome of a successful parse request
type Result struct {
	RequestID string        // Unique identifier assigned to the request
	Name      string        // Source name as given by the caller
	Source    string        // Raw source text
	Program   *ast.Program  // Parsed and validated syntax tree
	ParseTime time.Duration // Wall time spent parsing
	Stats     *Stats        // Node statistics, nil unless collected
}

// Stats summarizes the node population of a parsed tree
type Stats struct {
	Statements  int // Top level statements
	Functions   int // Function declarations
	Structs     int // Struct declarations
	Identifiers int // Identifier references
	Literals    int // Literal expressions
	Calls       int // Function calls
}

// New creates a new frontend engine with the given options
func New(opts Options) (*Engine, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = estalog.GetDefault()
	}
	if opts.MaxSourceSize == 0 {
		opts.MaxSourceSize = parser.DefaultMaxSourceSize
	}
	if opts.WatchDebounce == 0 {
		opts.WatchDebounce = DefaultWatchDebounce
	}

	p, err := parser.New(parser.Options{
		Logger:        opts.Logger,
		MaxSourceSize: opts.MaxSourceSize,
	})
	if err != nil {
		return nil, estaerror.Wrap(err, "creating parser failed").
			WithCode(estaerror.CodeInternal).
			WithOperation("frontend.New")
	}

	engine := &Engine{
		parser:  p,
		logger:  opts.Logger.WithField("component", "frontend"),
		options: opts,
	}

	engine.logger.Info("Frontend engine initialized", estalog.Fields{
		"maxSourceSize": opts.MaxSourceSize,
		"collectStats":  opts.CollectStats,
	})

	return engine, nil
}

// ParseSource parses named source text into a validated syntax tree.
// Parsing is all or nothing: on any error the result is nil.
func (e *Engine) ParseSource(name, source string) (*Result, error) {
	requestID := uuid.New().String()

	if len(source) > e.options.MaxSourceSize {
		return nil, estaerror.Newf("source exceeds maximum size: %d > %d bytes",
			len(source), e.options.MaxSourceSize).
			WithCode(estaerror.CodeSourceTooLarge).
			WithOperation("frontend.ParseSource").
			WithRequestID(requestID).
			WithDetail("source", name)
	}

	timer := e.logger.StartTimer("parse").
		WithField("requestID", requestID).
		WithField("source", name)

	e.mutex.Lock()
	program, err := e.parser.Parse(source)
	e.mutex.Unlock()

	if err != nil {
		timer.StopWithError(err)
		return nil, e.wrapParseError(err, name, requestID)
	}

	if errs := ast.ValidateAST(program); len(errs) > 0 {
		timer.StopWithError(errs[0])
		return nil, estaerror.Wrap(errs[0], "parsed tree failed validation").
			WithCode(estaerror.CodeMalformedTree).
			WithOperation("frontend.ParseSource").
			WithRequestID(requestID).
			WithDetail("source", name).
			WithDetail("validationErrors", len(errs))
	}

	elapsed := timer.Stop()

	result := &Result{
		RequestID: requestID,
		Name:      name,
		Source:    source,
		Program:   program,
		ParseTime: elapsed,
	}

	if e.options.CollectStats {
		result.Stats = gatherStats(program)
	}

	e.logger.Debug("Source parsed", estalog.Fields{
		"requestID":  requestID,
		"source":     name,
		"lines":      len(stringx.SplitLines(source)),
		"statements": len(program.Stmts),
		"parseTime":  elapsed.String(),
	})

	return result, nil
}

// ParseFile reads a source file and parses its contents. The file path
// becomes the source name of the result.
func (e *Engine) ParseFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, estaerror.Wrap(err, "reading source file failed").
			WithCode(estaerror.CodeIOError).
			WithOperation("frontend.ParseFile").
			WithDetail("path", path)
	}

	return e.ParseSource(path, string(data))
}

// Check parses and validates source text, reporting only the error
// surface. A nil return means the source is syntactically well formed.
func (e *Engine) Check(name, source string) error {
	_, err := e.ParseSource(name, source)
	return err
}

// Utility methods

// wrapParseError classifies a parser error and wraps it with request
// context
func (e *Engine) wrapParseError(err error, name, requestID string) error {
	code := estaerror.CodeSyntaxError

	var litErr *parser.LiteralError
	if errors.As(err, &litErr) {
		code = estaerror.CodeLiteralOverflow
	}

	return estaerror.Wrap(err, "parsing failed").
		WithCode(code).
		WithOperation("frontend.ParseSource").
		WithRequestID(requestID).
		WithDetail("source", name)
}

// gatherStats walks a parsed tree and counts its node population
func gatherStats(program *ast.Program) *Stats {
	collected := ast.CollectNodes(program)

	return &Stats{
		Statements:  len(program.Stmts),
		Functions:   len(collected.FunDecls),
		Structs:     len(collected.Structs),
		Identifiers: len(collected.Identifiers),
		Literals:    len(collected.Literals),
		Calls:       len(collected.Calls),
	}
}
