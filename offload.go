package pix

import (
	"errors"
	"sync"
)

// ErrFallbackToSync indicates the background executor cannot take this
// operation. The caller transparently runs the synchronous algorithm
// instead.
var ErrFallbackToSync = errors.New("pix: falling back to synchronous execution")

// Executor is an optional background execution strategy for expensive
// whole-canvas operations (full dithering, adjustment passes over
// large canvases). It wraps the same pure synchronous algorithms; the
// core never requires it, and every dispatch has a mandatory
// synchronous fallback.
//
// Implementations typically ship the buffer to a worker goroutine or
// process, run op there, and copy the result back. Returning
// ErrFallbackToSync (or any error) makes the caller run op inline.
type Executor interface {
	// Name returns the executor name (e.g. "workerpool").
	Name() string

	// Run executes op against buf, possibly off-thread, and blocks
	// until the result is visible in buf. The returned boolean is
	// op's did-anything-change result.
	Run(buf *Buffer, op func(*Buffer) bool) (bool, error)
}

var (
	executorMu sync.RWMutex
	executor   Executor
)

// RegisterExecutor installs a background executor. Only one executor
// can be registered; subsequent calls replace the previous one. Pass
// nil to remove the executor and force synchronous execution.
func RegisterExecutor(e Executor) {
	executorMu.Lock()
	executor = e
	executorMu.Unlock()
	if e != nil {
		Logger().Debug("executor registered", "name", e.Name())
	}
}

// Dispatch runs op against buf through the registered executor when
// one is installed, falling back to running op synchronously when no
// executor is registered or the executor returns an error. The
// synchronous path is the source of truth; the executor is purely an
// execution strategy.
func Dispatch(buf *Buffer, op func(*Buffer) bool) bool {
	executorMu.RLock()
	e := executor
	executorMu.RUnlock()

	if e != nil {
		changed, err := e.Run(buf, op)
		if err == nil {
			return changed
		}
		Logger().Warn("executor dispatch failed, running synchronously",
			"executor", e.Name(), "err", err)
	}
	return op(buf)
}
