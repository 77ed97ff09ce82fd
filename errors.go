package ecs

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// InvalidEntityError reports an operation on a handle that fails Valid().
type InvalidEntityError struct {
	Handle Handle
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("ecs: entity %#x is not valid", uint64(e.Handle))
}

// DuplicateComponentError reports adding a component type already present
// on the entity.
type DuplicateComponentError struct {
	Handle    Handle
	Component string
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("ecs: entity %#x already has component %s", uint64(e.Handle), e.Component)
}

// MissingComponentError reports a Get/Remove on a component the entity
// lacks.
type MissingComponentError struct {
	Handle    Handle
	Component string
}

func (e MissingComponentError) Error() string {
	return fmt.Sprintf("ecs: entity %#x has no component %s", uint64(e.Handle), e.Component)
}

// DeferredQueueOverflowError reports more deferred frees accumulated than
// the configured buffer holds.
type DeferredQueueOverflowError struct {
	Capacity int
}

func (e DeferredQueueOverflowError) Error() string {
	return fmt.Sprintf("ecs: deferred free queue exceeded capacity (%d)", e.Capacity)
}

// UnsupportedViewWidthError reports a view constructed with more component
// types than Config.MaxViewComponents allows.
type UnsupportedViewWidthError struct {
	Requested int
	Max       int
}

func (e UnsupportedViewWidthError) Error() string {
	return fmt.Sprintf("ecs: view requested %d component types, max is %d", e.Requested, e.Max)
}

// fatal routes a programmer-error to Config.OnFatal, wrapping it with a
// trace the way the rest of this codebase's errors are wrapped before being
// handed to a fatal sink.
func fatal(err error) {
	Config.OnFatal(bark.AddTrace(err))
}

// assert panics (via Config.OnFatal) with err if cond is false.
func assert(cond bool, err error) {
	if !cond {
		fatal(err)
	}
}
