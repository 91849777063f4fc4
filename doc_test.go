package spella

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestErrorsWrap(t *testing.T) {
	err := fmt.Errorf("%w: index 7, length 3", ErrIndexOutOfBounds)
	if !errors.Is(err, ErrIndexOutOfBounds) || errors.Is(err, ErrInvalidRange) {
		t.Errorf("wrapped error not classified correctly: %v", err)
	}
	var serr SpellaError
	if !errors.As(err, &serr) || serr != ErrIndexOutOfBounds {
		t.Errorf("expected to extract SpellaError from %v", err)
	}
	if ErrBrokenInvariant.Error() != "broken invariant" {
		t.Errorf("unexpected message %q", ErrBrokenInvariant.Error())
	}
}

func TestCoreTracer(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	T().Debugf("core tracer is active")
	T().Infof("error %v", ErrNotInvertible)
}
