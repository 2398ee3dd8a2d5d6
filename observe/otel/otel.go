package otel

import (
	"time"

	"github.com/NetPo4ki/go-handoff/sched"
)

// Nop is a no-op implementation of the sched.Observer interface.
// It serves as a placeholder for an OpenTelemetry-backed observer without adding dependencies.
type Nop struct{}

// NewNop returns a no-op observer.
func NewNop() *Nop { return &Nop{} }

func (*Nop) TaskEnqueued(sched.Attributes)                      {}
func (*Nop) TaskStarted(sched.Attributes)                       {}
func (*Nop) TaskFinished(sched.Attributes, time.Duration, bool) {}
