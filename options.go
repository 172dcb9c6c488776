package wthread

import (
	"context"
)

// Options configure a Thread.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Name identifies the thread in logs and errors. When empty the
	// loop's ThreadName is used, then its Go type name.
	Name string

	// PinToCPU restricts the worker's OS thread to CPU.
	PinToCPU bool
	CPU      int

	// Ctx carries the logger used for lifecycle messages.
	Ctx context.Context

	Metrics MetricsPolicy

	// OnPanic receives a *PanicError when Loop panics.
	OnPanic func(error)
}

func (o *Options) FillDefaults() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}
