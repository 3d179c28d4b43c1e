package testutil

import (
	"context"

	"github.com/fetchkit/fetch-go/transport"
)

// FakeEngine is a transport.Engine with pluggable behavior for tests.
type FakeEngine struct {
	PerformFunc func(ctx context.Context, o *transport.Options) (*transport.Result, error)
	Performs    Counter
	Closed      bool
}

func (f *FakeEngine) Perform(ctx context.Context, o *transport.Options) (*transport.Result, error) {
	f.Performs.Inc()
	return f.PerformFunc(ctx, o)
}

func (f *FakeEngine) Close() {
	f.Closed = true
}

var _ transport.Engine = (*FakeEngine)(nil)

// DeliverLines feeds raw header lines through the options' header callback
// the way an engine would.
func DeliverLines(o *transport.Options, lines ...string) {
	if o.HeaderFunc == nil {
		return
	}
	for _, line := range lines {
		o.HeaderFunc(line)
	}
}

// DeliverBody feeds body chunks through the options' write callback,
// stopping at the first callback error.
func DeliverBody(o *transport.Options, chunks ...string) error {
	if o.WriteFunc == nil {
		return nil
	}
	for _, chunk := range chunks {
		if err := o.WriteFunc([]byte(chunk)); err != nil {
			return err
		}
	}
	return nil
}
