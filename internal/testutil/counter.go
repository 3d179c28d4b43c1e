package testutil

import "sync/atomic"

// Counter counts callback invocations in tests.
type Counter struct {
	value uint64
}

func (c *Counter) Get() uint64 {
	return atomic.LoadUint64(&c.value)
}

func (c *Counter) Inc() uint64 {
	return atomic.AddUint64(&c.value, 1)
}
