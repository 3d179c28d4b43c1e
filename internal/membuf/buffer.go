package membuf

// Buffer accumulates response body bytes delivered in chunks by the
// transfer engine's write callback. Growth is amortized O(1); running out
// of memory panics, which is the only acceptable outcome for an in-flight
// accumulation that can no longer be continued safely.
type Buffer struct {
	buf []byte
}

// Write appends one delivered chunk. It never returns an error, but keeps
// the io.Writer signature so the engine can treat the sink uniformly.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Len returns the running total of accumulated bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Take transfers ownership of the accumulated bytes and leaves the buffer
// empty. The returned slice must not be written through the buffer again.
func (b *Buffer) Take() []byte {
	out := b.buf
	b.buf = nil
	return out
}

// Reset discards any accumulated bytes.
func (b *Buffer) Reset() {
	b.buf = nil
}
