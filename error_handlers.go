package wthread

// reportPanic hands a recovered loop panic to the OnPanic handler.
// If no handler is registered, the error is only logged and counted.
func (t *Thread[T]) reportPanic(err error) {
	if t.opts.OnPanic != nil {
		t.opts.OnPanic(err)
	}
}
