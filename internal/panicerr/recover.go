package panicerr

// Recover calls f under a deferred recover, returning any panic as a non-nil
// error; f runs on the calling goroutine.
func Recover(name string, f func() error) (err error) {
	defer recoverPanicError(name, &err)
	return f()
}
