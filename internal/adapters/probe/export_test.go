// export_test.go exports private hooks for white-box testing.
package probe

// SetLookPath replaces the PATH resolver used for runtime detection.
func (e *Executor) SetLookPath(fn func(file string) (string, error)) {
	e.lookPath = fn
}
