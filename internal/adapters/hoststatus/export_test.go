// export_test.go exports private hooks for white-box testing.
package hoststatus

// SetLookPath replaces the PATH resolver used for tool detection.
func (p *Provider) SetLookPath(fn func(file string) (string, error)) {
	p.lookPath = fn
}
