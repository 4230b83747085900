// Package config
package config

import "fmt"

// ValidResult is the outcome of checking a configuration section.
// originErr keeps the parser error behind a failure, if there was one.
type ValidResult struct {
	failed    bool
	err       error
	originErr error
}

func ValidPass() *ValidResult {
	return &ValidResult{}
}

func ValidFail(err error) *ValidResult {
	return &ValidResult{failed: true, err: err}
}

func ValidFailWith(err error, originErr error) *ValidResult {
	return &ValidResult{failed: true, err: err, originErr: originErr}
}

func (r *ValidResult) IsFail() bool {
	return r.failed
}

func (r *ValidResult) Error() error {
	return r.err
}

func (r *ValidResult) OriginErr() error { return r.originErr }

// Err wraps both errors so errors.Is matches either of them.
func (r *ValidResult) Err() error {
	if r.originErr == nil {
		return r.err
	}
	return fmt.Errorf("%w: %w", r.err, r.originErr)
}
