// Package analysis defines the error taxonomy shared by all calculators.
//
// Every calculator validates its inputs before computing anything and
// reports violations as InvalidParameterError. Theory methods that have
// no closed-form implementation report NotSupportedError instead of
// silently returning empty results.
package analysis

import "fmt"

// InvalidParameterError reports an input that failed validation.
// No partial computation is performed when one is returned.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// InvalidParameter builds an InvalidParameterError for the named input.
func InvalidParameter(param, reason string) error {
	return &InvalidParameterError{Param: param, Reason: reason}
}

// NotSupportedError reports a theory method, or a boundary-condition and
// load-type combination, for which no closed-form solution is implemented.
type NotSupportedError struct {
	Theory string
	Method string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: %s is not implemented", e.Theory, e.Method)
}

// NotSupported builds a NotSupportedError for the given theory and method.
func NotSupported(theory, method string) error {
	return &NotSupportedError{Theory: theory, Method: method}
}
