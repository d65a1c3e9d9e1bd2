package rowflow

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// SchemaError occurs when a Row lacks a required column, or holds a value of
// the wrong kind for the requested operation
type SchemaError struct {
	Column string
	Reason string
}

// Error returns a textual representation of this SchemaError
func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %s: %s", e.Column, e.Reason)
}

func missingColumn(col string) error {
	return &SchemaError{Column: col, Reason: "missing from row"}
}

func wrongKind(col string, want Kind, got Kind) error {
	return &SchemaError{Column: col, Reason: fmt.Sprintf("expected %s value, got %s", want, got)}
}

// OrderingViolationError occurs when Reduce or Join observe a stream that is
// not sorted ascending by its key columns. Key is the offending key, Previous
// the greatest key of any group closed before it.
type OrderingViolationError struct {
	Key      GroupKey
	Previous GroupKey
}

// Error returns a textual representation of this OrderingViolationError
func (e *OrderingViolationError) Error() string {
	return fmt.Sprintf("stream is not sorted by [%s]: key %s follows %s",
		strings.Join(e.Key.Columns, ", "), e.Key, e.Previous)
}

// StrategyError occurs when a Mapper, Reducer or Joiner panics. Errors
// returned by user-supplied functions are propagated as they are and never
// wrapped in a StrategyError.
type StrategyError struct {
	Strategy string
	Panic    interface{}
	Stack    string
}

// Error returns a textual representation of this StrategyError
func (e *StrategyError) Error() string {
	return fmt.Sprintf("%s panic: %v", e.Strategy, e.Panic)
}

// Unwrap returns the panic value if it was an error
func (e *StrategyError) Unwrap() error {
	if err, ok := e.Panic.(error); ok {
		return err
	}
	return nil
}

func recovered(strategy string, r interface{}) error {
	return &StrategyError{Strategy: strategy, Panic: r, Stack: string(debug.Stack())}
}

// KeyConfigError describes one problem with the key columns given to Reduce
// or Join. Problems are reported together as a *multierror.Error.
type KeyConfigError struct {
	Column string
	Reason string
}

// Error returns a textual representation of this KeyConfigError
func (e *KeyConfigError) Error() string {
	if e.Column == "" {
		return "key columns: " + e.Reason
	}
	return fmt.Sprintf("key column %q: %s", e.Column, e.Reason)
}

// checkKeys validates a key column list before any input is pulled
func checkKeys(keys []string) error {
	var multierr *multierror.Error
	if len(keys) == 0 {
		multierr = multierror.Append(multierr, &KeyConfigError{Reason: "at least one key column is required"})
	}
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if key == "" {
			multierr = multierror.Append(multierr, &KeyConfigError{Reason: "empty column name"})
			continue
		}
		if seen[key] {
			multierr = multierror.Append(multierr, &KeyConfigError{Column: key, Reason: "listed more than once"})
		}
		seen[key] = true
	}
	return multierr.ErrorOrNil()
}
