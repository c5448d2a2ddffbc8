package skemawire

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes reported by the marshaling engine.
const (
	CodeUnsupportedType = "unsupported_type"
	CodeRequired        = "required"
	CodeInvalidType     = "invalid_type"
	CodeUnknownModel    = "unknown_model"
	CodeModelMismatch   = "model_mismatch"
	CodeInvalidFormat   = "invalid_format"

	// CodeDuplicateKey is reported by codec.DecodeJSON in strict mode.
	CodeDuplicateKey = "duplicate_key"
)

// Issue represents a single mapping failure.
type Issue struct {
	Path    string // JSON Pointer of the offending value (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"type":"widget"}) for i18n
	// and observability.
	Params map[string]any
}

func (it Issue) String() string {
	if it.Message == "" {
		return fmt.Sprintf("%s at %s", it.Code, it.Path)
	}
	return fmt.Sprintf("%s at %s: %s", it.Code, it.Path, it.Message)
}

// Issues is a collection of mapping errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is / errors.As see through Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
