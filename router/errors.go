package router

import (
	"fmt"
	"strings"
)

// UnknownModelError reports an explicit directive that named no
// configured model or alias. It is surfaced to the caller rather than
// silently falling back, so operator typos are visible.
type UnknownModelError struct {
	// Directive is the directive text as given.
	Directive string
	// Known lists the configured model IDs, sorted.
	Known []string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("directive %q names no configured model (known: %s)",
		e.Directive, strings.Join(e.Known, ", "))
}
