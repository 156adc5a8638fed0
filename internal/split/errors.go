package split

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/splitpane/internal/dom"
	"github.com/sahilm/fuzzy"
)

// Sentinel errors for splitter construction
var (
	// ErrElementNotFound indicates a selector matched no element
	ErrElementNotFound = errors.New("element not found")

	// ErrInvalidOption indicates a configuration value the splitter cannot use
	ErrInvalidOption = errors.New("invalid splitter option")
)

// maxSuggestions bounds the ids offered in an ElementNotFoundError.
const maxSuggestions = 3

// ElementNotFoundError reports the selector that matched nothing, with the
// closest known ids when the surface can list them.
type ElementNotFoundError struct {
	Selector    string
	Suggestions []string
}

func (e *ElementNotFoundError) Error() string {
	msg := fmt.Sprintf("%v: %q", ErrElementNotFound, e.Selector)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

// Unwrap lets errors.Is match ErrElementNotFound.
func (e *ElementNotFoundError) Unwrap() error { return ErrElementNotFound }

func notFound(s dom.Surface, selector string) error {
	err := &ElementNotFoundError{Selector: selector}
	enum, ok := s.(dom.Enumerator)
	if !ok {
		return err
	}
	pattern := strings.TrimPrefix(selector, "#")
	if pattern == "" {
		return err
	}
	for _, m := range fuzzy.Find(pattern, enum.ElementIDs()) {
		err.Suggestions = append(err.Suggestions, "#"+m.Str)
		if len(err.Suggestions) == maxSuggestions {
			break
		}
	}
	return err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOption, fmt.Sprintf(format, args...))
}
