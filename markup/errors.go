package markup

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMissingTag   = errors.New("element has no valid tag")
	ErrInvalidChild = errors.New("invalid child")
	ErrInvalidHTML  = errors.New("void element cannot hold html")
)

// MissingTagError is returned when an element is constructed without a
// usable tag, or when a zero Element is rendered.
type MissingTagError struct {
	Tag string
}

func (e *MissingTagError) Error() string {
	return fmt.Sprintf("%s: got %q", ErrMissingTag, e.Tag)
}

func (e *MissingTagError) Is(target error) bool { return target == ErrMissingTag }

// InvalidChildError reports a child that is neither an Element nor a string.
type InvalidChildError struct {
	Tag   string
	Value any
}

func (e *InvalidChildError) Error() string {
	return fmt.Sprintf("%s for <%s>: expected Element or string, got %T (%v)", ErrInvalidChild, e.Tag, e.Value, e.Value)
}

func (e *InvalidChildError) Is(target error) bool { return target == ErrInvalidChild }

// InvalidHTMLError is returned when inner html is set on a void element.
type InvalidHTMLError struct {
	Tag string
}

func (e *InvalidHTMLError) Error() string {
	return fmt.Sprintf("%s: <%s>", ErrInvalidHTML, e.Tag)
}

func (e *InvalidHTMLError) Is(target error) bool { return target == ErrInvalidHTML }

func invalidChild(tag string, v any) error {
	return errors.WithStack(&InvalidChildError{Tag: tag, Value: v})
}
