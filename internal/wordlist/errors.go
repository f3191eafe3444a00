package wordlist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSourceUnreadable   = errors.New("source unreadable")
	ErrWordlistUnreadable = errors.New("wordlist unreadable")
	ErrWordlistEmpty      = errors.New("wordlist empty")
	ErrOutputUnwritable   = errors.New("output unwritable")
	ErrNoSources          = errors.New("no readable sources")
	ErrLocked             = errors.New("wordlist locked")
	ErrCountOutOfRange    = errors.New("pick count out of range")
)

// Wrap tags err with marker and the operation/subject it happened in. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, operation, subject string, err error) error {
	detail := buildDetail(operation, subject)
	if marker == nil {
		marker = ErrOutputUnwritable
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns a short classification for err, suitable for log fields.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSourceUnreadable):
		return "source_unreadable"
	case errors.Is(err, ErrWordlistUnreadable):
		return "wordlist_unreadable"
	case errors.Is(err, ErrWordlistEmpty):
		return "wordlist_empty"
	case errors.Is(err, ErrOutputUnwritable):
		return "output_unwritable"
	case errors.Is(err, ErrNoSources):
		return "no_sources"
	case errors.Is(err, ErrLocked):
		return "locked"
	case errors.Is(err, ErrCountOutOfRange):
		return "count_out_of_range"
	default:
		return "unknown"
	}
}

func buildDetail(operation, subject string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if subject = strings.TrimSpace(subject); subject != "" {
		parts = append(parts, subject)
	}
	if len(parts) == 0 {
		return "wordlist failure"
	}
	return strings.Join(parts, " ")
}
