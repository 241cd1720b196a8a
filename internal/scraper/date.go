package scraper

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the only accepted posting date format: "15 Mar 2024".
const DateLayout = "02 Jan 2006"

// ErrDateParse matches every *DateParseError.
var ErrDateParse = errors.New("date parse failed")

type DateParseError struct {
	Text string
	Err  error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unable to parse date %q (want %q): %v", e.Text, DateLayout, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

func (e *DateParseError) Is(target error) bool { return target == ErrDateParse }

// ParseDate parses text as DateLayout exactly, returning midnight UTC of that
// day. No other formats are tried.
func ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, &DateParseError{Text: text, Err: err}
	}
	return t, nil
}
