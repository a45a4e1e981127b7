package normalize

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// ErrUnsafeInt marks a numeral with a leading zero. A leading zero on a
// scraped number usually means a significant digit was truncated
// upstream, so the strict path refuses to guess.
type ErrUnsafeInt struct {
	Value string
}

func (e ErrUnsafeInt) Error() string {
	return fmt.Sprintf("unsafe int: %q has a leading zero", e.Value)
}

// SafeInt converts a numeral string to an int, rejecting values that
// start with '0' (other than failing to parse at all).
func SafeInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0") && s != "0" {
		return 0, ErrUnsafeInt{Value: s}
	}
	return strconv.Atoi(s)
}

// SafeIntLenient is the warn-and-coerce variant of SafeInt for batch
// callers that must keep running: a leading-zero numeral is logged and
// converted anyway.
func SafeIntLenient(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0") && s != "0" {
		log.Printf("normalize: unsafe int %q, coercing", s)
	}
	return strconv.Atoi(s)
}
