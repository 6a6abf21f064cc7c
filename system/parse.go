package system

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRow splits a comma-separated line of reals.
//
// A blank line yields no values. Every token is parsed, including those past
// limit, so a malformed token anywhere rejects the whole line with ErrParse.
// Values past limit are dropped and counted in dropped.
func ParseRow(line string, limit int) (values []float32, dropped int, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, 0, nil
	}
	tokens := strings.Split(line, ",")
	values = make([]float32, 0, min(len(tokens), limit))
	for pos, tok := range tokens {
		v, perr := strconv.ParseFloat(strings.TrimSpace(tok), 32)
		if perr != nil {
			return nil, 0, fmt.Errorf("token %d %q: %w", pos, strings.TrimSpace(tok), ErrParse)
		}
		if len(values) < limit {
			values = append(values, float32(v))
		} else {
			dropped++
		}
	}

	return values, dropped, nil
}
