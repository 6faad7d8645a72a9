package timeseries

import (
	"fmt"
	"strings"
)

// ParseHeader converts the header tokens from offset onwards into date keys.
// A token like 1/2/20 becomes 20-01-02, the order of the header is kept.
func ParseHeader(tokens []string, offset int) ([]string, error) {
	if offset < 0 || offset > len(tokens) {
		return nil, fmt.Errorf("%w: date offset %d out of %d columns", ErrMalformedHeaderToken, offset, len(tokens))
	}

	dates := make([]string, 0, len(tokens)-offset)
	for _, token := range tokens[offset:] {
		key, err := dateKey(token)
		if err != nil {
			return nil, err
		}
		dates = append(dates, key)
	}
	return dates, nil
}

func dateKey(token string) (string, error) {
	parts := strings.Split(strings.TrimSpace(token), "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrMalformedHeaderToken, token)
	}
	month, day, year := parts[0], parts[1], parts[2]
	return fmt.Sprintf("%s-%s-%s", year, padLeft(month), padLeft(day)), nil
}

func padLeft(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}
