package config

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// lifetimePattern разбирает строки вида "30s", "10m", "1h", "1d"
var lifetimePattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// ParseLifetime разбирает срок жизни токена в нотации сервера.
// time.ParseDuration не понимает суффикс "d", поэтому разбираем сами.
func ParseLifetime(s string) (time.Duration, error) {
	match := lifetimePattern.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("expected format like 30s, 10m, 1h or 1d")
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("invalid lifetime value: %w", err)
	}
	if value == 0 {
		return 0, fmt.Errorf("lifetime must be positive")
	}

	switch match[2] {
	case "s":
		return time.Duration(value) * time.Second, nil
	case "m":
		return time.Duration(value) * time.Minute, nil
	case "h":
		return time.Duration(value) * time.Hour, nil
	case "d":
		return time.Duration(value) * 24 * time.Hour, nil
	}

	// регулярка выше не пропустит другой суффикс
	return 0, fmt.Errorf("unknown lifetime unit %q", match[2])
}
