package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "studyhub/internal/platform/errors"
)

// DailySpec turns HH:MM into a six-field cron spec that fires once a day.
func DailySpec(at string) (string, error) {
	parts := strings.Split(strings.TrimSpace(at), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: time %q, expected HH:MM", apperrors.ErrInvalidInput, at)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: hour in %q", apperrors.ErrInvalidInput, at)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: minute in %q", apperrors.ErrInvalidInput, at)
	}
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}

// IntervalSpec repeats every interval, rounded down to whole seconds.
func IntervalSpec(every time.Duration) (string, error) {
	secs := int(every / time.Second)
	if secs <= 0 {
		return "", fmt.Errorf("%w: interval %s must be at least 1s", apperrors.ErrInvalidInput, every)
	}
	return fmt.Sprintf("@every %ds", secs), nil
}
