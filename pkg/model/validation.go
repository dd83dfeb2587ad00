package model

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// FlagPrefix opens every valid flag.
	FlagPrefix = "LNC25{"
	// FlagPlaceholder is shown wherever a flag has not been entered yet.
	FlagPlaceholder = "LNC25{...}"

	MinPort = 1
	MaxPort = 65535

	PortErrorMessage = "Port must be a number between 1 and 65535"
	FlagErrorMessage = "Must match LNC25{...}"
	HintErrorMessage = "hint cost must be a non-negative number"

	CategoryErrorMessage   = "unknown category"
	DifficultyErrorMessage = "unknown difficulty"
)

var (
	flagPattern   = regexp.MustCompile(`^LNC25\{.*\}$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// FlagPattern exposes the anchored flag expression for schema generation.
func FlagPattern() string {
	return flagPattern.String()
}

// ValidFlag reports whether flag matches LNC25{...} anchored at both ends.
// The empty string is not a valid flag.
func ValidFlag(flag string) bool {
	return flagPattern.MatchString(flag)
}

// PortError returns the inline error for a raw port value, or "" when the
// value is empty or a decimal integer within [MinPort, MaxPort].
func PortError(raw string) string {
	if raw == "" {
		return ""
	}
	if _, ok := ParsePort(raw); !ok {
		return PortErrorMessage
	}
	return ""
}

// ParsePort converts a non-empty, all-digit port string into its numeric
// value. Leading zeros are accepted.
func ParsePort(raw string) (int, bool) {
	if !digitsPattern.MatchString(raw) {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < MinPort || n > MaxPort {
		return 0, false
	}
	return n, true
}

// ParseHintCost converts the staged cost input into a non-negative integer.
// Surrounding whitespace is ignored; anything else that is not a base-10
// integer is rejected.
func ParseHintCost(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
