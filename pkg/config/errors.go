package config

import (
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// ConfigError reports a single rejected parameter
type ConfigError struct {
	Field      string      // dotted path, e.g. "sphere.radius"
	Value      interface{} // offending value
	Reason     string
	Suggestion string // closest valid enum value, if any
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: %s = %v: %s", e.Field, e.Value, e.Reason)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// suggestionThreshold is the minimum Jaro-Winkler similarity for a suggestion
const suggestionThreshold = 0.7

// closest returns the candidate most similar to value, or "" if none is close enough
func closest(value string, candidates []string) string {
	metric := metrics.NewJaroWinkler()
	metric.CaseSensitive = false

	best, bestScore := "", 0.0
	for _, c := range candidates {
		score := strutil.Similarity(value, c, metric)
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore < suggestionThreshold {
		return ""
	}
	return best
}

func unknownEnum(field, value string, valid []string) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Reason:     "must be one of " + strings.Join(valid, ", "),
		Suggestion: closest(value, valid),
	}
}
