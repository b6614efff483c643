package core

import (
	"strconv"
	"strings"
)

// LookupInt reads an integer from cfg, leaving dst untouched when the key is
// missing or malformed.
func LookupInt(cfg map[string]string, key string, dst *int) bool {
	v, ok := cfg[key]
	if !ok {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return false
	}
	*dst = n
	return true
}

// LookupInt64 reads a 64-bit integer from cfg.
func LookupInt64(cfg map[string]string, key string, dst *int64) bool {
	v, ok := cfg[key]
	if !ok {
		return false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return false
	}
	*dst = n
	return true
}

// LookupFloat reads a float from cfg.
func LookupFloat(cfg map[string]string, key string, dst *float64) bool {
	v, ok := cfg[key]
	if !ok {
		return false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return false
	}
	*dst = f
	return true
}

// LookupBool reads a boolean from cfg.
func LookupBool(cfg map[string]string, key string, dst *bool) bool {
	v, ok := cfg[key]
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false
	}
	*dst = b
	return true
}

// LookupString reads a trimmed, non-empty string from cfg.
func LookupString(cfg map[string]string, key string, dst *string) bool {
	v, ok := cfg[key]
	if !ok {
		return false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	*dst = v
	return true
}
