package config

import (
	"regexp"
)

// maxResolvePasses bounds chained substitution; chains deeper than this keep their residual tokens.
const maxResolvePasses = 5

var placeholderRegex = regexp.MustCompile(`\$\{([A-Za-z0-9_\-.]+)\}`)

// Vars is a flat variable table used for ${name} substitution
type Vars map[string]string

// Overlay returns a new table holding v's entries overridden by top's
func (v Vars) Overlay(top Vars) Vars {
	merged := make(Vars, len(v)+len(top))
	for k, val := range v {
		merged[k] = val
	}
	for k, val := range top {
		merged[k] = val
	}
	return merged
}

// Resolve substitutes ${name} placeholders in text using vars.
// Unknown names are left verbatim. Values that themselves contain placeholders are
// resolved by repeating the substitution until nothing changes or the pass limit is hit.
func Resolve(text string, vars Vars) string {
	if text == "" || len(vars) == 0 {
		return text
	}

	result := text
	for pass := 0; pass < maxResolvePasses; pass++ {
		changed := false
		result = placeholderRegex.ReplaceAllStringFunc(result, func(token string) string {
			name := placeholderRegex.FindStringSubmatch(token)[1]
			value, ok := vars[name]
			if !ok {
				return token
			}
			changed = true
			return value
		})
		if !changed {
			break
		}
	}
	return result
}

// Resolve substitutes placeholders in text using the table
func (v Vars) Resolve(text string) string {
	return Resolve(text, v)
}
