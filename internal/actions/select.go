package actions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fichil/multi-repo-maven-packager/internal/config"
	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
)

// SplitSelectors splits operator input such as `1\3\5` or "apps:web, core" into
// trimmed, non-blank tokens
func SplitSelectors(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == '\\' || r == ','
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// SelectJobs resolves every selector token in input against all and returns the jobs in
// input order. Duplicates are kept.
func SelectJobs(input string, all []config.NamedJob) ([]config.NamedJob, error) {
	tokens := SplitSelectors(input)
	if len(tokens) == 0 {
		return nil, pkgerrors.ErrNothingSelected
	}

	selected := make([]config.NamedJob, 0, len(tokens))
	for _, token := range tokens {
		nj, err := FindJob(token, all)
		if err != nil {
			return nil, err
		}
		selected = append(selected, nj)
	}
	return selected, nil
}

// FindJob resolves one selector: a 1-based number, an exact display name (first match
// wins), a bare job name that must be unique, or a display name ignoring case.
func FindJob(token string, all []config.NamedJob) (config.NamedJob, error) {
	token = strings.TrimSpace(token)

	if n, err := strconv.Atoi(token); err == nil {
		if n < 1 || n > len(all) {
			return config.NamedJob{}, pkgerrors.NewJobNotFoundError(token)
		}
		return all[n-1], nil
	}

	for _, nj := range all {
		if nj.DisplayName == token {
			return nj, nil
		}
	}

	var byName []config.NamedJob
	for _, nj := range all {
		if nj.JobName == token {
			byName = append(byName, nj)
		}
	}
	switch len(byName) {
	case 0:
	case 1:
		return byName[0], nil
	default:
		names := make([]string, len(byName))
		for i, nj := range byName {
			names[i] = nj.DisplayName
		}
		return config.NamedJob{}, fmt.Errorf("%w: %q matches %s", pkgerrors.ErrAmbiguousJob, token, strings.Join(names, ", "))
	}

	for _, nj := range all {
		if strings.EqualFold(nj.DisplayName, token) {
			return nj, nil
		}
	}

	return config.NamedJob{}, pkgerrors.NewJobNotFoundError(token)
}
