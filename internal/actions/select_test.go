package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fichil/multi-repo-maven-packager/internal/actions"
	"github.com/fichil/multi-repo-maven-packager/internal/config"
	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
)

func catalog() []config.NamedJob {
	job := func(include, name, marker string) config.NamedJob {
		return config.NamedJob{
			DisplayName: config.DisplayName(include, name),
			JobName:     name,
			IncludeName: include,
			Settings:    config.Settings{Vars: config.Vars{"marker": marker}},
		}
	}
	return []config.NamedJob{
		job("x", "y", "first"),
		job("x", "y", "second"),
		job("apps", "build", "apps"),
		job("libs", "build", "libs"),
		job("", "Deploy", "deploy"),
		job("apps", "web", "web"),
	}
}

func markers(jobs []config.NamedJob) []string {
	out := make([]string, len(jobs))
	for i, nj := range jobs {
		out[i] = nj.Settings.Vars["marker"]
	}
	return out
}

func TestSplitSelectors(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"1", "3", "5"}, actions.SplitSelectors(`1\3\5`))
	require.Equal(t, []string{"apps:web", "2"}, actions.SplitSelectors(" apps:web , ,2\\"))
	require.Empty(t, actions.SplitSelectors(" \\ , "))
}

func TestSelectJobs(t *testing.T) {
	t.Parallel()
	all := catalog()

	t.Run("numbers keep input order and duplicates", func(t *testing.T) {
		t.Parallel()
		got, err := actions.SelectJobs(`6\1\6`, all)
		require.NoError(t, err)
		require.Equal(t, []string{"web", "first", "web"}, markers(got))
	})

	t.Run("duplicate display names are distinct entries", func(t *testing.T) {
		t.Parallel()
		got, err := actions.SelectJobs("1,2", all)
		require.NoError(t, err)
		require.Equal(t, "x:y", got[0].DisplayName)
		require.Equal(t, "x:y", got[1].DisplayName)
		require.Equal(t, []string{"first", "second"}, markers(got))

		byName, err := actions.SelectJobs("x:y", all)
		require.NoError(t, err)
		require.Equal(t, []string{"first"}, markers(byName))
	})

	t.Run("bare job name must be unique", func(t *testing.T) {
		t.Parallel()
		_, err := actions.SelectJobs("build", all)
		require.ErrorIs(t, err, pkgerrors.ErrAmbiguousJob)
		require.Contains(t, err.Error(), "apps:build, libs:build")

		_, err = actions.SelectJobs("y", all)
		require.ErrorIs(t, err, pkgerrors.ErrAmbiguousJob)

		got, err := actions.SelectJobs("web", all)
		require.NoError(t, err)
		require.Equal(t, []string{"web"}, markers(got))
	})

	t.Run("display name ignoring case", func(t *testing.T) {
		t.Parallel()
		got, err := actions.SelectJobs("APPS:Build, deploy", all)
		require.NoError(t, err)
		require.Equal(t, []string{"apps", "deploy"}, markers(got))
	})

	t.Run("unknown selectors", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{"0", "7", "-1", "nope", `1\nope`} {
			_, err := actions.SelectJobs(input, all)
			require.ErrorIs(t, err, pkgerrors.ErrJobNotFound, input)
		}
	})

	t.Run("nothing selected", func(t *testing.T) {
		t.Parallel()
		_, err := actions.SelectJobs("  ", all)
		require.ErrorIs(t, err, pkgerrors.ErrNothingSelected)
	})
}
