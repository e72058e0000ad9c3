package artifact_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fichil/multi-repo-maven-packager/internal/artifact"
	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
	"github.com/fichil/multi-repo-maven-packager/testhelpers"
)

type captureLog struct {
	infos []string
	warns []string
}

func (l *captureLog) Info(format string, args ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *captureLog) Warn(format string, args ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

type copyAnnouncement struct {
	from, to string
	auto     bool
}

type announcements []copyAnnouncement

func (a *announcements) AnnounceCopy(from, to string, auto bool) {
	*a = append(*a, copyAnnouncement{from: from, to: to, auto: auto})
}

func TestFindCandidates(t *testing.T) {
	t.Parallel()

	t.Run("filters by name and skips nested target content", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		scene.WriteFile("repo/target/app.war", "app")
		scene.WriteFile("repo/target/original-app.war", "orig")
		scene.WriteFile("repo/target/app-sources.war", "src")
		scene.WriteFile("repo/target/app.jar", "jar")
		scene.WriteFile("repo/target/classes/target/hidden.war", "hidden")
		scene.WriteFile("repo/web/target/web.war", "web")
		scene.WriteFile("repo/web/src/main.war", "not in target")

		got, err := artifact.FindCandidates(scene.Path("repo"))
		require.NoError(t, err)
		require.Equal(t, []string{
			scene.Path("repo", "target", "app.war"),
			scene.Path("repo", "web", "target", "web.war"),
		}, got)
	})

	t.Run("missing repository yields nothing", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		got, err := artifact.FindCandidates(scene.Path("absent"))
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("candidate names", func(t *testing.T) {
		t.Parallel()
		require.True(t, artifact.IsCandidateName("app.war"))
		require.False(t, artifact.IsCandidateName("original-app.war"))
		require.False(t, artifact.IsCandidateName("app-sources.war"))
		require.False(t, artifact.IsCandidateName("app.jar"))
	})
}

func TestChooseBest(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, nil)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	older := scene.WriteFileAt("a/old.war", "old", base)
	newer := scene.WriteFileAt("a/new.war", "new", base.Add(time.Hour))
	twin := scene.WriteFileAt("a/twin.war", "twin", base.Add(time.Hour))

	best, err := artifact.ChooseBest([]string{older, newer, twin})
	require.NoError(t, err)
	require.Equal(t, newer, best)

	best, err = artifact.ChooseBest([]string{twin, newer})
	require.NoError(t, err)
	require.Equal(t, twin, best)

	_, err = artifact.ChooseBest(nil)
	require.Error(t, err)
}

func TestCopier(t *testing.T) {
	t.Parallel()

	t.Run("creates parents and overwrites", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		from := scene.WriteFile("src/app.war", "fresh")
		scene.WriteFile("out/deep/app.war", "stale")

		c := artifact.NewCopier(false, &captureLog{})
		require.NoError(t, c.Copy(from, scene.Path("out", "deep", "app.war")))
		require.NoError(t, c.Copy(from, scene.Path("out", "new", "dir", "app.war")))
		require.Equal(t, "fresh", scene.ReadFile("out/deep/app.war"))
		require.Equal(t, "fresh", scene.ReadFile("out/new/dir/app.war"))
	})

	t.Run("copying a file onto itself keeps its content", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		from := scene.WriteFile("repo/target/app.war", "app-bytes")

		c := artifact.NewCopier(false, &captureLog{})
		require.NoError(t, c.Copy(from, from))
		require.NoError(t, c.Copy(from, scene.Path("repo", "target", ".", "app.war")))
		require.Equal(t, "app-bytes", scene.ReadFile("repo/target/app.war"))
	})

	t.Run("output directory on top of the repo leaves the artifact intact", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		scene.WriteFile("repo/target/app.war", "app-bytes")

		r := artifact.NewResolver(artifact.NewCopier(false, &captureLog{}), nil, &captureLog{})
		require.NoError(t, r.ResolveAndCopy(scene.Path("repo"), "target/app.war", scene.Path("repo", "target", "app.war")))
		require.Equal(t, "app-bytes", scene.ReadFile("repo/target/app.war"))
	})

	t.Run("rejects a directory source", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		dir := scene.Mkdir("src")
		err := artifact.NewCopier(false, &captureLog{}).Copy(dir, scene.Path("out", "x.war"))
		require.ErrorIs(t, err, pkgerrors.ErrNoArtifact)
	})

	t.Run("dry run touches nothing", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		log := &captureLog{}
		to := scene.Path("out", "app.war")

		require.NoError(t, artifact.NewCopier(true, log).Copy("/nowhere/app.war", to))
		require.NoDirExists(t, scene.Path("out"))
		require.Equal(t, []string{"[DRY-RUN] skip copy: /nowhere/app.war -> " + to}, log.infos)
	})
}

func TestResolveAndCopy(t *testing.T) {
	t.Parallel()

	t.Run("declared file is copied as is", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		from := scene.WriteFile("repo/dist/app.war", "declared")
		scene.WriteFile("repo/target/other.war", "scanned")
		var seen announcements
		to := scene.Path("out", "release.war")

		r := artifact.NewResolver(artifact.NewCopier(false, &captureLog{}), &seen, &captureLog{})
		require.NoError(t, r.ResolveAndCopy(scene.Path("repo"), "dist/app.war", to))
		require.Equal(t, "declared", scene.ReadFile("out/release.war"))
		require.Equal(t, announcements{{from: from, to: to}}, seen)
	})

	t.Run("fallback picks app.war over excluded names", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		now := time.Now()
		app := scene.WriteFileAt("repo/target/app.war", "app", now.Add(-time.Hour))
		scene.WriteFileAt("repo/target/original-app.war", "orig", now)
		scene.WriteFileAt("repo/target/app-sources.war", "src", now)
		var seen announcements
		log := &captureLog{}
		to := scene.Path("out", "app.war")

		r := artifact.NewResolver(artifact.NewCopier(false, log), &seen, log)
		require.NoError(t, r.ResolveAndCopy(scene.Path("repo"), "missing/app.war", to))
		require.Equal(t, "app", scene.ReadFile("out/app.war"))
		require.Equal(t, announcements{{from: app, to: to, auto: true}}, seen)
		require.Len(t, log.warns, 1)
		require.Contains(t, log.warns[0], filepath.Join("missing", "app.war"))
	})

	t.Run("directory destination receives every candidate", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		scene.WriteFile("repo/a/target/a.war", "a")
		scene.WriteFile("repo/b/target/b.war", "b")
		var seen announcements

		r := artifact.NewResolver(artifact.NewCopier(false, &captureLog{}), &seen, &captureLog{})
		require.NoError(t, r.ResolveAndCopy(scene.Path("repo"), "nope.war", scene.Path("out", "wars")))
		require.Equal(t, "a", scene.ReadFile("out/wars/a.war"))
		require.Equal(t, "b", scene.ReadFile("out/wars/b.war"))
		require.Len(t, seen, 2)
	})

	t.Run("no candidates is an error", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		scene.Mkdir("repo")
		var seen announcements

		r := artifact.NewResolver(artifact.NewCopier(false, &captureLog{}), &seen, &captureLog{})
		err := r.ResolveAndCopy(scene.Path("repo"), "target/app.war", scene.Path("out", "app.war"))
		require.ErrorIs(t, err, pkgerrors.ErrNoArtifact)
		require.Empty(t, seen)
	})

	t.Run("dry run announces the declared copy before anything is built", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		var seen announcements
		log := &captureLog{}
		to := scene.Path("out", "app.war")

		r := artifact.NewResolver(artifact.NewCopier(true, log), &seen, log)
		require.NoError(t, r.ResolveAndCopy(scene.Path("not-cloned"), "target/app.war", to))
		require.Equal(t, announcements{{from: scene.Path("not-cloned", "target", "app.war"), to: to}}, seen)
		require.NoDirExists(t, scene.Path("out"))
	})

	t.Run("dry run into a directory announces the file it would land as", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		var seen announcements
		log := &captureLog{}
		dir := scene.Path("out", "wars")

		r := artifact.NewResolver(artifact.NewCopier(true, log), &seen, log)
		require.NoError(t, r.ResolveAndCopy(scene.Path("not-cloned"), "target/app.war", dir))
		require.Equal(t, announcements{{
			from: scene.Path("not-cloned", "target", "app.war"),
			to:   filepath.Join(dir, "app.war"),
		}}, seen)
		require.NoDirExists(t, scene.Path("out"))
	})
}
