// Package testhelpers provides testing utilities for githelper, including a
// scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"path/filepath"
	"testing"
)

// Scene is a temporary directory holding a Git repository named "repo"
// and, optionally, a bare "origin" remote it pushes to.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	Remote string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a scene in a test temp directory; cleanup is automatic.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := t.TempDir()
	repo, err := NewGitRepo(filepath.Join(dir, "repo"))
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{Dir: dir, Repo: repo}
	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// BasicSceneSetup creates a scene with a single commit on main.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// RemoteSceneSetup creates a commit on main and pushes it to a bare origin,
// leaving main tracking origin/main.
func RemoteSceneSetup(scene *Scene) error {
	if err := BasicSceneSetup(scene); err != nil {
		return err
	}
	remote, err := scene.Repo.CreateBareRemote("origin")
	if err != nil {
		return err
	}
	scene.Remote = remote
	return scene.Repo.PushBranch("origin", "main")
}

// Clone clones the scene's remote into a new directory named name.
func (s *Scene) Clone(t *testing.T, name string) *GitRepo {
	t.Helper()

	if s.Remote == "" {
		t.Fatalf("scene has no remote to clone")
	}
	repo, err := CloneGitRepo(s.Remote, filepath.Join(s.Dir, name))
	if err != nil {
		t.Fatalf("Failed to clone remote: %v", err)
	}
	return repo
}
