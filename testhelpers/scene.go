// Package testhelpers provides test fixtures shared across seqpipes tests.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene rooted in a temporary directory that is
// laid out like a workflow input/output tree.
type Scene struct {
	Dir string

	t *testing.T
}

// SceneSetup is a function type for populating a scene.
type SceneSetup func(*Scene)

// NewScene creates a new test scene. Cleanup is handled by t.TempDir.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	scene := &Scene{
		Dir: t.TempDir(),
		t:   t,
	}
	if setup != nil {
		setup(scene)
	}
	return scene
}

// WriteFile writes content to a path relative to the scene root, creating
// parent directories as needed, and returns the absolute path.
func (s *Scene) WriteFile(rel, content string) string {
	s.t.Helper()

	path := filepath.Join(s.Dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		s.t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		s.t.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

// WriteFastqs creates empty-ish FASTQ fixtures for the given base names and
// returns their absolute paths in the order given.
func (s *Scene) WriteFastqs(names ...string) []string {
	s.t.Helper()

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = s.WriteFile(filepath.Join("FASTQ", name), "@read1\nACGT\n+\nFFFF\n")
	}
	return paths
}

// WriteOrganism registers an organism YAML under shared/organisms/ the way
// a seqpipes installation ships them.
func (s *Scene) WriteOrganism(genome, content string) string {
	s.t.Helper()
	return s.WriteFile(filepath.Join("shared", "organisms", genome+".yaml"), content)
}
