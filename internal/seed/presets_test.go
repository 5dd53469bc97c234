package seed

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPreset_MergesWithDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preset.yml")
	content := []byte(`
name: travel
users: 5
captions:
  - "Chasing sunsets"
  - "Another day, another city"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	preset, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}

	if preset.Name != "travel" {
		t.Fatalf("expected name travel, got %q", preset.Name)
	}
	if preset.Users != 5 {
		t.Fatalf("expected 5 users, got %d", preset.Users)
	}
	// Unset fields keep the defaults.
	if preset.MaxFollowsPerUser != DefaultPreset().MaxFollowsPerUser {
		t.Fatalf("expected default max_follows_per_user, got %d", preset.MaxFollowsPerUser)
	}

	rng := rand.New(rand.NewSource(1))
	caption, ok := preset.RandomCaption(rng)
	if !ok || caption == "" {
		t.Fatal("expected a caption from the pool")
	}
}

func TestLoadPreset_RejectsBadValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preset.yml")
	if err := os.WriteFile(path, []byte("bookmark_chance: 2.5\n"), 0o600); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	if _, err := LoadPreset(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadPreset_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadPreset("/does/not/exist.yml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
