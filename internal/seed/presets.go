package seed

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset describes the shape of a seeded dataset. Presets live in YAML
// files so demo environments can tune content without a rebuild.
type Preset struct {
	Name  string `yaml:"name"`
	Users int    `yaml:"users"`
	Posts int    `yaml:"posts"`

	// BaseUsers are created first with predictable usernames.
	BaseUsers []string `yaml:"base_users"`

	// Captions override the generated post captions when present.
	Captions []string `yaml:"captions"`

	MaxFollowsPerUser  int     `yaml:"max_follows_per_user"`
	MaxLikesPerPost    int     `yaml:"max_likes_per_post"`
	MaxCommentsPerPost int     `yaml:"max_comments_per_post"`
	BookmarkChance     float32 `yaml:"bookmark_chance"`
	MaxConversations   int     `yaml:"max_conversations"`
}

// DefaultPreset returns the built-in demo dataset shape.
func DefaultPreset() *Preset {
	return &Preset{
		Name:               "default",
		Users:              25,
		Posts:              120,
		BaseUsers:          []string{"sid", "demo", "test"},
		MaxFollowsPerUser:  8,
		MaxLikesPerPost:    10,
		MaxCommentsPerPost: 4,
		BookmarkChance:     0.3,
		MaxConversations:   10,
	}
}

// LoadPreset reads a preset from a YAML file, filling gaps from the
// default preset.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}

	preset := DefaultPreset()
	if err := yaml.Unmarshal(data, preset); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	if err := preset.validate(); err != nil {
		return nil, fmt.Errorf("invalid preset %s: %w", path, err)
	}
	return preset, nil
}

func (p *Preset) validate() error {
	if p.Users < 0 || p.Posts < 0 {
		return fmt.Errorf("users and posts must be non-negative")
	}
	if p.BookmarkChance < 0 || p.BookmarkChance > 1 {
		return fmt.Errorf("bookmark_chance must be between 0 and 1")
	}
	return nil
}

// RandomCaption returns a caption from the preset pool, if any.
func (p *Preset) RandomCaption(rng *rand.Rand) (string, bool) {
	if len(p.Captions) == 0 {
		return "", false
	}
	return p.Captions[rng.Intn(len(p.Captions))], true
}
