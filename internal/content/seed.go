package content

import (
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the fixture set a Store starts from.
type Seed struct {
	Articles []Article     `yaml:"articles"`
	Moments  []Moment      `yaml:"moments"`
	Shares   []ShareItem   `yaml:"shares"`
	Projects []Project     `yaml:"projects"`
	Gallery  []GalleryItem `yaml:"gallery"`

	Skills     []Skill       `yaml:"skills"`
	GameGenres []GameGenre   `yaml:"gameGenres"`
	Routine    []RoutineSlot `yaml:"routine"`
	Steps      []StepCount   `yaml:"steps"`
	PhotoStats []PhotoCount  `yaml:"photoStats"`
	Movies     []MovieCount  `yaml:"movies"`
	HeroImages []string      `yaml:"heroImages"`
}

// DefaultSeed decodes the embedded fixtures.
func DefaultSeed() (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(defaultSeed, &s); err != nil {
		return Seed{}, fmt.Errorf("decode embedded seed: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// LoadSeed decodes fixtures from r, e.g. a SEED_FILE override.
func LoadSeed(r io.Reader) (Seed, error) {
	var s Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// Validate rejects empty or repeated ids inside any one collection.
func (s Seed) Validate() error {
	checks := []error{
		uniqueIDs("articles", s.Articles),
		uniqueIDs("moments", s.Moments),
		uniqueIDs("shares", s.Shares),
		uniqueIDs("projects", s.Projects),
		uniqueIDs("gallery", s.Gallery),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

func uniqueIDs[T identified](collection string, items []T) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		id := it.recordID()
		if id == "" {
			return fmt.Errorf("%w: seed %s: empty id", ErrValidation, collection)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("seed: %w", duplicateID(collection, id))
		}
		seen[id] = struct{}{}
	}
	return nil
}
