package actors

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"gopkg.in/yaml.v3"
)

// rosterFile is the YAML roster layout. Actor fields use their JSON names.
type rosterFile struct {
	Actors []map[string]interface{} `yaml:"actors"`
}

// LoadRoster reads actors from a YAML roster file
func LoadRoster(path string) ([]*entities.Actor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes roster contents, see LoadRoster
func ParseRoster(data []byte) ([]*entities.Actor, error) {
	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	out := make([]*entities.Actor, 0, len(file.Actors))
	seen := make(map[string]bool, len(file.Actors))
	for i, raw := range file.Actors {
		// Round trip through JSON so the roster shares the stored record's field names
		encoded, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}

		var actor entities.Actor
		if err := json.Unmarshal(encoded, &actor); err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		if actor.ID == "" {
			return nil, fmt.Errorf("roster entry %d has no id", i)
		}
		if seen[actor.ID] {
			return nil, fmt.Errorf("roster lists %s twice", actor.ID)
		}
		seen[actor.ID] = true

		out = append(out, &actor)
	}

	return out, nil
}

// Seed saves every actor that is not stored yet and returns how many were added.
// New actors get their pool maxima from the health and aura formulas. Stored
// actors keep their current state.
func Seed(ctx context.Context, repo Repository, roster []*entities.Actor, set formula.Set, evaluator formula.Evaluator) (int, error) {
	added := 0
	for _, actor := range roster {
		_, err := repo.Get(ctx, actor.ID)
		if err == nil {
			continue
		}
		if !tgerr.IsNotFound(err) {
			return added, err
		}

		if err := actor.RefreshDerivedStats(set, evaluator); err != nil {
			return added, tgerr.Wrapf(err, "failed to derive stats for %s", actor.ID)
		}

		if err := repo.Save(ctx, actor); err != nil {
			return added, fmt.Errorf("failed to seed %s: %w", actor.ID, err)
		}
		added++
	}
	return added, nil
}
