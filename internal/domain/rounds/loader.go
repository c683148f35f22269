package rounds

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// roundsFile mirrors the YAML layout of a round definition file:
//
//	rounds:
//	  - name: club_18
//	    display_name: Club 18
//	    passes:
//	      - {arrows: 36, distance_m: 18, face_cm: 40, scoring: 10_zone}
type roundsFile struct {
	Rounds []Round `koanf:"rounds"`
}

// Load reads additional round definitions from a YAML file and returns
// a registry containing base plus the loaded rounds. Loaded rounds
// override base rounds that share a slug.
func Load(_ context.Context, base *Registry, path string) (*Registry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRounds, err)
	}

	var rf roundsFile
	if err := k.UnmarshalWithConf("", &rf, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRounds, err)
	}

	merged := make([]Round, 0, len(base.byName)+len(rf.Rounds))
	merged = append(merged, base.All()...)
	for _, r := range rf.Rounds {
		if r.Name == "" || len(r.Passes) == 0 {
			return nil, fmt.Errorf("%w: round %q must have a name and at least one pass", ErrLoadRounds, r.Name)
		}
		merged = append(merged, r)
	}
	return NewRegistry(merged...), nil
}
