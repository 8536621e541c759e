package pressure

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidProfile = errors.New("invalid stakeholder profile")

//go:embed stakeholders.yaml
var defaultProfiles []byte

type Stakeholder struct {
	Key             string  `yaml:"key" json:"key"`
	Name            string  `yaml:"name" json:"name"`
	Description     string  `yaml:"description" json:"description"`
	Tooltip         string  `yaml:"tooltip" json:"tooltip"`
	Reach           float64 `yaml:"reach" json:"reach"`
	CostSensitivity float64 `yaml:"costSensitivity" json:"costSensitivity"`
}

// Default returns the built-in profiles.
func Default() []Stakeholder {
	out, err := Parse(defaultProfiles)
	if err != nil {
		panic(fmt.Sprintf("embedded stakeholders.yaml: %v", err))
	}
	return out
}

// Load reads profiles from path, or returns Default when path is empty.
func Load(path string) ([]Stakeholder, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func Read(r io.Reader) ([]Stakeholder, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) ([]Stakeholder, error) {
	var out []Stakeholder
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("parse stakeholders: %w", err)
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate checks key uniqueness and the reach and sensitivity ranges.
func Validate(profiles []Stakeholder) error {
	if len(profiles) == 0 {
		return fmt.Errorf("%w: no profiles", ErrInvalidProfile)
	}
	seen := map[string]bool{}
	for _, s := range profiles {
		k := strings.TrimSpace(s.Key)
		switch {
		case k == "":
			return fmt.Errorf("%w: empty key", ErrInvalidProfile)
		case seen[k]:
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidProfile, k)
		case !finite(s.Reach) || !finite(s.CostSensitivity):
			return fmt.Errorf("%w: %s: non-finite reach or cost sensitivity", ErrInvalidProfile, k)
		case s.Reach < 0 || s.Reach > 1:
			return fmt.Errorf("%w: %s: reach %.2f outside [0,1]", ErrInvalidProfile, k, s.Reach)
		case s.CostSensitivity < 0:
			return fmt.Errorf("%w: %s: negative cost sensitivity", ErrInvalidProfile, k)
		}
		seen[k] = true
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
