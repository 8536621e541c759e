package synth

import (
	"fmt"
	"strings"

	"github.com/nirvachan/onoe-sim/internal/rules"
	"github.com/nirvachan/onoe-sim/internal/seat"
)

// ExpectedCount is the size of a full dataset: 7 + 70 + 250.
const ExpectedCount = 327

// BuildDataset synthesizes every tier. Any failure aborts the whole batch.
func (s *Synthesizer) BuildDataset() ([]seat.Seat, error) {
	out := make([]seat.Seat, 0, ExpectedCount)
	for _, build := range []func() ([]seat.Seat, error){s.BuildNational, s.BuildState, s.BuildMunicipal} {
		batch, err := build()
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (s *Synthesizer) BuildNational() ([]seat.Seat, error) {
	out := make([]seat.Seat, 0, len(LokSabha))
	for _, ns := range LokSabha {
		st, err := s.Synthesize(ns.Name, seat.TierNational, ns.Category, ns.Params)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	if err := uniqueNames(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Synthesizer) BuildState() ([]seat.Seat, error) {
	out := make([]seat.Seat, 0, len(VidhanSabha))
	for _, entry := range VidhanSabha {
		name, category, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("%w: malformed roster entry %q", ErrInvalidInput, entry)
		}
		st, err := s.fromTable(rules.State, name, seat.TierState, category)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	if err := uniqueNames(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Synthesizer) BuildMunicipal() ([]seat.Seat, error) {
	var out []seat.Seat
	for _, z := range Zones {
		if z.End < z.Start {
			return nil, fmt.Errorf("%w: zone %s: end %d before start %d", ErrInvalidInput, z.Name, z.End, z.Start)
		}
		for i := z.Start; i <= z.End; i++ {
			st, err := s.fromTable(rules.Municipal, fmt.Sprintf("Ward %d (%s)", i, z.Name), seat.TierMunicipal, z.Category)
			if err != nil {
				return nil, err
			}
			out = append(out, st)
		}
	}
	if err := uniqueNames(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Synthesizer) fromTable(t rules.Table, name string, tier seat.Tier, category string) (seat.Seat, error) {
	p, err := t.Lookup(category)
	if err != nil {
		return seat.Seat{}, fmt.Errorf("%s: %w", name, err)
	}
	return s.Synthesize(name, tier, category, p)
}

func uniqueNames(seats []seat.Seat) error {
	seen := make(map[string]bool, len(seats))
	for _, st := range seats {
		if seen[st.Name] {
			return fmt.Errorf("%w: %q in tier %s", ErrDuplicateName, st.Name, st.Tier)
		}
		seen[st.Name] = true
	}
	return nil
}
