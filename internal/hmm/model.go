package hmm

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// StartTag is the pseudo-tag for the state before the first word. It only
// appears as a transition source.
const StartTag = "#"

// Model holds the transition and emission tables of a trained tagger.
// A Model must not be modified after construction; it may be shared by any
// number of decoders.
type Model struct {
	Transitions Table
	Emissions   Table
}

// NewModelFromCounts builds a model from raw transition and emission counts.
func NewModelFromCounts(transitions, emissions map[string]map[string]float64) (*Model, error) {
	trans, err := NewTableFromCounts(transitions)
	if err != nil {
		return nil, fmt.Errorf("transitions: %w", err)
	}
	emis, err := NewTableFromCounts(emissions)
	if err != nil {
		return nil, fmt.Errorf("emissions: %w", err)
	}
	return &Model{Transitions: trans, Emissions: emis}, nil
}

// Tags returns every tag the model can emit, sorted.
func (m *Model) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	add := func(tag string) {
		if tag == StartTag || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	for src, row := range m.Transitions {
		add(src)
		for dst := range row {
			add(dst)
		}
	}
	for tag := range m.Emissions {
		add(tag)
	}
	slices.Sort(tags)
	return tags
}

// DemoModel returns the hand-built model used by the demo command and the
// regression tests.
func DemoModel() *Model {
	m, err := NewModelFromCounts(
		map[string]map[string]float64{
			StartTag: {"NP": 3, "N": 7},
			"N":      {"CNJ": 2, "V": 8},
			"V":      {"CNJ": 2, "N": 4, "NP": 4},
			"NP":     {"CNJ": 2, "V": 8},
			"CNJ":    {"V": 4, "N": 4, "NP": 2},
		},
		map[string]map[string]float64{
			"N":   {"watch": 2, "cat": 4, "dog": 4},
			"V":   {"chase": 3, "watch": 6, "get": 1},
			"NP":  {"chase": 10},
			"CNJ": {"and": 10},
		},
	)
	if err != nil {
		panic(err)
	}
	return m
}
