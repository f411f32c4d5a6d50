package hmm

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/trknhr/hmmtag/internal/logger"
)

// DefaultUnseenPenalty is the log-score used for a (tag, word) pair that was
// never observed in training.
const DefaultUnseenPenalty = -100.0

type Option func(*Decoder)

// WithUnseenPenalty overrides DefaultUnseenPenalty.
func WithUnseenPenalty(penalty float64) Option {
	return func(d *Decoder) {
		d.unseenPenalty = penalty
	}
}

// Decoder finds the most likely tag sequence for a sentence with the Viterbi
// algorithm. It only reads the model and is safe for concurrent use.
//
// Ties are resolved lexicographically: frontier tags and their successors are
// visited in sorted order and a candidate only replaces a strictly lower
// score, so the smallest source tag wins a tied destination and the smallest
// tag wins a tied final state.
type Decoder struct {
	model         *Model
	unseenPenalty float64
	successors    map[string][]string
}

func NewDecoder(m *Model, opts ...Option) *Decoder {
	d := &Decoder{
		model:         m,
		unseenPenalty: DefaultUnseenPenalty,
		successors:    make(map[string][]string, len(m.Transitions)),
	}
	for _, src := range m.Transitions.Keys() {
		d.successors[src], _ = m.Transitions.Row(src)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode returns one tag per word.
func (d *Decoder) Decode(words []string) ([]string, error) {
	tags, _, err := d.Score(words)
	return tags, err
}

// Score is Decode that also reports the log-score of the returned path.
func (d *Decoder) Score(words []string) ([]string, float64, error) {
	if len(words) == 0 {
		return []string{}, 0, nil
	}

	frontier := []string{StartTag}
	scores := map[string]float64{StartTag: 0}
	backtrace := make([]map[string]string, 0, len(words))

	for i, word := range words {
		word = strings.ToLower(word)
		nextScores := make(map[string]float64)
		back := make(map[string]string)

		for _, tag := range frontier {
			next, ok := d.successors[tag]
			if !ok {
				logger.Debug("tag %q has no outgoing transitions, skipped at position %d", tag, i)
				continue
			}
			for _, nextTag := range next {
				score := scores[tag] + d.model.Transitions[tag][nextTag] + d.emission(nextTag, word)
				if math.IsInf(score, -1) || math.IsNaN(score) {
					continue
				}
				if best, seen := nextScores[nextTag]; !seen || score > best {
					nextScores[nextTag] = score
					back[nextTag] = tag
				}
			}
		}

		if len(nextScores) == 0 {
			return nil, 0, fmt.Errorf("%w: nothing reachable at position %d (%q)", ErrNoViablePath, i, word)
		}
		frontier = maps.Keys(nextScores)
		slices.Sort(frontier)
		scores = nextScores
		backtrace = append(backtrace, back)
	}

	best := frontier[0]
	for _, tag := range frontier[1:] {
		if scores[tag] > scores[best] {
			best = tag
		}
	}

	path := make([]string, len(words))
	current := best
	for i := len(backtrace) - 1; i >= 0; i-- {
		path[i] = current
		current = backtrace[i][current]
	}
	return path, scores[best], nil
}

func (d *Decoder) emission(tag, word string) float64 {
	if lp, ok := d.model.Emissions.Lookup(tag, word); ok {
		return lp
	}
	return d.unseenPenalty
}
