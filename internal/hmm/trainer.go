package hmm

import (
	"fmt"
	"strings"

	"github.com/trknhr/hmmtag/internal/logger"
)

// Train counts tag transitions (starting from StartTag) and lower-cased word
// emissions over aligned sentences, then normalizes both tables to
// log-probabilities. Nothing is counted unless every row is aligned.
func Train(sentences, tags [][]string) (*Model, error) {
	if err := checkAligned(sentences, tags); err != nil {
		return nil, err
	}

	transitions := make(map[string]map[string]float64)
	emissions := make(map[string]map[string]float64)
	tokens := 0

	for i, seq := range tags {
		prev := StartTag
		for j, tag := range seq {
			increment(transitions, prev, tag)
			increment(emissions, tag, strings.ToLower(sentences[i][j]))
			prev = tag
			tokens++
		}
	}

	m := &Model{
		Transitions: normalize(transitions),
		Emissions:   normalize(emissions),
	}
	logger.Debug("trained on %d sentences, %d tokens: %d tags, %d emission entries",
		len(sentences), tokens, len(m.Emissions), m.Emissions.Len())
	return m, nil
}

func checkAligned(sentences, tags [][]string) error {
	if len(sentences) != len(tags) {
		return fmt.Errorf("%w: %d sentences but %d tag sequences", ErrDataMismatch, len(sentences), len(tags))
	}
	for i := range sentences {
		if len(sentences[i]) != len(tags[i]) {
			return fmt.Errorf("%w: sentence %d has %d words but %d tags",
				ErrDataMismatch, i, len(sentences[i]), len(tags[i]))
		}
		for _, tag := range tags[i] {
			if tag == StartTag {
				return fmt.Errorf("%w: sentence %d uses reserved tag %q", ErrDataMismatch, i, StartTag)
			}
		}
	}
	return nil
}
