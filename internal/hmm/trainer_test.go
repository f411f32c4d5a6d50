package hmm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/floats"
)

func trainingCorpus() ([][]string, [][]string) {
	sentences := [][]string{
		{"The", "dog", "barks"},
		{"the", "cat", "sleeps"},
		{"a", "dog", "sleeps"},
		{"you", "watch", "the", "dog"},
	}
	tags := [][]string{
		{"DET", "N", "V"},
		{"DET", "N", "V"},
		{"DET", "N", "V"},
		{"PRO", "V", "DET", "N"},
	}
	return sentences, tags
}

func TestTrain_RowsSumToOne(t *testing.T) {
	sentences, tags := trainingCorpus()
	m, err := Train(sentences, tags)
	require.NoError(t, err)

	for name, table := range map[string]Table{"transitions": m.Transitions, "emissions": m.Emissions} {
		for outer, row := range table {
			total := floats.LogSumExp(maps.Values(row))
			assert.InDelta(t, 0, total, 1e-9, "%s row %q", name, outer)
		}
	}
}

func TestTrain_Counts(t *testing.T) {
	sentences, tags := trainingCorpus()
	m, err := Train(sentences, tags)
	require.NoError(t, err)

	// start marker -> DET three times, -> PRO once
	assert.InDelta(t, math.Log(0.75), m.Transitions[StartTag]["DET"], 1e-12)
	assert.InDelta(t, math.Log(0.25), m.Transitions[StartTag]["PRO"], 1e-12)
	assert.InDelta(t, 0, m.Transitions["DET"]["N"], 1e-12)

	// words are lower-cased before counting
	assert.InDelta(t, math.Log(3.0/4.0), m.Emissions["DET"]["the"], 1e-12)
	_, ok := m.Emissions["DET"]["The"]
	assert.False(t, ok)

	// no sentence starts with a verb
	_, ok = m.Transitions[StartTag]["V"]
	assert.False(t, ok)
	assert.InDelta(t, 0, m.Transitions["V"]["DET"], 1e-12)
}

func TestTrain_MismatchedLengths(t *testing.T) {
	_, err := Train(
		[][]string{{"the", "dog", "barks"}},
		[][]string{{"DET", "N"}},
	)
	assert.ErrorIs(t, err, ErrDataMismatch)
}

func TestTrain_MismatchedCounts(t *testing.T) {
	m, err := Train(
		[][]string{{"dog"}, {"cat"}},
		[][]string{{"N"}},
	)
	assert.ErrorIs(t, err, ErrDataMismatch)
	assert.Nil(t, m)
}

func TestTrain_MismatchReportedBeforeCounting(t *testing.T) {
	// the bad row is last; nothing may be returned
	sentences, tags := trainingCorpus()
	sentences = append(sentences, []string{"dogs", "bark"})
	tags = append(tags, []string{"N"})

	m, err := Train(sentences, tags)
	assert.ErrorIs(t, err, ErrDataMismatch)
	assert.Contains(t, err.Error(), "sentence 4")
	assert.Nil(t, m)
}

func TestTrain_RejectsStartTag(t *testing.T) {
	_, err := Train([][]string{{"dog"}}, [][]string{{StartTag}})
	assert.ErrorIs(t, err, ErrDataMismatch)
}

func TestTrain_EmptyInput(t *testing.T) {
	m, err := Train(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, m.Transitions)
	assert.Empty(t, m.Emissions)

	words, err := NewDecoder(m).Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, words)
}
