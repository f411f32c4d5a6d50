package eval

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/trknhr/hmmtag/internal/corpus"
	"github.com/trknhr/hmmtag/internal/hmm"
	"github.com/trknhr/hmmtag/internal/logger"
)

// Tagger is satisfied by *hmm.Decoder.
type Tagger interface {
	Decode(words []string) ([]string, error)
}

type Result struct {
	Correct   int
	Total     int
	Sentences int
	// Failed counts sentences with no viable tag path; their tokens count
	// towards Total but never towards Correct.
	Failed int
}

// Accuracy returns the share of correctly tagged tokens in percent.
func (r Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

func (r Result) String() string {
	return fmt.Sprintf("%d/%d tokens correct (%.2f%%) over %d sentences, %d without a viable path",
		r.Correct, r.Total, r.Accuracy(), r.Sentences, r.Failed)
}

// Evaluate decodes every test sentence and compares the result element-wise
// with the gold tags. Up to workers sentences are decoded at once; a decoder
// error other than hmm.ErrNoViablePath aborts the run.
func Evaluate(ctx context.Context, tagger Tagger, c *corpus.Corpus, workers int) (Result, error) {
	if len(c.Sentences) != len(c.Tags) {
		return Result{}, fmt.Errorf("%w: %d sentences but %d tag sequences",
			hmm.ErrDataMismatch, len(c.Sentences), len(c.Tags))
	}
	if workers < 1 {
		workers = 1
	}

	var (
		mu     sync.Mutex
		result Result
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range c.Sentences {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			words, gold := c.Sentences[i], c.Tags[i]
			if len(words) != len(gold) {
				return fmt.Errorf("%w: sentence %d has %d words but %d tags",
					hmm.ErrDataMismatch, i, len(words), len(gold))
			}

			predicted, err := tagger.Decode(words)
			failed := false
			if errors.Is(err, hmm.ErrNoViablePath) {
				logger.WarnOnce("eval-no-viable-path", "some test sentences have no viable tag path (first: sentence %d)", i)
				logger.Debug("sentence %d: %v", i, err)
				failed = true
			} else if err != nil {
				return fmt.Errorf("sentence %d: %w", i, err)
			}

			correct := 0
			if !failed {
				for j := range gold {
					if predicted[j] == gold[j] {
						correct++
					}
				}
			}

			mu.Lock()
			defer mu.Unlock()
			result.Sentences++
			result.Total += len(gold)
			result.Correct += correct
			if failed {
				result.Failed++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return result, nil
}
