package worker

import (
	"fmt"

	"github.com/trknhr/hmmtag/internal/corpus"
	"github.com/trknhr/hmmtag/internal/hmm"
	"github.com/trknhr/hmmtag/internal/logger"
	"github.com/trknhr/hmmtag/internal/store"
)

// TrainWorker retrains a named model whenever its corpus files change.
type TrainWorker struct {
	models store.ModelStore
	meta   store.MetaStore
	loader corpus.CorpusLoader
	name   string
}

func NewTrainWorker(models store.ModelStore, meta store.MetaStore, loader corpus.CorpusLoader, name string) *TrainWorker {
	return &TrainWorker{models: models, meta: meta, loader: loader, name: name}
}

func (w *TrainWorker) Key() string  { return w.name + "@" + w.loader.Key() }
func (w *TrainWorker) Path() string { return w.loader.Path() }

func (w *TrainWorker) NeedsReload() bool {
	last, err := w.meta.GetLastProcessedMtime(w.Key(), w.Path())
	if err != nil {
		return true // conservative: try to retrain if error
	}
	curr, err := w.loader.GetCurrentMtime()
	if err != nil {
		return true // let Sync report the missing corpus
	}
	return curr > last
}

func (w *TrainWorker) Sync() error {
	// stat before loading: an edit made while training runs triggers the next sync
	mtime, err := w.loader.GetCurrentMtime()
	if err != nil {
		return fmt.Errorf("stat corpus: %w", err)
	}
	c, err := w.loader.Load()
	if err != nil {
		return err
	}
	model, err := hmm.Train(c.Sentences, c.Tags)
	if err != nil {
		return fmt.Errorf("train %s: %w", w.name, err)
	}
	if err := w.models.SaveModel(w.name, model); err != nil {
		return fmt.Errorf("save %s: %w", w.name, err)
	}
	logger.Info("trained model %s on %d sentences (%d tokens), %d tags",
		w.name, c.Len(), c.Tokens(), len(model.Tags()))
	return w.meta.UpdateMetadata(w.Key(), w.Path(), mtime)
}
