package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/hmmtag/internal/corpus"
	"github.com/trknhr/hmmtag/internal/hmm"
	"github.com/trknhr/hmmtag/internal/store"
	"github.com/trknhr/hmmtag/internal/worker"
)

type mocks struct {
	models *store.MockModelStore
	meta   *store.MockMetaStore
	loader *corpus.MockCorpusLoader
}

func newMocks(t *testing.T) mocks {
	ctrl := gomock.NewController(t)
	m := mocks{
		models: store.NewMockModelStore(ctrl),
		meta:   store.NewMockMetaStore(ctrl),
		loader: corpus.NewMockCorpusLoader(ctrl),
	}
	m.loader.EXPECT().Key().Return("corpus:s.txt|t.txt").AnyTimes()
	m.loader.EXPECT().Path().Return("s.txt").AnyTimes()
	return m
}

func TestTrainWorker_NeedsReload(t *testing.T) {
	m := newMocks(t)
	w := worker.NewTrainWorker(m.models, m.meta, m.loader, "simple")
	assert.Equal(t, "simple@corpus:s.txt|t.txt", w.Key())

	m.meta.EXPECT().GetLastProcessedMtime(w.Key(), "s.txt").Return(int64(100), nil)
	m.loader.EXPECT().GetCurrentMtime().Return(int64(200), nil)
	assert.True(t, w.NeedsReload())

	m.meta.EXPECT().GetLastProcessedMtime(w.Key(), "s.txt").Return(int64(200), nil)
	m.loader.EXPECT().GetCurrentMtime().Return(int64(200), nil)
	assert.False(t, w.NeedsReload())

	m.meta.EXPECT().GetLastProcessedMtime(w.Key(), "s.txt").Return(int64(0), errors.New("db closed"))
	assert.True(t, w.NeedsReload())

	m.meta.EXPECT().GetLastProcessedMtime(w.Key(), "s.txt").Return(int64(200), nil)
	m.loader.EXPECT().GetCurrentMtime().Return(int64(0), errors.New("stat s.txt: no such file"))
	assert.True(t, w.NeedsReload(), "a missing corpus must reach Sync")
}

func TestTrainWorker_Sync(t *testing.T) {
	m := newMocks(t)
	w := worker.NewTrainWorker(m.models, m.meta, m.loader, "simple")

	c := &corpus.Corpus{
		Sentences: [][]string{{"the", "dog", "barks"}},
		Tags:      [][]string{{"DET", "N", "V"}},
	}
	gomock.InOrder(
		m.loader.EXPECT().GetCurrentMtime().Return(int64(300), nil),
		m.loader.EXPECT().Load().Return(c, nil),
	)
	m.models.EXPECT().SaveModel("simple", gomock.Any()).DoAndReturn(func(_ string, model *hmm.Model) error {
		assert.Equal(t, []string{"DET", "N", "V"}, model.Tags())
		return nil
	})
	m.meta.EXPECT().UpdateMetadata(w.Key(), "s.txt", int64(300)).Return(nil)

	require.NoError(t, w.Sync())
}

func TestTrainWorker_SyncMismatch(t *testing.T) {
	m := newMocks(t)
	w := worker.NewTrainWorker(m.models, m.meta, m.loader, "simple")

	m.loader.EXPECT().GetCurrentMtime().Return(int64(300), nil)
	m.loader.EXPECT().Load().Return(&corpus.Corpus{
		Sentences: [][]string{{"the", "dog"}},
		Tags:      [][]string{{"DET"}},
	}, nil)

	err := w.Sync()
	assert.ErrorIs(t, err, hmm.ErrDataMismatch)
}

func TestTrainWorker_SyncMissingCorpus(t *testing.T) {
	m := newMocks(t)
	w := worker.NewTrainWorker(m.models, m.meta, m.loader, "simple")

	m.meta.EXPECT().GetLastProcessedMtime(gomock.Any(), gomock.Any()).Return(int64(100), nil)
	m.loader.EXPECT().GetCurrentMtime().Return(int64(0), errors.New("stat s.txt: no such file")).Times(2)

	ran, err := worker.RunSync(context.Background(), w, false)
	assert.ErrorContains(t, err, "no such file")
	assert.False(t, ran)
}

func TestRunSync_SkipsUpToDate(t *testing.T) {
	m := newMocks(t)
	w := worker.NewTrainWorker(m.models, m.meta, m.loader, "simple")

	m.meta.EXPECT().GetLastProcessedMtime(gomock.Any(), gomock.Any()).Return(int64(500), nil)
	m.loader.EXPECT().GetCurrentMtime().Return(int64(500), nil)

	ran, err := worker.RunSync(context.Background(), w, false)
	require.NoError(t, err)
	assert.False(t, ran)
}

type slowWorker struct{ release chan struct{} }

func (s *slowWorker) Key() string       { return "slow" }
func (s *slowWorker) Path() string      { return "" }
func (s *slowWorker) NeedsReload() bool { return true }
func (s *slowWorker) Sync() error {
	<-s.release
	return nil
}

func TestRunSync_Timeout(t *testing.T) {
	s := &slowWorker{release: make(chan struct{})}
	defer close(s.release)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	ran, err := worker.RunSync(ctx, s, false)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ran)
}
