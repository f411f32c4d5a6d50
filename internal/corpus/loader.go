package corpus

import (
	"os"
)

//go:generate mockgen -source=loader.go -destination=mock_loader.go -package=corpus

// CorpusLoader supplies a training corpus and reports when it last changed.
type CorpusLoader interface {
	Load() (*Corpus, error)
	GetCurrentMtime() (int64, error)
	Path() string
	Key() string
}

// FileLoader loads a sentence file and a tag file from disk.
type FileLoader struct {
	SentencePath string
	TagPath      string
}

func NewFileLoader(sentencePath, tagPath string) CorpusLoader {
	return &FileLoader{SentencePath: sentencePath, TagPath: tagPath}
}

func (f *FileLoader) Load() (*Corpus, error) {
	return LoadPair(f.SentencePath, f.TagPath)
}

// GetCurrentMtime returns the newer modification time of the two files.
func (f *FileLoader) GetCurrentMtime() (int64, error) {
	var latest int64
	for _, path := range []string{f.SentencePath, f.TagPath} {
		info, err := os.Stat(path)
		if err != nil {
			return 0, err
		}
		if mtime := info.ModTime().Unix(); mtime > latest {
			latest = mtime
		}
	}
	return latest, nil
}

func (f *FileLoader) Path() string {
	return f.SentencePath
}

func (f *FileLoader) Key() string {
	return "corpus:" + f.SentencePath + "|" + f.TagPath
}
