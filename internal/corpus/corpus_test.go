package corpus_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/hmmtag/internal/corpus"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_DropsTerminatorAndBlankLines(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sentences.txt",
		"The Dog barks .\n\nyou watch the cat .\n   \n")

	lines, err := corpus.LoadFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"the", "dog", "barks"},
		{"you", "watch", "the", "cat"},
	}, lines)
}

func TestLoadFile_KeepsCaseWhenAsked(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tags.txt", "DET N V .\n")

	lines, err := corpus.LoadFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"DET", "N", "V"}}, lines)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := corpus.LoadFile(filepath.Join(t.TempDir(), "nope.txt"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestLoadPair(t *testing.T) {
	dir := t.TempDir()
	sentences := writeFile(t, dir, "s.txt", "The dog barks .\nA cat sleeps .\n")
	tags := writeFile(t, dir, "t.txt", "DET N V .\nDET N V .\n")

	c, err := corpus.LoadPair(sentences, tags)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 6, c.Tokens())
	assert.Equal(t, []string{"the", "dog", "barks"}, c.Sentences[0])
	assert.Equal(t, []string{"DET", "N", "V"}, c.Tags[1])
}

func TestLoadPair_LineCountMismatch(t *testing.T) {
	dir := t.TempDir()
	sentences := writeFile(t, dir, "s.txt", "The dog barks .\nA cat sleeps .\n")
	tags := writeFile(t, dir, "t.txt", "DET N V .\n")

	_, err := corpus.LoadPair(sentences, tags)
	assert.Error(t, err)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"the", "dog", "barks"}, corpus.Tokenize("  The DOG\tbarks "))
	assert.Empty(t, corpus.Tokenize("   "))
}

func TestFileLoader_GetCurrentMtime(t *testing.T) {
	dir := t.TempDir()
	sentences := writeFile(t, dir, "s.txt", "dog .\n")
	tags := writeFile(t, dir, "t.txt", "N .\n")

	newer := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(tags, newer, newer))

	loader := corpus.NewFileLoader(sentences, tags)
	mtime, err := loader.GetCurrentMtime()
	require.NoError(t, err)
	assert.Equal(t, newer.Unix(), mtime)
	assert.Equal(t, sentences, loader.Path())
	assert.Contains(t, loader.Key(), "corpus:")

	c, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"N"}}, c.Tags)
}
