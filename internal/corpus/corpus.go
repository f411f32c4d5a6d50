package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/unixpickle/essentials"
)

// Corpus is a set of aligned sentences and tag sequences.
type Corpus struct {
	Sentences [][]string
	Tags      [][]string
}

// Len returns the number of sentences.
func (c *Corpus) Len() int {
	return len(c.Sentences)
}

// Tokens returns the number of words over all sentences.
func (c *Corpus) Tokens() int {
	n := 0
	for _, s := range c.Sentences {
		n += len(s)
	}
	return n
}

// Tokenize splits a line of free text into lower-cased words.
func Tokenize(line string) []string {
	return strings.Fields(strings.ToLower(line))
}

// LoadFile reads one sentence per non-empty line. Each line is split on
// whitespace and its final token, the sentence terminator, is dropped.
// Words are lower-cased when lower is set.
func LoadFile(path string, lower bool) (lines [][]string, err error) {
	defer essentials.AddCtxTo("load "+path, &err)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if lower {
			line = strings.ToLower(line)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, fields[:len(fields)-1])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// LoadPair loads a sentence file and its tag file. Sentences are lower-cased,
// tags are kept as written. Alignment is checked by the trainer, but a
// differing line count is reported here with both paths.
func LoadPair(sentencePath, tagPath string) (*Corpus, error) {
	sentences, err := LoadFile(sentencePath, true)
	if err != nil {
		return nil, err
	}
	tags, err := LoadFile(tagPath, false)
	if err != nil {
		return nil, err
	}
	if len(sentences) != len(tags) {
		return nil, fmt.Errorf("%s has %d sentences but %s has %d tag lines",
			sentencePath, len(sentences), tagPath, len(tags))
	}
	return &Corpus{Sentences: sentences, Tags: tags}, nil
}
