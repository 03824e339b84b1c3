package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ScoredWord is a kept word together with its dataset score.
type ScoredWord struct {
	Word  string
	Score int64
}

// Infuse attaches a score to every word in keep and orders the result by
// score, highest first. Equal scores are ordered by word. Every kept word
// must be present in scores; otherwise all missing words are reported and
// no result is returned.
func Infuse(scores ScoreMap, keep KeepSet) ([]ScoredWord, error) {
	var missing *multierror.Error
	infused := make([]ScoredWord, 0, keep.Len())
	for _, word := range keep.Sorted() {
		score, ok := scores[word]
		if !ok {
			missing = multierror.Append(missing, &MissingWordError{Word: word})
			continue
		}
		infused = append(infused, ScoredWord{Word: word, Score: score})
	}
	if missing != nil {
		missing.ErrorFormat = joinErrors
		return nil, missing
	}

	sortInfused(infused)
	return infused, nil
}

func sortInfused(infused []ScoredWord) {
	sort.Slice(infused, func(i, j int) bool {
		if infused[i].Score != infused[j].Score {
			return infused[i].Score > infused[j].Score
		}
		return infused[i].Word < infused[j].Word
	})
}

// WriteInfused writes one "word score" line per entry.
func WriteInfused(w io.Writer, infused []ScoredWord) error {
	bw := bufio.NewWriter(w)
	for _, sw := range infused {
		if _, err := fmt.Fprintf(bw, "%s %d\n", sw.Word, sw.Score); err != nil {
			return errors.Wrap(err, "write result")
		}
	}
	return errors.Wrap(bw.Flush(), "write result")
}

type Infuser struct {
	log logrus.FieldLogger
}

func NewInfuser(logger logrus.FieldLogger) *Infuser {
	return &Infuser{log: logger}
}

// InfuseFiles loads the dataset and the word list, in that order, and joins
// them with Infuse.
func (inf *Infuser) InfuseFiles(datasetPath, wordListPath string) ([]ScoredWord, error) {
	scores, err := LoadDataset(datasetPath, inf.log.WithField("component", "dataset"))
	if err != nil {
		return nil, err
	}
	keep, err := LoadWordList(wordListPath, inf.log.WithField("component", "wordlist"))
	if err != nil {
		return nil, err
	}

	infused, err := Infuse(scores, keep)
	if err != nil {
		return nil, errors.Wrapf(err, "infuse %s into %s", datasetPath, wordListPath)
	}
	inf.log.WithField("component", "infuser").Infof("infused %d words", len(infused))
	return infused, nil
}
