package mlmodel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/GarvitManralDev/fitlens-backend/pkg/features"
)

// Scorer is the capability the recommendation pipeline depends on: one call,
// a batch of rows in, per-row probabilities out. Output is length- and
// order-preserving — probas[i] belongs to rows[i].
type Scorer interface {
	ScoreBatch(ctx context.Context, rows []features.Row) ([]float64, error)
}

// ErrModelNotFound marks a missing artifact: a deployment problem, not a
// request problem. Callers should treat it as fatal rather than retry.
var ErrModelNotFound = errors.New("model artifact not found")

// LazyScorer loads the pipeline artifact from disk on first use and caches it
// for the process lifetime. The load is guarded by sync.Once so concurrent
// first requests deserialize the file exactly once; afterwards the pipeline
// is immutable and read without locking.
type LazyScorer struct {
	path string
	load func(string) (*Pipeline, error)

	once sync.Once
	pipe *Pipeline
	err  error
}

func NewLazyScorer(modelPath string) *LazyScorer {
	return &LazyScorer{path: modelPath, load: LoadPipeline}
}

func (s *LazyScorer) pipeline() (*Pipeline, error) {
	s.once.Do(func() {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			s.err = fmt.Errorf(
				"%w at %s; generate training data with `go run ./cmd/traindata` and train the artifact before serving",
				ErrModelNotFound, s.path,
			)
			return
		}
		s.pipe, s.err = s.load(s.path)
	})
	return s.pipe, s.err
}

// ScoreBatch scores all rows with a single cached pipeline. An empty batch
// returns an empty slice without touching the artifact, so a catalog that
// filters down to nothing never trips the missing-model error.
func (s *LazyScorer) ScoreBatch(_ context.Context, rows []features.Row) ([]float64, error) {
	if len(rows) == 0 {
		return []float64{}, nil
	}

	pipe, err := s.pipeline()
	if err != nil {
		return nil, err
	}

	probas := make([]float64, len(rows))
	for i, row := range rows {
		probas[i] = pipe.PredictProba(row)
	}
	return probas, nil
}
