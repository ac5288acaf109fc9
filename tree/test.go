package tree

import (
	"context"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/errors"
	"golang.org/x/sync/errgroup"
)

/*
DefaultMaxConcurrency defines the maximum number of queries classified
simultaneously by ClassifyAll when no positive limit is given.
*/
const DefaultMaxConcurrency = 10

/*
Result holds the outcome of classifying one query: its label or the
error returned by Classify.
*/
type Result struct {
	Label string
	Err   error
}

/*
ClassifyAll takes a context, a slice of queries and a maximum number of
workers and classifies every query with the tree using up to that many
goroutines (DefaultMaxConcurrency if workers < 1). It returns a result
per query, in the same order as the queries.

Classification errors are reported on each query's result; ClassifyAll
only returns an error if the context is cancelled or times out before
every query is classified.
*/
func (t *Tree) ClassifyAll(ctx context.Context, queries [][]string, workers int) ([]Result, error) {
	if workers < 1 {
		workers = DefaultMaxConcurrency
	}
	results := make([]Result, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		i, q := i, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			label, err := t.Classify(q)
			results[i] = Result{label, err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

/*
Test takes a context, a table with labeled rows and a maximum number of
workers and returns three values:
  - the success rate of the tree classifying the rows of the table,
  - the number of rows the tree could not classify because of a value
    without branch (errors.ErrClassification),
  - an error if any row could not be classified for other reasons or the
    context was cancelled. If this is not nil, the other values will be
    0.0 and 0 respectively.
*/
func (t *Tree) Test(ctx context.Context, table dataset.Table, workers int) (float64, int, error) {
	if len(table) == 0 {
		return 0.0, 0, nil
	}
	results, err := t.ClassifyAll(ctx, table.Queries(), workers)
	if err != nil {
		return 0.0, 0, err
	}
	var successes float64
	var errCount int
	labels := table.Labels()
	for i, r := range results {
		if r.Err != nil {
			if !errors.Is(r.Err, errors.ErrClassification) {
				return 0.0, 0, errors.Wrapf(r.Err, "classifying row %d", i)
			}
			errCount++
			continue
		}
		if r.Label == labels[i] {
			successes += 1.0
		}
	}
	return successes / float64(len(table)), errCount, nil
}
