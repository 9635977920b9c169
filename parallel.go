package spirits

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minParallelChunk is the smallest number of candidates worth handing to a
// separate goroutine. Below it the scheduling overhead outweighs the work.
const minParallelChunk = 256

// FindMatchesParallel is FindMatches split across runtime.NumCPU()
// goroutines. Results are merged in input order and are identical to
// FindMatches. It returns ctx.Err() if ctx is cancelled before all chunks
// have run.
//
// For short candidate lists it simply calls FindMatches.
func FindMatchesParallel[P Like](ctx context.Context, pattern P, candidates []string) ([]string, error) {
	p := From(pattern)

	chunks := splitChunks(candidates)
	if len(chunks) <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return p.FindMatches(candidates...), nil
	}

	results := make([][]string, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(chunks))
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.FindMatches(chunk...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	merged := make([]string, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged, nil
}

// MapParallel is Map with each pattern's candidates filtered by
// FindMatchesParallel.
func MapParallel[P Like](ctx context.Context, patterns []P, candidates []string) (map[string][]string, error) {
	out := make(map[string][]string, len(patterns))
	for _, raw := range patterns {
		p := From(raw)
		matches, err := FindMatchesParallel(ctx, p, candidates)
		if err != nil {
			return nil, err
		}
		out[p.text] = matches
	}
	return out, nil
}

// GroupsParallel is Set.Groups using FindMatchesParallel for each pattern.
func (s *Set) GroupsParallel(ctx context.Context, candidates []string) ([]Group, error) {
	groups := make([]Group, 0, len(s.patterns))
	for _, p := range s.patterns {
		matches, err := FindMatchesParallel(ctx, p, candidates)
		if err != nil {
			return nil, err
		}
		groups = append(groups, Group{Pattern: p.text, Matches: matches})
	}
	s.logger.Debug().
		Int("patterns", len(s.patterns)).
		Int("candidates", len(candidates)).
		Bool("parallel", true).
		Msg("Grouped candidates")
	return groups, nil
}

// splitChunks divides candidates into at most runtime.NumCPU() contiguous
// chunks of at least minParallelChunk elements.
func splitChunks(candidates []string) [][]string {
	workers := runtime.NumCPU()
	if limit := len(candidates) / minParallelChunk; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		return [][]string{candidates}
	}

	size := (len(candidates) + workers - 1) / workers
	chunks := make([][]string, 0, workers)
	for i := 0; i < len(candidates); i += size {
		end := min(i+size, len(candidates))
		chunks = append(chunks, candidates[i:end])
	}
	return chunks
}
