package spirits

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// FindMatchesParallel
// ---------------------------------------------------------------------------

func TestFindMatchesParallelSmallInput(t *testing.T) {
	got, err := FindMatchesParallel(context.Background(), "*.log", []string{"a.log", "b.txt", "c.log"})
	if err != nil {
		t.Fatalf("FindMatchesParallel failed: %v", err)
	}
	assertStringSliceEqual(t, got, []string{"a.log", "c.log"})
}

func TestFindMatchesParallelEmpty(t *testing.T) {
	got, err := FindMatchesParallel(context.Background(), "*", []string{})
	if err != nil {
		t.Fatalf("FindMatchesParallel failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestFindMatchesParallelPreservesOrder(t *testing.T) {
	// Enough candidates to trigger multiple workers.
	n := runtime.NumCPU() * minParallelChunk * 2
	candidates := make([]string, n)
	var want []string
	for i := 0; i < n; i++ {
		if i%5 == 0 {
			candidates[i] = fmt.Sprintf("file_%06d.log", i)
			want = append(want, candidates[i])
		} else {
			candidates[i] = fmt.Sprintf("file_%06d.txt", i)
		}
	}

	got, err := FindMatchesParallel(context.Background(), New("*.log"), candidates)
	if err != nil {
		t.Fatalf("FindMatchesParallel failed: %v", err)
	}
	assertStringSliceEqual(t, got, want)
}

func TestFindMatchesParallelMatchesSequential(t *testing.T) {
	n := runtime.NumCPU()*minParallelChunk + 17
	candidates := make([]string, n)
	for i := range candidates {
		switch i % 4 {
		case 0:
			candidates[i] = fmt.Sprintf("ab%dcd", i)
		case 1:
			candidates[i] = "abcd"
		case 2:
			candidates[i] = fmt.Sprintf("x%d", i)
		default:
			candidates[i] = ""
		}
	}

	p := New("ab*cd")
	parallel, err := FindMatchesParallel(context.Background(), p, candidates)
	if err != nil {
		t.Fatalf("FindMatchesParallel failed: %v", err)
	}
	assertStringSliceEqual(t, parallel, p.FindMatches(candidates...))
}

func TestFindMatchesParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	candidates := make([]string, runtime.NumCPU()*minParallelChunk*2)
	for i := range candidates {
		candidates[i] = "x"
	}

	_, err := FindMatchesParallel(ctx, "*", candidates)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	_, err = FindMatchesParallel(ctx, "*", []string{"x"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled for small input, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// MapParallel / GroupsParallel
// ---------------------------------------------------------------------------

func TestMapParallelMatchesMap(t *testing.T) {
	patterns := []string{"*", "a.", "zz", "ab?"}
	candidates := []string{"a", "ab", "abc", "zz", "ab"}

	got, err := MapParallel(context.Background(), patterns, candidates)
	if err != nil {
		t.Fatalf("MapParallel failed: %v", err)
	}
	want := Map(patterns, candidates)
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		assertStringSliceEqual(t, got[k], v)
	}
}

func TestGroupsParallelMatchesGroups(t *testing.T) {
	s := SetOf("*.go", "*_test.go", "main.go")

	n := runtime.NumCPU() * minParallelChunk * 2
	candidates := make([]string, n)
	for i := range candidates {
		switch i % 3 {
		case 0:
			candidates[i] = fmt.Sprintf("pkg%d.go", i)
		case 1:
			candidates[i] = fmt.Sprintf("pkg%d_test.go", i)
		default:
			candidates[i] = "main.go"
		}
	}

	got, err := s.GroupsParallel(context.Background(), candidates)
	if err != nil {
		t.Fatalf("GroupsParallel failed: %v", err)
	}
	want := s.Groups(candidates)
	if len(got) != len(want) {
		t.Fatalf("got %d groups, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Pattern != want[i].Pattern {
			t.Errorf("group %d: pattern %q, want %q", i, got[i].Pattern, want[i].Pattern)
		}
		assertStringSliceEqual(t, got[i].Matches, want[i].Matches)
	}
}

// ---------------------------------------------------------------------------
// Concurrent usage — one Pattern shared by many goroutines
// ---------------------------------------------------------------------------

func TestConcurrentSharedPattern(t *testing.T) {
	const goroutines = 20

	p := New("*.pattern?")

	var wg sync.WaitGroup
	wg.Add(goroutines)

	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()

			matchPath := fmt.Sprintf("file%d.pattern", id)
			noMatchPath := fmt.Sprintf("file%d.other", id)

			for j := 0; j < 100; j++ {
				if !p.Match(matchPath) {
					errs <- fmt.Errorf("goroutine %d: expected %q to match", id, matchPath)
					return
				}
				if p.Match(noMatchPath) {
					errs <- fmt.Errorf("goroutine %d: expected %q to NOT match", id, noMatchPath)
					return
				}
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestConcurrentFindMatchesParallel(t *testing.T) {
	const goroutines = 8

	candidates := make([]string, 2000)
	for i := range candidates {
		if i%3 == 0 {
			candidates[i] = fmt.Sprintf("file_%d.log", i)
		} else {
			candidates[i] = fmt.Sprintf("file_%d.txt", i)
		}
	}

	var wg sync.WaitGroup
	wg.Add(goroutines)
	errs := make(chan error, goroutines)

	p := New("*.log")
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()

			got, err := FindMatchesParallel(context.Background(), p, candidates)
			if err != nil {
				errs <- fmt.Errorf("goroutine %d: %w", id, err)
				return
			}
			for _, c := range got {
				if !strings.HasSuffix(c, ".log") {
					errs <- fmt.Errorf("goroutine %d: kept %q", id, c)
					return
				}
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkNew(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(`src/*/module\*.go?`)
	}
}

func BenchmarkMatchSingle(b *testing.B) {
	p := New("src/*/main.go")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Match("src/deeply/nested/path/main.go")
	}
}

func BenchmarkMatchBacktracking(b *testing.B) {
	p := New("*ab*ab*ab*ab*abc")
	candidate := strings.Repeat("ab", 200) + "abc"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Match(candidate)
	}
}

func BenchmarkFindMatches10000(b *testing.B) {
	p := New("dir/*.log")
	candidates := benchCandidates(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.FindMatches(candidates...)
	}
}

func BenchmarkFindMatchesParallel10000(b *testing.B) {
	p := New("dir/*.log")
	candidates := benchCandidates(10000)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FindMatchesParallel(ctx, p, candidates); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBestMatch(b *testing.B) {
	s := SetOf("*", "dir/*", "dir/*.log", "dir/file_.?.log", "dir/file_1.log")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Best("dir/file_1.log")
	}
}

func benchCandidates(n int) []string {
	candidates := make([]string, n)
	for i := range candidates {
		if i%4 == 0 {
			candidates[i] = fmt.Sprintf("dir/file_%d.log", i)
		} else {
			candidates[i] = fmt.Sprintf("dir/file_%d.rs", i)
		}
	}
	return candidates
}
