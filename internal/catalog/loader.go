package catalog

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/automarket/internal/model"
)

// ScanDir returns the catalog files under path. A regular file is returned as
// is; a directory yields its *.json entries, sorted by name. A missing path
// yields nothing.
func ScanDir(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	slices.Sort(files)
	return files, nil
}

// LoadResult merges the cars of several catalog files.
type LoadResult struct {
	Cars        []model.Car
	TotalFiles  int
	ParsedFiles int
	Skipped     int
	FileErrors  int
	Errors      []error
}

// ProgressFunc is called as each file finishes.
type ProgressFunc func(current, total int)

// LoadAll parses paths with a bounded worker pool. Cars are merged in the
// order of paths regardless of which worker finishes first.
func LoadAll(paths []string, progressFn ProgressFunc) LoadResult {
	result := LoadResult{TotalFiles: len(paths)}
	if len(paths) == 0 {
		return result
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}

	work := make(chan int, len(paths))
	results := make([]ParseResult, len(paths))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range paths {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = ReadFile(paths[idx])
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(paths))
				}
			}
		}()
	}

	wg.Wait()

	for _, pr := range results {
		if pr.Err != nil {
			result.FileErrors++
			result.Errors = append(result.Errors, pr.Err)
			continue
		}
		result.ParsedFiles++
		result.Skipped += pr.Skipped
		result.Cars = append(result.Cars, pr.Cars...)
	}
	return result
}
