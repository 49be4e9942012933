// Package batch renders many worksheet files concurrently.
package batch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/gnolang/truthtable/internal/table"
	"github.com/gnolang/truthtable/internal/worksheet"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Result is the outcome for one worksheet file. Err is set when the file
// could not be loaded or its table could not be generated.
type Result struct {
	Path      string
	Worksheet *worksheet.Worksheet
	Table     *table.Table
	Err       error
}

// Processor turns one file into a Result.
type Processor func(path string) Result

// ProcessFile loads the worksheet at path and generates its table.
func ProcessFile(path string) Result {
	ws, err := worksheet.Load(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	tbl, err := ws.Generate()
	return Result{Path: path, Worksheet: ws, Table: tbl, Err: err}
}

// Options tune a batch run. A nil Progress disables the progress bar and
// a non-positive Workers means one worker per CPU.
type Options struct {
	Logger   *zap.Logger
	Progress io.Writer
	Workers  int
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// ProcessPaths runs processor over every worksheet reachable from paths
// and returns the results ordered by path. Failures of individual files
// are reported in their Result; only an inaccessible path or a cancelled
// context aborts the run.
func ProcessPaths(ctx context.Context, opts Options, paths []string, processor Processor) ([]Result, error) {
	var all []Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, opts, path, processor)
		all = append(all, results...)
		if err != nil {
			opts.logger().Error("Error processing path", zap.String("path", path), zap.Error(err))
			return all, err
		}
	}
	return all, nil
}

// ProcessPath runs processor on path if it is a file, or on every .yaml
// and .yml file below it if it is a directory.
func ProcessPath(ctx context.Context, opts Options, path string, processor Processor) ([]Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		return []Result{processor(path)}, nil
	}

	files, err := collectWorksheets(path)
	if err != nil {
		return nil, err
	}
	return processConcurrently(ctx, opts, path, files, processor)
}

func collectWorksheets(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasDesiredExtension(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

func processConcurrently(ctx context.Context, opts Options, desc string, files []string, processor Processor) ([]Result, error) {
	logger := opts.logger()

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	// limit the number of workers
	maxWorkers := opts.Workers
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	sem := make(chan struct{}, maxWorkers)

	results := make([]Result, len(files))
	done := make([]bool, len(files))
	var wg sync.WaitGroup
	var cancelled error

launch:
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break launch
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			res := processor(fp)
			if res.Err != nil {
				logger.Error("Error processing file", zap.String("file", fp), zap.Error(res.Err))
			}
			results[i] = res
			done[i] = true
			_ = bar.Add(1)
		}(i, file)
	}
	wg.Wait()
	_ = bar.Finish()

	finished := make([]Result, 0, len(files))
	for i, res := range results {
		if done[i] {
			finished = append(finished, res)
		}
	}
	return finished, cancelled
}

var desiredExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}
