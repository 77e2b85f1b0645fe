package mwmregistry

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ScanOptions configures a directory scan.
type ScanOptions struct {
	// Dir is the directory to scan for map files. Entries are matched against
	// ToLocalFile; non-matching entries are skipped.
	Dir string
	// MaxConcurrentProbes bounds how many VersionProbe calls run in parallel.
	// Defaults to 4 if non-positive.
	MaxConcurrentProbes int
	// ToLocalFile converts a directory entry into a LocalFileDescriptor, or
	// reports ok=false to skip the entry (e.g. it is not a recognized map file).
	ToLocalFile func(dir string, entry os.DirEntry) (file LocalFileDescriptor, ok bool)
}

// ScanResult reports the outcome of registering a single discovered file.
type ScanResult struct {
	File      LocalFileDescriptor
	Lease     Lease
	Succeeded bool
	Err       error
}

// ScanDirectory lists opts.Dir, probes every recognized entry concurrently
// (bounded by opts.MaxConcurrentProbes, each probe retried through Retry to
// absorb transient I/O errors), then serially Registers against coordinator
// each file whose probe returned no error. A file whose probe reports ok=false
// is also passed to Register, which probes it again and reports InvalidFile;
// a file whose probe errored is not. Registration is serial because Coordinator
// holds its own lock and registering one file at a time preserves the
// deterministic version-ordering Register expects from repeated calls for the
// same region.
//
// The Lease of every result with Succeeded set is active; the caller must
// Release each one once done with the payload. Other results carry a null Lease.
func ScanDirectory(ctx context.Context, coordinator *Coordinator, opts ScanOptions) ([]ScanResult, error) {
	entries, err := os.ReadDir(opts.Dir)
	if err != nil {
		return nil, Error{Code: InvalidFile, Err: err, UserData: opts.Dir}
	}

	concurrency := opts.MaxConcurrentProbes
	if concurrency < 1 {
		concurrency = 4
	}

	var files []LocalFileDescriptor
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		file, ok := opts.ToLocalFile(opts.Dir, entry)
		if !ok {
			continue
		}
		files = append(files, file)
	}

	type probed struct {
		file LocalFileDescriptor
		err  error
	}
	probedFiles := make([]probed, len(files))

	tr := newTaskRunner(ctx, concurrency)
	var mu sync.Mutex
	for i, f := range files {
		i, f := i, f
		tr.submit(func() error {
			probeErr := Retry(tr.context(), func(ctx context.Context) error {
				_, _, ok, probeErr := coordinator.probe(ctx, f)
				if probeErr != nil {
					return probeErr
				}
				if !ok {
					return nil
				}
				return nil
			})
			mu.Lock()
			probedFiles[i] = probed{file: f, err: probeErr}
			mu.Unlock()
			return nil
		})
	}
	if err := tr.wait(); err != nil {
		return nil, err
	}

	results := make([]ScanResult, 0, len(files))
	for _, p := range probedFiles {
		if p.err != nil {
			slog.Warn("mwmregistry: scan probe failed", "path", filepath.Join(opts.Dir, p.file.RegionName), "error", p.err)
			results = append(results, ScanResult{File: p.file, Err: p.err})
			continue
		}
		lease, _, regErr := coordinator.Register(ctx, p.file)
		results = append(results, ScanResult{
			File:      p.file,
			Lease:     lease,
			Succeeded: regErr == nil && lease.Active(),
			Err:       regErr,
		})
	}
	return results, nil
}
