package mwmregistry

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestScanDirectory_RegistersRecognizedFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"de.mwm", "fr.mwm", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}

	c, _ := newTestCoordinator(t, 4)
	ctx := context.Background()

	results, err := ScanDirectory(ctx, c, ScanOptions{
		Dir:                 dir,
		MaxConcurrentProbes: 2,
		ToLocalFile: func(dir string, entry os.DirEntry) (LocalFileDescriptor, bool) {
			name := entry.Name()
			if filepath.Ext(name) != ".mwm" {
				return LocalFileDescriptor{}, false
			}
			region := name[:len(name)-len(".mwm")]
			return LocalFileDescriptor{RegionName: region, Version: 1, Path: countryScales()}, true
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 recognized map files, got %d", len(results))
	}
	for _, r := range results {
		if !r.Succeeded {
			t.Fatalf("expected %s to register successfully, err=%v", r.File.RegionName, r.Err)
		}
		r.Lease.Release()
	}
	if !c.IsLoaded("de") || !c.IsLoaded("fr") {
		t.Fatal("expected both de and fr to be loaded after scan")
	}
}

func TestScanDirectory_SkipsUnrecognizedEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c, _ := newTestCoordinator(t, 4)
	ctx := context.Background()

	results, err := ScanDirectory(ctx, c, ScanOptions{
		Dir: dir,
		ToLocalFile: func(dir string, entry os.DirEntry) (LocalFileDescriptor, bool) {
			return LocalFileDescriptor{}, false
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results for an all-skipped directory, got %d", len(results))
	}
}
