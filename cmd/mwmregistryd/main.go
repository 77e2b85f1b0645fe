// Command mwmregistryd scans a directory of map files, registers them with a
// Coordinator, and serves the admin REST surface over HTTP. It is a thin
// wiring layer; the registry semantics live entirely in the mwmregistry package.
package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sharedcode/mwmregistry"
	"github.com/sharedcode/mwmregistry/httpapi"
)

func parseVersion(dirName string) (int, error) {
	return strconv.Atoi(dirName)
}

// sidecarMeta is the on-disk companion file (<region>.meta.json) describing a
// map file's scale range. Real deployments would replace this with whatever
// header format their map files actually carry; this is a deliberately
// simple stand-in. Version is not read from here: it comes from the dated
// directory the file was scanned from (see ToLocalFile below), matching the
// on-disk layout real map-file distributions use.
type sidecarMeta struct {
	MinScale int `json:"minScale"`
	MaxScale int `json:"maxScale"`
}

// probeFile reads the file's sidecar metadata for its scale range and reports
// back the version the file was registered with. It does not open the map file
// itself, and leaves checking the scale range to the Coordinator. A production
// probe would instead parse this out of the file's own header.
func probeFile(ctx context.Context, file mwmregistry.LocalFileDescriptor) (int, mwmregistry.ScaleRange, bool, error) {
	path, _ := file.Path.(string)
	metaPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".meta.json"

	var meta sidecarMeta
	err := mwmregistry.Retry(ctx, func(ctx context.Context) error {
		raw, readErr := os.ReadFile(metaPath)
		if readErr != nil {
			return readErr
		}
		return json.Unmarshal(raw, &meta)
	})
	if err != nil {
		return 0, mwmregistry.ScaleRange{}, false, err
	}
	return file.Version, mwmregistry.ScaleRange{MinScale: meta.MinScale, MaxScale: meta.MaxScale}, true, nil
}

func loadPayload(ctx context.Context, file mwmregistry.LocalFileDescriptor) (any, error) {
	path, _ := file.Path.(string)
	var data []byte
	err := mwmregistry.Retry(ctx, func(ctx context.Context) error {
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		data = raw
		return nil
	})
	return data, err
}

func main() {
	mwmregistry.ConfigureLogging()

	configPath := "mwmregistry.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := mwmregistry.LoadConfiguration(configPath)
	if err != nil {
		log.Fatalf("mwmregistryd: loading configuration: %v", err)
	}
	switch cfg.LogLevel {
	case "DEBUG":
		mwmregistry.SetLogLevel(slog.LevelDebug)
	case "WARN":
		mwmregistry.SetLogLevel(slog.LevelWarn)
	case "ERROR":
		mwmregistry.SetLogLevel(slog.LevelError)
	}

	onDeregistered := func(file mwmregistry.LocalFileDescriptor) {
		slog.Info("mwmregistryd: region deregistered", "region", file.RegionName)
	}

	coordinator := mwmregistry.NewCoordinator(cfg.CachePayloadCapacity, probeFile, loadPayload, onDeregistered)
	defer coordinator.Cleanup()

	// Map files live directly in a dated scan directory, e.g. scanDir
	// ".../251231" holding ".../251231/Germany.mwm"; the scan directory's own
	// name doubles as the monotonic version. Undated scan
	// directories (version parse failure) fall back to version 1.
	version := 1
	if v, convErr := parseVersion(filepath.Base(cfg.ScanDirectory)); convErr == nil {
		version = v
	}

	ctx := context.Background()
	results, err := mwmregistry.ScanDirectory(ctx, coordinator, mwmregistry.ScanOptions{
		Dir: cfg.ScanDirectory,
		ToLocalFile: func(dir string, entry os.DirEntry) (mwmregistry.LocalFileDescriptor, bool) {
			name := entry.Name()
			if !strings.HasSuffix(name, ".mwm") {
				return mwmregistry.LocalFileDescriptor{}, false
			}
			region := strings.TrimSuffix(name, ".mwm")
			return mwmregistry.LocalFileDescriptor{
				RegionName: region,
				Version:    version,
				Path:       filepath.Join(dir, name),
			}, true
		},
	})
	// An empty ScanDirectory means no startup scan: listing "" fails, nothing
	// is registered, and startup goes on.
	if err != nil && cfg.ScanDirectory != "" {
		log.Fatalf("mwmregistryd: scanning %s: %v", cfg.ScanDirectory, err)
	}
	for _, r := range results {
		if !r.Succeeded {
			slog.Warn("mwmregistryd: failed to register during scan", "region", r.File.RegionName, "error", r.Err)
			continue
		}
		// The scan's own lease is only used to warm the cache; release it
		// immediately so the payload is available to the first real caller.
		r.Lease.Release()
	}

	router := httpapi.NewRouter(coordinator)
	if err := router.Run("localhost:8080"); err != nil {
		log.Fatalf("mwmregistryd: http server: %v", err)
	}
}
