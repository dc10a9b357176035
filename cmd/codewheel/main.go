// Command codewheel regenerates the printable code wheel pages.
//
// Usage:
//
//	codewheel [-out dir] [-format svg|raster] [-keymap] [-dump] [-v]
//
// Every page of the compiled-in encoder table is written to dir as
// <page>.svg (or <page>.png with -format raster), overwriting existing
// files. -keymap also writes the key-label overlay sheet, and -dump prints
// the encoder table as YAML instead of writing anything.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/codewheel"
	"github.com/gogpu/codewheel/keymap"
	"github.com/gogpu/codewheel/recording"
	_ "github.com/gogpu/codewheel/recording/backends/raster"
	_ "github.com/gogpu/codewheel/recording/backends/svg"
)

func main() {
	var (
		out     = flag.String("out", ".", "output directory")
		format  = flag.String("format", "svg", "output format: "+fmt.Sprint(recording.Backends()))
		withKey = flag.Bool("keymap", false, "also write the key-label overlay")
		dump    = flag.Bool("dump", false, "print the encoder table as YAML and exit")
		verbose = flag.Bool("v", false, "log progress to stderr")
	)
	flag.Parse()

	if *verbose {
		codewheel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	specs := codewheel.DefaultEncoders()
	if *dump {
		data, err := codewheel.MarshalTable(specs)
		if err != nil {
			log.Fatalf("Failed to dump table: %v", err)
		}
		os.Stdout.Write(data)
		return
	}

	if !recording.IsRegistered(*format) {
		log.Fatalf("Unknown format %q, want one of %v", *format, recording.Backends())
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	g := codewheel.NewGenerator(codewheel.WithBackend(*format))
	paths, err := g.WriteFiles(specs, *out)
	if err != nil {
		log.Fatalf("Failed to write pages: %v", err)
	}
	for _, p := range paths {
		log.Printf("Page saved to %s\n", p)
	}

	if *withKey {
		path, err := writeKeymap(*format, *out)
		if err != nil {
			log.Fatalf("Failed to write keymap: %v", err)
		}
		log.Printf("Keymap saved to %s\n", path)
	}
}

func writeKeymap(format, dir string) (string, error) {
	k, err := keymap.New()
	if err != nil {
		return "", err
	}
	rec := k.Draw(keymap.DefaultDials())

	b, err := recording.NewBackend(format)
	if err != nil {
		return "", err
	}
	if err := rec.Playback(b); err != nil {
		return "", err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return "", fmt.Errorf("backend %q cannot save files", format)
	}
	path := filepath.Join(dir, "keymap"+fb.Extension())
	return path, fb.SaveToFile(path)
}
