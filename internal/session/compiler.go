package session

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bep/godartsass/v2"
	"github.com/spf13/afero"

	"themesmith/internal/logging"
)

// DartSassCompiler compiles SCSS with an embedded Dart Sass process.
// Imports are read from the filesystem handed to Compile, so staged trees
// held in memory compile the same way as trees on disk.
type DartSassCompiler struct {
	binary  string
	timeout time.Duration

	mu         sync.Mutex
	transpiler *godartsass.Transpiler
}

// NewDartSassCompiler uses binary as the dart-sass executable. An empty
// binary lets godartsass search PATH.
func NewDartSassCompiler(binary string) *DartSassCompiler {
	return &DartSassCompiler{binary: binary, timeout: 30 * time.Second}
}

func (c *DartSassCompiler) start(ctx context.Context) (*godartsass.Transpiler, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transpiler != nil && !c.transpiler.IsShutDown() {
		return c.transpiler, nil
	}

	logger := logging.FromContext(ctx)
	t, err := godartsass.Start(godartsass.Options{
		DartSassEmbeddedFilename: c.binary,
		Timeout:                  c.timeout,
		LogEventHandler: func(e godartsass.LogEvent) {
			logger.Warn().Str("component", "sass").Msg(e.Message)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start dart-sass: %w", err)
	}
	c.transpiler = t
	return t, nil
}

func (c *DartSassCompiler) Compile(ctx context.Context, fsys afero.Fs, entry string) (string, error) {
	source, err := afero.ReadFile(fsys, entry)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", entry, err)
	}

	t, err := c.start(ctx)
	if err != nil {
		return "", err
	}

	result, err := t.Execute(godartsass.Args{
		Source:         string(source),
		URL:            fileURL(entry),
		SourceSyntax:   godartsass.SourceSyntaxSCSS,
		OutputStyle:    godartsass.OutputStyleExpanded,
		ImportResolver: &aferoImporter{fs: fsys, base: filepath.Dir(entry)},
	})
	if err != nil {
		return "", err
	}
	return result.CSS, nil
}

func (c *DartSassCompiler) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transpiler == nil {
		return nil
	}
	err := c.transpiler.Close()
	c.transpiler = nil
	return err
}

// aferoImporter resolves @import and @use against an afero filesystem
// following the Sass partial and index file conventions.
type aferoImporter struct {
	fs   afero.Fs
	base string
}

func (r *aferoImporter) CanonicalizeURL(raw string) (string, error) {
	p := raw
	if strings.HasPrefix(raw, "file://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", err
		}
		p = filepath.FromSlash(u.Path)
	} else if strings.Contains(raw, ":") {
		// other schemes belong to other importers
		return "", nil
	} else if !filepath.IsAbs(p) {
		p = filepath.Join(r.base, filepath.FromSlash(p))
	}

	for _, candidate := range importCandidates(p) {
		if ok, _ := afero.Exists(r.fs, candidate); ok {
			return fileURL(candidate), nil
		}
	}
	return "", nil
}

func (r *aferoImporter) Load(canonicalizedURL string) (godartsass.Import, error) {
	u, err := url.Parse(canonicalizedURL)
	if err != nil {
		return godartsass.Import{}, err
	}
	p := filepath.FromSlash(u.Path)

	data, err := afero.ReadFile(r.fs, p)
	if err != nil {
		return godartsass.Import{}, fmt.Errorf("failed to read %s: %w", p, err)
	}

	syntax := godartsass.SourceSyntaxSCSS
	switch path.Ext(p) {
	case ".sass":
		syntax = godartsass.SourceSyntaxSASS
	case ".css":
		syntax = godartsass.SourceSyntaxCSS
	}
	return godartsass.Import{Content: string(data), SourceSyntax: syntax}, nil
}

// importCandidates lists the files Sass would try for an import of p.
func importCandidates(p string) []string {
	dir, name := filepath.Split(p)
	switch filepath.Ext(name) {
	case ".scss", ".sass", ".css":
		return []string{p, filepath.Join(dir, "_"+name)}
	}

	var out []string
	for _, ext := range []string{".scss", ".sass", ".css"} {
		out = append(out, filepath.Join(dir, name+ext), filepath.Join(dir, "_"+name+ext))
	}
	for _, ext := range []string{".scss", ".sass", ".css"} {
		out = append(out, filepath.Join(p, "index"+ext), filepath.Join(p, "_index"+ext))
	}
	return out
}

func fileURL(p string) string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(p)}).String()
}

// CommandCompiler runs an external sassc or sass binary on the entry file.
// It needs the entry to exist on the OS filesystem.
type CommandCompiler struct {
	runner CommandRunner
	binary string
}

func NewCommandCompiler(runner CommandRunner, binary string) *CommandCompiler {
	if binary == "" {
		binary = "sassc"
	}
	return &CommandCompiler{runner: runner, binary: binary}
}

func (c *CommandCompiler) Compile(ctx context.Context, fsys afero.Fs, entry string) (string, error) {
	if _, ok := fsys.(*afero.OsFs); !ok {
		return "", fmt.Errorf("%s needs files on disk, got %s", c.binary, fsys.Name())
	}

	args := []string{entry}
	if filepath.Base(c.binary) == "sass" {
		args = []string{"--no-source-map", entry}
	}

	result, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return "", err
	}
	if !result.Success() {
		return "", fmt.Errorf("%s exited with status %d: %s", c.binary, result.Status, strings.TrimSpace(result.Stderr))
	}
	return result.Stdout, nil
}
