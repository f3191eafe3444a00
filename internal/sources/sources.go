package sources

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-shiori/go-readability"

	"wordlist/internal/fileutil"
	"wordlist/internal/wordlist"
)

// StdinName labels the blob read from standard input.
const StdinName = "<stdin>"

// Blob is one whole-text input.
type Blob struct {
	Name string
	Text string
}

// Failure records a source that could not be used.
type Failure struct {
	Name string
	Err  error
}

// Options controls how sources are read.
type Options struct {
	ExtractHTML bool
	MaxBytes    int64
}

// Loader reads sources according to its options.
type Loader struct {
	opts  Options
	stdin io.Reader
}

// NewLoader builds a loader that reads standard input from stdin.
func NewLoader(opts Options, stdin io.Reader) *Loader {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Loader{opts: opts, stdin: stdin}
}

// Load resolves args and reads every matched file. With no args it reads
// standard input instead. Failures never abort the remaining sources.
func (l *Loader) Load(args []string) ([]Blob, []Failure) {
	if len(args) == 0 {
		blob, err := l.readStdin()
		if err != nil {
			return nil, []Failure{{Name: StdinName, Err: err}}
		}
		return []Blob{blob}, nil
	}

	paths, failures := Resolve(args)
	blobs := make([]Blob, 0, len(paths))
	for _, path := range paths {
		blob, err := l.ReadFile(path)
		if err != nil {
			failures = append(failures, Failure{Name: path, Err: err})
			continue
		}
		blobs = append(blobs, blob)
	}
	return blobs, failures
}

// Resolve expands glob patterns and passes plain paths through. Duplicate
// matches are dropped so one file is never read twice. Patterns that match
// nothing are reported as failures.
func Resolve(args []string) ([]string, []Failure) {
	var paths []string
	var failures []Failure
	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}

	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		if !containsGlob(arg) {
			add(filepath.Clean(arg))
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			failures = append(failures, Failure{Name: arg, Err: wordlist.Wrap(wordlist.ErrSourceUnreadable, "glob", arg, err)})
			continue
		}
		if len(matches) == 0 {
			failures = append(failures, Failure{Name: arg, Err: wordlist.Wrap(wordlist.ErrSourceUnreadable, "glob", arg+" matched no files", nil)})
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}
	return paths, failures
}

// ReadFile loads one file, extracting readable text from HTML when enabled.
func (l *Loader) ReadFile(path string) (Blob, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Blob{}, wordlist.Wrap(wordlist.ErrSourceUnreadable, "stat", path, err)
	}
	if info.IsDir() {
		return Blob{}, wordlist.Wrap(wordlist.ErrSourceUnreadable, "read", path+" is a directory", nil)
	}
	data, err := fileutil.ReadFileLimited(path, l.opts.MaxBytes)
	if err != nil {
		return Blob{}, wordlist.Wrap(wordlist.ErrSourceUnreadable, "read", path, err)
	}
	text := string(data)
	if l.opts.ExtractHTML && isHTML(path, data) {
		text, err = extractArticle(data, path)
		if err != nil {
			return Blob{}, wordlist.Wrap(wordlist.ErrSourceUnreadable, "extract html", path, err)
		}
	}
	return Blob{Name: path, Text: text}, nil
}

func (l *Loader) readStdin() (Blob, error) {
	data, err := fileutil.ReadLimited(l.stdin, l.opts.MaxBytes)
	if err != nil {
		return Blob{}, wordlist.Wrap(wordlist.ErrSourceUnreadable, "read", StdinName, err)
	}
	text := string(data)
	if l.opts.ExtractHTML && isHTML("", data) {
		if text, err = extractArticle(data, ""); err != nil {
			return Blob{}, wordlist.Wrap(wordlist.ErrSourceUnreadable, "extract html", StdinName, err)
		}
	}
	return Blob{Name: StdinName, Text: text}, nil
}

func isHTML(path string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	case "":
		return strings.HasPrefix(http.DetectContentType(data), "text/html")
	default:
		return false
	}
}

func extractArticle(data []byte, path string) (string, error) {
	pageURL := &url.URL{Scheme: "file", Path: "/"}
	if path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			pageURL.Path = filepath.ToSlash(abs)
		}
	}
	article, err := readability.FromReader(bytes.NewReader(data), pageURL)
	if err != nil {
		return "", fmt.Errorf("readability: %w", err)
	}
	text := article.TextContent
	if title := strings.TrimSpace(article.Title); title != "" {
		text = title + "\n" + text
	}
	return text, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
