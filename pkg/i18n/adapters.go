package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"sort"
)

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single catalog file from disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter picks the parser from the file extension.
func NewFileAdapter(path string) (*FileAdapter, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, errors.Join(ErrUnsupportedFormat, fmt.Errorf("file %q", path))
	}
	return &FileAdapter{parser: parser, path: path}, nil
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return a.parser.Parse(ctx, content)
}

// FSAdapter loads every YAML and JSON catalog in dir of fsys, merging
// languages across files. Works with embed.FS.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && NewParserForFile(e.Name()) != nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	all := make(map[string]map[string]any)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		content, err := fs.ReadFile(a.fsys, path.Join(a.dir, name))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		parsed, err := NewParserForFile(name).Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		for lang, trans := range parsed {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			merge(all[lang], trans)
		}
	}
	return all, nil
}

// merge copies src into dst, descending into nested maps so that two files
// may both contribute keys under the same section.
func merge(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		existing, ok := dst[k].(map[string]any)
		if !ok {
			dst[k] = maps.Clone(sub)
			continue
		}
		merge(existing, sub)
	}
}
