package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter loads translations keyed by language.
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

// FileAdapter loads a single translation file from disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a FileAdapter. A nil parser is chosen from the file
// extension; it returns nil if no parser fits or filename is empty.
func NewFileAdapter(parser Parser, filename string) *FileAdapter {
	if filename == "" {
		return nil
	}
	if parser == nil {
		parser = NewParserForFile(filename)
	}
	if parser == nil {
		return nil
	}
	return &FileAdapter{parser: parser, path: filename}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseContent(ctx, a.parser, a.path, content)
}

// FSAdapter loads every file in a directory of an fs.FS that its parser
// supports, merging them per language. Sections with the same key in several
// files are merged, so one language may be split across files. Works with
// embed.FS and os.DirFS.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns nil if parser or fsys is nil or dir is empty.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(filepath.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingFileCancelled, err)
		}

		// fs.FS paths are always slash separated
		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		translations, err := parseContent(ctx, a.parser, name, content)
		if err != nil {
			return nil, err
		}
		for lang, values := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			mergeNested(all[lang], values)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return all, nil
}

// mergeNested copies src into dst, merging nested sections key by key.
// On a conflict between two plain values the one from src wins.
func mergeNested(dst, src map[string]any) {
	for key, val := range src {
		srcSection, srcOK := val.(map[string]any)
		dstSection, dstOK := dst[key].(map[string]any)
		if srcOK && dstOK {
			mergeNested(dstSection, srcSection)
			continue
		}
		dst[key] = val
	}
}

func parseContent(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}
	translations, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}
