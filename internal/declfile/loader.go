package declfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/zjrosen/knowncmd/internal/log"
	"github.com/zjrosen/knowncmd/internal/signature"
	"github.com/zjrosen/knowncmd/internal/table"
)

// LoadOption configures LoadFS and LoadDir.
type LoadOption func(*loadConfig)

type loadConfig struct {
	parser *CachedParser
}

// WithParser reuses parsed files through parser.
func WithParser(parser *CachedParser) LoadOption {
	return func(c *loadConfig) {
		c.parser = parser
	}
}

// LoadFS walks fsys from root and parses every declaration file it finds.
// Files are returned in lexical path order. A file that fails to parse is
// reported in the joined error and the remaining files are still loaded.
// Source names are the file paths prefixed with prefix.
func LoadFS(fsys fs.FS, root, prefix string, kind table.SourceKind, opts ...LoadOption) ([]File, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var files []File
	var errs []error

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsDeclarationFile(d.Name()) {
			return nil
		}

		name := path.Join(prefix, p)
		var sigs []*signature.Signature
		if cfg.parser != nil {
			sigs, err = cfg.parser.Parse(context.Background(), fsys, p, name)
		} else {
			sigs, err = parseFile(context.Background(), parseInput{fsys: fsys, path: p})
		}
		if err != nil {
			errs = append(errs, err)
		}
		if len(sigs) == 0 {
			return nil
		}
		files = append(files, File{
			Source:     table.Source{Name: name, Kind: kind},
			Signatures: sigs,
		})
		log.Debug(log.CatDecl, "Loaded declaration file", "path", p, "commands", len(sigs))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, errors.Join(errs...)
}

// LoadDir loads every declaration file under dir on disk.
// Returns nil, nil if dir does not exist.
func LoadDir(dir string, kind table.SourceKind, opts ...LoadOption) ([]File, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir), ".", filepath.ToSlash(dir), kind, opts...)
}

// UserDeclarationsDir returns ~/.knowncmd/declarations.
// Returns empty string if the home directory cannot be determined.
func UserDeclarationsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".knowncmd", "declarations")
}

// LoadUserDir loads user declaration files from dir.
// A missing directory is not an error. Files that fail to load are logged
// and skipped so a broken user file never blocks the built-in table.
func LoadUserDir(dir string, opts ...LoadOption) []File {
	files, err := LoadDir(dir, table.SourceUser, opts...)
	if err != nil {
		log.Warn(log.CatConfig, "loading user declarations", "error", err.Error(), "dir", dir)
	}
	return files
}

// AddFiles adds every signature of files to b under the file's source.
func AddFiles(b *table.Builder, files []File) error {
	var errs []error
	for _, f := range files {
		if err := b.AddAll(f.Source, f.Signatures...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
