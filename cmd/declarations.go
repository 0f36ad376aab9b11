package cmd

import (
	"errors"
	"slices"

	"github.com/zjrosen/knowncmd/internal/commands"
	"github.com/zjrosen/knowncmd/internal/declfile"
	"github.com/zjrosen/knowncmd/internal/flags"
	"github.com/zjrosen/knowncmd/internal/log"
	"github.com/zjrosen/knowncmd/internal/table"
)

// tableRequest describes which declarations to merge.
type tableRequest struct {
	extraDirs []string
	strict    bool
	// reportUserDir returns errors from ~/.knowncmd/declarations instead of
	// logging and skipping the broken files.
	reportUserDir bool
	loadOpts      []declfile.LoadOption
}

// declarationDirs returns the configured and extra directories, without the
// user directory.
func (r tableRequest) declarationDirs() []string {
	dirs := slices.Clone(cfg.Declarations.Dirs)
	for _, d := range r.extraDirs {
		if !slices.Contains(dirs, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// watchDirs returns every directory a table built from r reads files from.
func (r tableRequest) watchDirs() []string {
	dirs := r.declarationDirs()
	if cfg.Declarations.UserDir {
		dirs = append(dirs, declfile.UserDeclarationsDir())
	}
	return dirs
}

// loadTable merges the built-in declarations with the user and configured
// declaration files. A nil table comes with a non-nil error; a non-nil table
// may still come with file errors for files that were skipped.
func loadTable(r tableRequest) (*table.Table, error) {
	var files []declfile.File
	var errs []error

	if cfg.Declarations.UserDir {
		userDir := declfile.UserDeclarationsDir()
		if r.reportUserDir {
			loaded, err := declfile.LoadDir(userDir, table.SourceUser, r.loadOpts...)
			files = append(files, loaded...)
			if err != nil {
				errs = append(errs, err)
			}
		} else {
			files = append(files, declfile.LoadUserDir(userDir, r.loadOpts...)...)
		}
	}

	for _, dir := range r.declarationDirs() {
		loaded, err := declfile.LoadDir(dir, table.SourceUser, r.loadOpts...)
		files = append(files, loaded...)
		if err != nil {
			errs = append(errs, err)
		}
	}

	strict := r.strict || featureFlags().Enabled(flags.FlagStrictMerge)
	t, err := commands.Merge([]table.Option{table.WithStrictMerge(strict)}, files...)
	if err != nil {
		errs = append(errs, err)
	}

	log.Debug(log.CatCLI, "Declarations loaded", "files", len(files), "strict", strict, "errors", len(errs))
	return t, errors.Join(errs...)
}

// readTable is loadTable for commands that only read the table: file
// errors are logged, and only a failed merge is returned.
func readTable(r tableRequest) (*table.Table, error) {
	t, err := loadTable(r)
	if t == nil {
		return nil, err
	}
	if err != nil {
		log.Warn(log.CatCLI, "Some declaration files were skipped", "error", err)
	}
	return t, nil
}
