package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	portfolio "github.com/etnz/smartportfolio"
)

// loadBackup decodes the backup file. A missing file is an empty portfolio.
func loadBackup(path string) (*portfolio.Backup, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("file", path).Msg("backup-file-missing")
		return &portfolio.Backup{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open backup %q: %w", path, err)
	}
	defer f.Close()

	b, err := portfolio.DecodeBackup(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load backup %q: %w", path, err)
	}
	logger.Debug().Str("file", path).Int("holdings", len(b.Holdings)).Int("dividends", len(b.Dividends)).Msg("load-backup")
	return b, nil
}

// saveBackup replaces the backup file with b.
func saveBackup(path string, b *portfolio.Backup) error {
	err := writeFileAtomic(path, func(w io.Writer) error { return portfolio.EncodeBackup(w, b) })
	if err != nil {
		return err
	}
	logger.Debug().Str("file", path).Int("holdings", len(b.Holdings)).Int("dividends", len(b.Dividends)).Msg("save-backup")
	return nil
}

// writeFileAtomic writes a temporary file next to path and renames it over
// path, so that readers never see a partial file.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot set permissions of %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot replace %q: %w", path, err)
	}
	return nil
}

// exists reports whether path exists.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
