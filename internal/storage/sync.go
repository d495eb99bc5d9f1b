package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/wendler/internal/models"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown dump format")

// ParseFormat accepts a format name or infers it from a file name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(s), ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	switch strings.ToLower(s) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Dump is the portable copy of everything the planner stores.
type Dump struct {
	Profile *models.UserProfile      `yaml:"profile,omitempty"`
	Logs    []models.WorkoutLogEntry `yaml:"logs"`
}

// tomlDump is the TOML form of Dump.
type tomlDump struct {
	Profile *models.ProfileRecord    `toml:"profile,omitempty"`
	Logs    []models.WorkoutLogEntry `toml:"log"`
}

func (d Dump) toTOML() tomlDump {
	out := tomlDump{Logs: d.Logs}
	if d.Profile != nil {
		record := d.Profile.Record()
		out.Profile = &record
	}
	return out
}

func (d tomlDump) dump() Dump {
	out := Dump{Logs: d.Logs}
	if d.Profile != nil {
		profile := d.Profile.Profile()
		out.Profile = &profile
	}
	return out
}

// Export writes the profile and the whole workout log to w.
func (s *Storage) Export(ctx context.Context, w io.Writer, format Format) error {
	var dump Dump

	profile, err := s.GetProfile(ctx)
	switch {
	case errors.Is(err, ErrNoProfile):
	case err != nil:
		return err
	default:
		dump.Profile = profile
	}

	if dump.Logs, err = s.ListLogs(ctx); err != nil {
		return err
	}

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(dump.toTOML()); err != nil {
			return fmt.Errorf("encoding TOML: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dump); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	s.log.Debug("exported", "format", format, "logs", len(dump.Logs))
	return nil
}

// ImportStats reports what an import changed.
type ImportStats struct {
	Profile bool
	Logs    int
	Skipped int
}

// Import reads a dump written by Export. Without merge the stored profile and
// log are replaced wholesale; with merge the profile is replaced only if the
// dump carries one, and logs already stored (by id) are skipped.
func (s *Storage) Import(ctx context.Context, r io.Reader, format Format, merge bool) (ImportStats, error) {
	var dump Dump
	switch format {
	case FormatTOML:
		var td tomlDump
		if _, err := toml.NewDecoder(r).Decode(&td); err != nil {
			return ImportStats{}, fmt.Errorf("decoding TOML: %w", err)
		}
		dump = td.dump()
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&dump); err != nil && !errors.Is(err, io.EOF) {
			return ImportStats{}, fmt.Errorf("decoding YAML: %w", err)
		}
	default:
		return ImportStats{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if dump.Profile != nil {
		if err := dump.Profile.Validate(); err != nil {
			return ImportStats{}, fmt.Errorf("invalid profile in dump: %w", err)
		}
	}
	for _, entry := range dump.Logs {
		if entry.LogID == "" || !entry.Exercise.Valid() {
			return ImportStats{}, fmt.Errorf("invalid log entry in dump: %+v", entry)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return ImportStats{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if !merge {
		if _, err := tx.ExecContext(ctx, `DELETE FROM workout_logs`); err != nil {
			return ImportStats{}, fmt.Errorf("clearing workout log: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM profile`); err != nil {
			return ImportStats{}, fmt.Errorf("clearing profile: %w", err)
		}
	}

	var stats ImportStats
	if dump.Profile != nil {
		if err := saveProfile(ctx, tx, dump.Profile); err != nil {
			return ImportStats{}, err
		}
		stats.Profile = true
	}

	for _, entry := range dump.Logs {
		if merge {
			exists, err := logExists(ctx, tx, entry.LogID)
			if err != nil {
				return ImportStats{}, fmt.Errorf("checking log %s: %w", entry.LogID, err)
			}
			if exists {
				stats.Skipped++
				continue
			}
		}
		if err := appendLog(ctx, tx, entry); err != nil {
			return ImportStats{}, err
		}
		stats.Logs++
	}

	if err := tx.Commit(); err != nil {
		return ImportStats{}, fmt.Errorf("committing import: %w", err)
	}
	s.log.Info("imported", "format", format, "logs", stats.Logs, "skipped", stats.Skipped)
	return stats, nil
}

// GetDBExportPath returns the default dump location, ~/.config/wendler/dump.<format>.
func GetDBExportPath(format Format) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "wendler")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "dump."+string(format)), nil
}
