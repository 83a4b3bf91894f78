package characters

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jkode-CMU/dndbeyond/internal/domain/character"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

// FileRepository implements the Repository interface with one JSON document
// per character under a data directory.
type FileRepository struct {
	dir string
}

// FileRepoConfig holds configuration for the file-backed repository
type FileRepoConfig struct {
	// Dir is the directory holding character documents. It is created
	// if it does not exist.
	Dir string
}

// NewFileRepository creates a new file-backed character repository
func NewFileRepository(cfg *FileRepoConfig) (*FileRepository, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("config cannot be nil")
	}
	if cfg.Dir == "" {
		return nil, apperr.InvalidArgument("data directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to create data directory").
			WithMeta("dir", cfg.Dir)
	}
	return &FileRepository{dir: cfg.Dir}, nil
}

func (r *FileRepository) path(id string) (string, error) {
	if id == "" {
		return "", apperr.InvalidArgument("character ID is required")
	}
	// IDs become file names, so anything that could escape the data
	// directory is rejected outright.
	if strings.ContainsAny(id, "/\\") || id == "." || id == ".." {
		return "", apperr.InvalidArgumentf("invalid character ID '%s'", id)
	}
	return filepath.Join(r.dir, id+".json"), nil
}

func (r *FileRepository) Create(ctx context.Context, char *character.Character) error {
	if err := validateCharacter(char); err != nil {
		return err
	}

	path, err := r.path(char.ID)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	return r.write(path, newRecord(char, time.Now().UTC()))
}

func (r *FileRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	rec, _, err := r.load(id)
	if err != nil {
		return nil, err
	}
	return rec.toCharacter(), nil
}

func (r *FileRepository) List(ctx context.Context) ([]*character.Character, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to read data directory").
			WithMeta("dir", r.dir)
	}

	chars := make([]*character.Character, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to read character file").
				WithMeta("file", entry.Name())
		}
		rec, err := decodeRecord(data)
		if err != nil {
			return nil, err
		}
		chars = append(chars, rec.toCharacter())
	}

	sortByName(chars)
	return chars, nil
}

func (r *FileRepository) Update(ctx context.Context, char *character.Character) error {
	if err := validateCharacter(char); err != nil {
		return err
	}

	rec, path, err := r.load(char.ID)
	if err != nil {
		return err
	}
	return r.write(path, rec.next(char, time.Now().UTC()))
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	path, err := r.path(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return apperr.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to delete character file").
			WithMeta("character_id", id)
	}
	return nil
}

func (r *FileRepository) load(id string) (*characterRecord, string, error) {
	path, err := r.path(id)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", apperr.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return nil, "", apperr.WrapWithCode(err, apperr.CodeInternal, "failed to read character file").
			WithMeta("character_id", id)
	}
	rec, err := decodeRecord(data)
	if err != nil {
		return nil, "", err
	}
	return rec, path, nil
}

// write replaces the document through a rename so a crash mid-write
// never leaves a truncated sheet behind.
func (r *FileRepository) write(path string, rec *characterRecord) error {
	data, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, ".character-*.tmp")
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to create temp file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to write character file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to close character file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to replace character file")
	}
	return nil
}

// Dir returns the directory holding the character documents
func (r *FileRepository) Dir() string {
	return r.dir
}
