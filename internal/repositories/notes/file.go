package notes

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jkode-CMU/dndbeyond/internal/domain/note"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

const notesFileName = "notes.json"

// fileRepo stores the whole note collection in one JSON document
type fileRepo struct {
	path string
}

// FileRepoConfig holds configuration for the file-backed note repository
type FileRepoConfig struct {
	// Dir is the directory holding the notes document
	Dir string
}

// NewFileRepository creates a new file-backed note repository
func NewFileRepository(cfg *FileRepoConfig) (Repository, error) {
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
	return &fileRepo{path: filepath.Join(cfg.Dir, notesFileName)}, nil
}

func (r *fileRepo) Load(ctx context.Context) ([]*note.Note, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*note.Note{}, nil
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to read notes document")
	}
	return decodeNotes(data)
}

func (r *fileRepo) Save(ctx context.Context, notes []*note.Note) error {
	data, err := encodeNotes(notes)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".notes-*.tmp")
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to create temp file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to write notes document")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to close notes document")
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return apperr.WrapWithCode(err, apperr.CodeInternal, "failed to replace notes document")
	}
	return nil
}

func decodeNotes(data []byte) ([]*note.Note, error) {
	var notes []*note.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to decode notes document")
	}
	if notes == nil {
		notes = []*note.Note{}
	}
	return notes, nil
}

func encodeNotes(notes []*note.Note) ([]byte, error) {
	if notes == nil {
		notes = []*note.Note{}
	}
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to encode notes document")
	}
	return data, nil
}
