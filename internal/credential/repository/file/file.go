package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"memory-mob/internal/credential/repository"
	"memory-mob/internal/model"
	"memory-mob/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger

	mu sync.Mutex
}

// New creates a YAML-file-backed credential Repository. The file is created on first save
// with 0600 permissions.
func New(path string, l log.Logger) repository.Repository {
	return &implRepository{path: path, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("credential/repository/file.%s", method)
}

func (r *implRepository) Load(ctx context.Context) (map[model.CredentialSlot]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys, err := r.read()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return nil, repository.ErrFailedToLoad
	}
	return keys, nil
}

func (r *implRepository) Save(ctx context.Context, slot model.CredentialSlot, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys, err := r.read()
	if err != nil {
		r.l.Errorf(ctx, "%s read: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}
	keys[slot] = key
	if err := r.write(keys); err != nil {
		r.l.Errorf(ctx, "%s write: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, slot model.CredentialSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys, err := r.read()
	if err != nil {
		r.l.Errorf(ctx, "%s read: %v", r.dsn("Delete"), err)
		return repository.ErrFailedToClear
	}
	if _, ok := keys[slot]; !ok {
		return nil
	}
	delete(keys, slot)
	if err := r.write(keys); err != nil {
		r.l.Errorf(ctx, "%s write: %v", r.dsn("Delete"), err)
		return repository.ErrFailedToClear
	}
	return nil
}

func (r *implRepository) read() (map[model.CredentialSlot]string, error) {
	keys := make(map[model.CredentialSlot]string)

	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return keys, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	if keys == nil {
		keys = make(map[model.CredentialSlot]string)
	}
	return keys, nil
}

// write replaces the file atomically.
func (r *implRepository) write(keys map[model.CredentialSlot]string) error {
	raw, err := yaml.Marshal(keys)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".credentials-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}
