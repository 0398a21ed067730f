// Package layout persists named column layouts so recurring tabulations can
// reuse a column configuration instead of repeating --col flags.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dxftools/dxftab/internal/table"
	"github.com/dxftools/dxftab/internal/utils"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no layout with the requested name exists.
var ErrNotFound = errors.New("layout not found")

// Layout is one saved column configuration. Columns holds raw column specs
// ("name,boundary[,boundary]"), validated on save and parsed again at use so
// the stored file stays human-editable.
type Layout struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Columns     []string  `yaml:"columns"`
	Step        float64   `yaml:"step,omitempty"`
	CreatedAt   time.Time `yaml:"created_at"`
	UpdatedAt   time.Time `yaml:"updated_at"`
}

// Store reads and writes the layouts file.
type Store struct {
	path string
}

// NewStore returns a store backed by the given yaml file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns all saved layouts. A missing file is an empty collection.
func (s *Store) Load() ([]Layout, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read layouts: %w", err)
	}
	var ls []Layout
	if err := yaml.Unmarshal(b, &ls); err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}
	return ls, nil
}

func (s *Store) save(ls []Layout) error {
	b, err := yaml.Marshal(ls)
	if err != nil {
		return fmt.Errorf("marshal layouts: %w", err)
	}
	if err := utils.EnsureDir(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("mkdir layouts dir: %w", err)
	}
	return utils.SafeWriteFile(s.path, b)
}

// Put validates l's column specs and upserts it by name. New layouts get a
// fresh id and creation timestamp; existing ones keep both.
func (s *Store) Put(l Layout) error {
	if len(l.Columns) == 0 {
		return fmt.Errorf("layout %q: no columns", l.Name)
	}
	if _, err := table.ParseColumnSpecs(l.Columns); err != nil {
		return err
	}
	if l.Step < 0 {
		return fmt.Errorf("layout %q: step must not be negative", l.Name)
	}
	ls, err := s.Load()
	if err != nil {
		return err
	}
	now := time.Now()
	l.UpdatedAt = now
	for i := range ls {
		if ls[i].Name == l.Name {
			l.ID = ls[i].ID
			l.CreatedAt = ls[i].CreatedAt
			ls[i] = l
			return s.save(ls)
		}
	}
	l.ID = uuid.NewString()
	l.CreatedAt = now
	ls = append(ls, l)
	return s.save(ls)
}

// Get returns the layout with the given name.
func (s *Store) Get(name string) (Layout, error) {
	ls, err := s.Load()
	if err != nil {
		return Layout{}, err
	}
	for _, l := range ls {
		if l.Name == name {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Delete removes the layout with the given name.
func (s *Store) Delete(name string) error {
	ls, err := s.Load()
	if err != nil {
		return err
	}
	for i, l := range ls {
		if l.Name == name {
			return s.save(append(ls[:i], ls[i+1:]...))
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}
