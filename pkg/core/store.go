package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// DefaultNotebookName replaces a blank notebook name on creation.
const DefaultNotebookName = "Untitled"

// StoreConfig holds the optional collaborators of a Store.
type StoreConfig struct {
	Key      string      // Backend key of the document. Defaults to DefaultStorageKey.
	IDs      IDGenerator // Defaults to TimestampIDs(Clock).
	Clock    Clock       // Defaults to time.Now.
	Logger   *slog.Logger
	ReadOnly bool
}

// Store is the repository of notebooks and notes.
//
// Every call re-reads the whole document from the backend, discarding the
// previous mirror (last writer wins), and every mutation overwrites the whole
// document. The mutex only serializes callers inside this process.
type Store struct {
	mu      sync.Mutex
	backend Backend
	config  StoreConfig

	doc       Document
	writes    int
	lastWrite *time.Time
}

// NewStore creates a Store persisting through backend.
func NewStore(backend Backend, config StoreConfig) *Store {
	if config.Key == "" {
		config.Key = DefaultStorageKey
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.IDs == nil {
		config.IDs = TimestampIDs(config.Clock)
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		backend: backend,
		config:  config,
		doc:     Document{Notebooks: []Notebook{}},
	}
}

// Backend returns the persistence strategy of the store.
func (s *Store) Backend() Backend {
	return s.backend
}

// ReadOnly reports whether mutations are rejected.
func (s *Store) ReadOnly() bool {
	return s.config.ReadOnly
}

// Initialize prepares the backend and writes an empty document if none exists yet.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if init, ok := s.backend.(Initializer); ok && !s.config.ReadOnly {
		if err := init.Initialize(ctx); err != nil {
			return fmt.Errorf("failed to initialize backend: %w", err)
		}
	}

	_, err := s.backend.Get(ctx, s.config.Key)
	if err == nil {
		return s.load(ctx)
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if s.config.ReadOnly {
		return nil
	}

	s.doc = Document{Notebooks: []Notebook{}}
	return s.persist(ctx)
}

// load replaces the mirror with the persisted document.
// A missing key reads as an empty document.
func (s *Store) load(ctx context.Context) error {
	data, err := s.backend.Get(ctx, s.config.Key)
	if errors.Is(err, ErrKeyNotFound) {
		s.doc = Document{Notebooks: []Notebook{}}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return fmt.Errorf("failed to decode document %q: %w", s.config.Key, err)
	}
	s.doc = doc
	return nil
}

// persist overwrites the persisted document with the mirror.
func (s *Store) persist(ctx context.Context) error {
	if s.config.ReadOnly {
		return ErrReadOnly
	}

	data, err := EncodeDocument(s.doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := s.backend.Set(ctx, s.config.Key, data); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	now := s.config.Clock()
	s.writes++
	s.lastWrite = &now
	return nil
}

// mutate runs fn against a freshly loaded mirror and persists the result.
func (s *Store) mutate(ctx context.Context, fn func() error) error {
	if s.config.ReadOnly {
		return ErrReadOnly
	}
	if err := s.load(ctx); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return s.persist(ctx)
}

func (s *Store) findNotebookIndex(id string) int {
	for i := range s.doc.Notebooks {
		if s.doc.Notebooks[i].ID == id {
			return i
		}
	}
	return -1
}

func findNoteIndex(nb *Notebook, id string) int {
	for i := range nb.Notes {
		if nb.Notes[i].ID == id {
			return i
		}
	}
	return -1
}

// findNote scans every notebook for the note.
func (s *Store) findNote(id string) (nbIdx, noteIdx int) {
	for i := range s.doc.Notebooks {
		if j := findNoteIndex(&s.doc.Notebooks[i], id); j >= 0 {
			return i, j
		}
	}
	return -1, -1
}

// CreateNotebook appends a new, empty notebook.
func (s *Store) CreateNotebook(ctx context.Context, name string) (Notebook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		name = DefaultNotebookName
	}

	nb := Notebook{
		ID:    s.config.IDs(),
		Name:  name,
		Notes: []Note{},
	}
	err := s.mutate(ctx, func() error {
		s.doc.Notebooks = append(s.doc.Notebooks, nb)
		return nil
	})
	if err != nil {
		return Notebook{}, err
	}

	s.config.Logger.Debug("notebook created", "id", nb.ID, "name", nb.Name)
	return nb.clone(), nil
}

// CreateNote prepends a new note to the notebook.
func (s *Store) CreateNote(ctx context.Context, notebookID string, in NoteInput) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var note Note
	err := s.mutate(ctx, func() error {
		i := s.findNotebookIndex(notebookID)
		if i < 0 {
			return notebookNotFound(notebookID)
		}
		note = Note{
			ID:         s.config.IDs(),
			NotebookID: notebookID,
			Title:      in.Title,
			Text:       in.Text,
			PostedOn:   s.config.Clock().UnixMilli(),
		}
		nb := &s.doc.Notebooks[i]
		nb.Notes = append([]Note{note}, nb.Notes...)
		return nil
	})
	if err != nil {
		return Note{}, err
	}

	s.config.Logger.Debug("note created", "id", note.ID, "notebook", notebookID)
	return note, nil
}

// ListNotebooks returns every notebook in creation order.
func (s *Store) ListNotebooks(ctx context.Context) ([]Notebook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s.doc.clone().Notebooks, nil
}

// GetNotebook returns a single notebook.
func (s *Store) GetNotebook(ctx context.Context, id string) (Notebook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return Notebook{}, err
	}
	i := s.findNotebookIndex(id)
	if i < 0 {
		return Notebook{}, notebookNotFound(id)
	}
	return s.doc.Notebooks[i].clone(), nil
}

// ListNotes returns the notes of a notebook, most recent first.
func (s *Store) ListNotes(ctx context.Context, notebookID string) ([]Note, error) {
	nb, err := s.GetNotebook(ctx, notebookID)
	if err != nil {
		return nil, err
	}
	return nb.Notes, nil
}

// GetNote finds a note in any notebook.
func (s *Store) GetNote(ctx context.Context, noteID string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return Note{}, err
	}
	i, j := s.findNote(noteID)
	if i < 0 {
		return Note{}, noteNotFound(noteID)
	}
	return s.doc.Notebooks[i].Notes[j], nil
}

// UpdateNotebook renames a notebook.
func (s *Store) UpdateNotebook(ctx context.Context, id, name string) (Notebook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated Notebook
	err := s.mutate(ctx, func() error {
		i := s.findNotebookIndex(id)
		if i < 0 {
			return notebookNotFound(id)
		}
		s.doc.Notebooks[i].Name = name
		updated = s.doc.Notebooks[i].clone()
		return nil
	})
	if err != nil {
		return Notebook{}, err
	}

	s.config.Logger.Debug("notebook renamed", "id", id, "name", name)
	return updated, nil
}

// UpdateNote merges the non-nil fields of patch into the note.
// ID, notebook and posting time never change.
func (s *Store) UpdateNote(ctx context.Context, noteID string, patch NotePatch) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated Note
	err := s.mutate(ctx, func() error {
		i, j := s.findNote(noteID)
		if i < 0 {
			return noteNotFound(noteID)
		}
		note := &s.doc.Notebooks[i].Notes[j]
		if patch.Title != nil {
			note.Title = *patch.Title
		}
		if patch.Text != nil {
			note.Text = *patch.Text
		}
		updated = *note
		return nil
	})
	if err != nil {
		return Note{}, err
	}

	s.config.Logger.Debug("note updated", "id", noteID)
	return updated, nil
}

// DeleteNotebook removes a notebook together with its notes.
func (s *Store) DeleteNotebook(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.mutate(ctx, func() error {
		i := s.findNotebookIndex(id)
		if i < 0 {
			return notebookNotFound(id)
		}
		s.doc.Notebooks = append(s.doc.Notebooks[:i], s.doc.Notebooks[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	s.config.Logger.Debug("notebook deleted", "id", id)
	return nil
}

// DeleteNote removes a note and returns the notes left in its notebook.
func (s *Store) DeleteNote(ctx context.Context, notebookID, noteID string) ([]Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var remaining []Note
	err := s.mutate(ctx, func() error {
		i := s.findNotebookIndex(notebookID)
		if i < 0 {
			return notebookNotFound(notebookID)
		}
		nb := &s.doc.Notebooks[i]
		j := findNoteIndex(nb, noteID)
		if j < 0 {
			return noteNotFound(noteID)
		}
		nb.Notes = append(nb.Notes[:j], nb.Notes[j+1:]...)
		remaining = cloneNotes(nb.Notes)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.config.Logger.Debug("note deleted", "id", noteID, "notebook", notebookID)
	return remaining, nil
}

// Export returns a copy of the whole document.
func (s *Store) Export(ctx context.Context) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return Document{}, err
	}
	return s.doc.clone(), nil
}

// Import overwrites the whole document.
func (s *Store) Import(ctx context.Context, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.ReadOnly {
		return ErrReadOnly
	}
	s.doc = normalize(doc.clone())
	if err := s.persist(ctx); err != nil {
		return err
	}

	s.config.Logger.Info("document imported", "notebooks", len(s.doc.Notebooks))
	return nil
}
