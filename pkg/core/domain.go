// Package core holds the notekeeper domain: notebooks, notes, the persisted
// document that contains them and the ports the Store needs from storage.
package core

import "time"

// DefaultStorageKey is the backend key holding the whole document.
const DefaultStorageKey = "notekeeperDB"

// ThemeKey is the backend key holding the UI theme.
const ThemeKey = "theme"

// Note is a titled text entry belonging to exactly one notebook.
type Note struct {
	ID         string `json:"id" yaml:"id"`
	NotebookID string `json:"notebookId" yaml:"notebookId"`
	Title      string `json:"title" yaml:"title"`
	Text       string `json:"text" yaml:"text"`
	PostedOn   int64  `json:"postedOn" yaml:"postedOn"` // Unix milliseconds
}

// PostedAt returns PostedOn as a time.Time.
func (n Note) PostedAt() time.Time {
	return time.UnixMilli(n.PostedOn)
}

// Notebook is a named container of notes, most recent note first.
type Notebook struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Notes []Note `json:"notes" yaml:"notes"`
}

// Document is the single blob representing the entire persisted state.
type Document struct {
	Notebooks []Notebook `json:"notebooks" yaml:"notebooks"`
}

// NoteInput carries the caller supplied fields of a new note.
type NoteInput struct {
	Title string
	Text  string
}

// NotePatch is a shallow update. Nil fields are left untouched.
type NotePatch struct {
	Title *string
	Text  *string
}

// EventType represents the type of change observed on a backend key.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of a backend key.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return string(e.Type) + " " + e.Key
}

// clone returns a deep copy so callers never alias the Store's mirror.
func (nb Notebook) clone() Notebook {
	out := nb
	out.Notes = cloneNotes(nb.Notes)
	return out
}

func cloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}

func (d Document) clone() Document {
	out := Document{Notebooks: make([]Notebook, len(d.Notebooks))}
	for i, nb := range d.Notebooks {
		out.Notebooks[i] = nb.clone()
	}
	return out
}
