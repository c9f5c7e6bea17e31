// Package notekeeper is the Composition Root for the notekeeper application.
//
// It connects the core domain (notebooks, notes and the Store that owns them)
// with the persistence adapters using the Hexagonal Architecture pattern.
//
// The whole state is one JSON document stored under a single key, re-read on
// every call and overwritten on every mutation. Where that key lives is up to
// the injected backend: a directory of files, SQLite, Redis or memory.
//
// Usage:
//
//	store, err := notekeeper.New(ctx, "./data",
//		notekeeper.WithAutoInit(true),
//		notekeeper.WithLogger(logger),
//	)
//
//	nb, err := store.CreateNotebook(ctx, "Work")
//	note, err := store.CreateNote(ctx, nb.ID, core.NoteInput{Title: "A", Text: "B"})
package notekeeper
