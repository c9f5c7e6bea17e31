package notekeeper_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aretw0/notekeeper"
	"github.com/aretw0/notekeeper/pkg/core"
)

// Example_basic creates a notebook, adds a note and lists it back.
func Example_basic() {
	ctx := context.TODO()

	// A fixed clock keeps the generated IDs stable for the example output.
	now := time.UnixMilli(1700000000000)
	store, err := notekeeper.New(ctx, "",
		notekeeper.WithAdapter("memory"),
		notekeeper.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		log.Fatal(err)
	}

	nb, err := store.CreateNotebook(ctx, "Work")
	if err != nil {
		log.Fatal(err)
	}

	now = now.Add(time.Millisecond)
	if _, err := store.CreateNote(ctx, nb.ID, core.NoteInput{Title: "A", Text: "B"}); err != nil {
		log.Fatal(err)
	}

	notes, err := store.ListNotes(ctx, nb.ID)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Notebook: %s (%s)\n", nb.Name, nb.ID)
	for _, n := range notes {
		fmt.Printf("Note: %s %q %q %d\n", n.ID, n.Title, n.Text, n.PostedOn)
	}

	// Output:
	// Notebook: Work (1700000000000)
	// Note: 1700000000001 "A" "B" 1700000000001
}

// Example_theme toggles the persisted theme.
func Example_theme() {
	ctx := context.TODO()
	store, err := notekeeper.New(ctx, "", notekeeper.WithAdapter("memory"))
	if err != nil {
		log.Fatal(err)
	}

	themes := notekeeper.Themes(store)
	theme, err := themes.Toggle(ctx, false)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(theme)

	// Output:
	// dark
}
