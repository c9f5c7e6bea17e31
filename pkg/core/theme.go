package core

import (
	"context"
	"errors"
	"fmt"
)

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeStore persists the theme under ThemeKey.
type ThemeStore struct {
	backend  Backend
	readOnly bool
}

// NewThemeStore creates a ThemeStore on backend.
func NewThemeStore(backend Backend, readOnly bool) *ThemeStore {
	return &ThemeStore{backend: backend, readOnly: readOnly}
}

// Get returns the stored theme, falling back to the system preference.
// An unknown stored value counts as unset.
func (t *ThemeStore) Get(ctx context.Context, systemDark bool) (Theme, error) {
	data, err := t.backend.Get(ctx, ThemeKey)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return "", fmt.Errorf("failed to read theme: %w", err)
	}
	if err == nil {
		if theme, perr := ParseTheme(string(data)); perr == nil {
			return theme, nil
		}
	}
	if systemDark {
		return ThemeDark, nil
	}
	return ThemeLight, nil
}

// Set stores theme.
func (t *ThemeStore) Set(ctx context.Context, theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	if t.readOnly {
		return ErrReadOnly
	}
	if err := t.backend.Set(ctx, ThemeKey, []byte(theme)); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}
	return nil
}

// Toggle flips the current theme and stores the result.
func (t *ThemeStore) Toggle(ctx context.Context, systemDark bool) (Theme, error) {
	current, err := t.Get(ctx, systemDark)
	if err != nil {
		return "", err
	}
	next := current.Opposite()
	if err := t.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
