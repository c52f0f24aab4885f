package core

import (
	"encoding/json"
	"fmt"
	"os"
)

// ModEntry is one record in the game's mod-list.json manifest.
type ModEntry struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// ModList is the parsed manifest. The manifest on disk is the single source
// of truth for which mods are known and enabled; the first entry is the
// built-in "base" package and is excluded from reads unless asked for.
// Duplicate names are tolerated - the game cleans those up itself.
type ModList struct {
	Mods []ModEntry `json:"mods"`

	path string
}

// LoadModList reads and parses the manifest file at path.
func LoadModList(path string) (*ModList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mod list %s: %w", path, err)
	}
	list := &ModList{path: path}
	if err := json.Unmarshal(data, list); err != nil {
		return nil, fmt.Errorf("failed to parse mod list %s: %w", path, err)
	}
	return list, nil
}

// Entries returns the manifest entries, excluding the leading base package
// unless includeBase is set.
func (l *ModList) Entries(includeBase bool) []ModEntry {
	if includeBase || len(l.Mods) == 0 {
		return l.Mods
	}
	return l.Mods[1:]
}

// Names returns the names of all managed mods (base excluded).
func (l *ModList) Names() []string {
	entries := l.Entries(false)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}

// Has reports whether a managed mod with the given name exists.
func (l *ModList) Has(name string) bool {
	for _, entry := range l.Entries(false) {
		if entry.Name == name {
			return true
		}
	}
	return false
}

// Append adds an entry to the manifest. Duplicates are not checked here; the
// game tolerates and cleans them, and appending anyway covers the case where
// the mod file exists but the manifest is stale.
func (l *ModList) Append(entry ModEntry) {
	l.Mods = append(l.Mods, entry)
}

// Remove drops every entry with the given name, reporting whether any was
// found. The base entry is never removed.
func (l *ModList) Remove(name string) bool {
	if len(l.Mods) == 0 {
		return false
	}
	kept := l.Mods[:1]
	found := false
	for _, entry := range l.Mods[1:] {
		if entry.Name == name {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	l.Mods = kept
	return found
}

// SetEnabled flips the enabled state of every entry with the given name,
// reporting whether any was found.
func (l *ModList) SetEnabled(name string, enabled bool) bool {
	found := false
	for i := range l.Mods {
		if l.Mods[i].Name == name {
			l.Mods[i].Enabled = enabled
			found = true
		}
	}
	return found
}

// Write saves the manifest back to the file it was loaded from.
func (l *ModList) Write() error {
	data, err := json.MarshalIndent(l, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialise mod list: %w", err)
	}
	if err := os.WriteFile(l.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write mod list %s: %w", l.path, err)
	}
	return nil
}
