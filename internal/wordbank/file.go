package wordbank

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// File is the TOML layout of a word bank file:
//
//	name = "animals"
//
//	[[levels]]
//	words = ["cat", "dog"]
type File struct {
	Name   string      `toml:"name"`
	Levels []FileLevel `toml:"levels"`
}

// FileLevel holds one level's words.
type FileLevel struct {
	Words []string `toml:"words"`
}

// Load reads a bank from a TOML file.
func Load(path string, picker Picker) (*Bank, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to decode word bank: %w", err)
	}
	name := f.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	levels := make([][]string, 0, len(f.Levels))
	for _, lvl := range f.Levels {
		levels = append(levels, lvl.Words)
	}
	bank, err := New(name, levels, picker)
	if err != nil {
		return nil, fmt.Errorf("invalid word bank %s: %w", path, err)
	}
	return bank, nil
}

// Save writes the bank to path atomically.
func Save(path string, b *Bank) error {
	f := File{Name: b.name, Levels: make([]FileLevel, 0, len(b.levels))}
	for _, words := range b.levels {
		f.Levels = append(f.Levels, FileLevel{Words: words})
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create bank dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "bank-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp bank: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := toml.NewEncoder(tmpFile).Encode(f); err != nil {
		return fmt.Errorf("failed to encode bank: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close bank: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write bank: %w", err)
	}
	return nil
}

// Resolve finds a bank by built-in name, by name inside dir, or by file path.
func Resolve(ref, dir string, picker Picker) (*Bank, error) {
	if _, ok := builtins[strings.ToLower(ref)]; ok {
		return Builtin(ref, picker)
	}
	candidates := []string{ref}
	if dir != "" && !strings.ContainsRune(ref, os.PathSeparator) {
		candidates = append(candidates, filepath.Join(dir, ref+".toml"))
	}
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return Load(path, picker)
	}
	return nil, fmt.Errorf("word bank %q not found (built-in: %s; custom banks in %s)", ref, strings.Join(BuiltinNames(), ", "), dir)
}
