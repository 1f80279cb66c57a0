package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWordsSkipsCommentsAndDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	body := "# header\napple\n\nbanana\napple\nCherry\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	words, err := LoadWords(path, FilterForLang("en"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(words) != 2 || words[0] != "apple" || words[1] != "banana" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("# only a comment\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadWords(path, nil); err == nil {
		t.Fatalf("expected empty list error")
	}
}
