package cli

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// --- ReadCommandFile Tests ---

func TestReadCommandFile_SkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.txt")
	content := "display this\n\n# comment\nsystem-view\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	commands, err := ReadCommandFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"display this", "system-view"}
	if !reflect.DeepEqual(commands, want) {
		t.Errorf("expected %v, got %v", want, commands)
	}
}

func TestReadCommandFile_TrimsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.txt")
	content := "  display version  \n\tospf 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	commands, err := ReadCommandFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"display version", "ospf 1"}
	if !reflect.DeepEqual(commands, want) {
		t.Errorf("expected %v, got %v", want, commands)
	}
}

func TestReadCommandFile_NotFound(t *testing.T) {
	_, err := ReadCommandFile(filepath.Join(t.TempDir(), "missing.txt"))

	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestReadCommandFile_OnlyComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.txt")
	if err := os.WriteFile(path, []byte("# one\n# two\n"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	commands, err := ReadCommandFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(commands) != 0 {
		t.Errorf("expected no commands, got %v", commands)
	}
}
