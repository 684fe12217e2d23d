package utils

import (
	"bytes"
	"os"
	"path"
	"testing"
)

func TestResolvePath(t *testing.T) {
	if got := ResolvePath("/etc/config.toml", "/tmp"); got != "/etc/config.toml" {
		t.Error("Absolute path should be returned as-is, got", got)
	}
	if got := ResolvePath("config.toml", "/tmp"); got != "/tmp/config.toml" {
		t.Error("Relative path should resolve against dir, got", got)
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "items.txt")
	if err := os.WriteFile(file, []byte("alpha\nbeta\ngamma\n"), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := ReadLines(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatal("Expected 3 items, got", len(items))
	}
	if !bytes.Equal(items[0], []byte("alpha")) ||
		!bytes.Equal(items[2], []byte("gamma")) {
		t.Error("Wrong item contents")
	}
}

func TestReadLinesNoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "items.txt")
	if err := os.WriteFile(file, []byte("alpha\nbeta"), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := ReadLines(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Error("Expected 2 items, got", len(items))
	}
}
