package cli

import (
	"bufio"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))
	var out strings.Builder

	got, err := GetSimpleText(r, "Say something", &out)
	if err != nil {
		t.Fatalf("GetSimpleText err: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Say something") {
		t.Fatalf("prompt missing: %q", out.String())
	}
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no newline"))
	got, err := GetSimpleText(r, "p", &strings.Builder{})
	if err != nil {
		t.Fatalf("GetSimpleText err: %v", err)
	}
	if got != "no newline" {
		t.Fatalf("got %q", got)
	}
}

func TestGetSimpleText_EmptyInputIsEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	if _, err := GetSimpleText(r, "p", &strings.Builder{}); err == nil {
		t.Fatalf("want EOF error")
	}
}

func TestGetMultiline(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("first\nsecond\n\nignored\n"))
	got, err := GetMultiline(r, "Description", &strings.Builder{})
	if err != nil {
		t.Fatalf("GetMultiline err: %v", err)
	}
	if got != "first\nsecond" {
		t.Fatalf("got %q", got)
	}
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out strings.Builder
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("GetPassword err: %v", err)
	}
	if string(pw) != "s3cret" {
		t.Fatalf("got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt missing: %q", out.String())
	}
}

func TestWipeBytes(t *testing.T) {
	b := []byte("sensitive")
	wipeBytes(b)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d not wiped", i)
		}
	}
}
