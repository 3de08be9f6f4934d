package source_test

import (
	"io"
	"strings"
	"testing"

	"github.com/ocxtal-labs/nd/internal/source"
)

func TestCatPadsEachSourceIndependently(t *testing.T) {
	out, err := source.Cat(5, [][]byte{[]byte("Hello\n"), []byte("world\n")}, 0)
	if err != nil {
		t.Fatalf("Cat: %v", err)
	}
	want := "Hello\n\x00\x00\x00\x00world\n\x00\x00\x00\x00"
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestCatNoPaddingWhenNIsOne(t *testing.T) {
	out, err := source.Cat(1, [][]byte{[]byte("ab"), []byte("cde")}, 0xff)
	if err != nil {
		t.Fatalf("Cat: %v", err)
	}
	if string(out) != "abcde" {
		t.Fatalf("got %q", out)
	}
}

func TestCatRejectsNonPositiveN(t *testing.T) {
	if _, err := source.Cat(0, nil, 0); err == nil {
		t.Fatal("expected error for N=0")
	}
}

func TestZipRoundRobin(t *testing.T) {
	out, err := source.Zip(1, []io.Reader{strings.NewReader("AB"), strings.NewReader("12")}, 0)
	if err != nil {
		t.Fatalf("Zip: %v", err)
	}
	if string(out) != "A1B2" {
		t.Fatalf("got %q, want %q", out, "A1B2")
	}
}

func TestZipPadsShortSourcePerRound(t *testing.T) {
	out, err := source.Zip(2, []io.Reader{strings.NewReader("ABCDEF"), strings.NewReader("xy")}, 0)
	if err != nil {
		t.Fatalf("Zip: %v", err)
	}
	want := "ABxyCD\x00\x00EF\x00\x00"
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestZipRejectsNonPositiveN(t *testing.T) {
	if _, err := source.Zip(0, nil, 0); err == nil {
		t.Fatal("expected error for N=0")
	}
}

func TestDedupFiles(t *testing.T) {
	got := source.DedupFiles([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestIsStdinToken(t *testing.T) {
	for _, tok := range []string{"-", "/dev/stdin"} {
		if !source.IsStdinToken(tok) {
			t.Errorf("IsStdinToken(%q) = false, want true", tok)
		}
	}
	if source.IsStdinToken("file.bin") {
		t.Error("IsStdinToken(file.bin) = true, want false")
	}
}

func TestStdinGuardRejectsSecondUse(t *testing.T) {
	var g source.StdinGuard
	if _, err := g.Open("-"); err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := g.Open("/dev/stdin"); err == nil {
		t.Fatal("expected error on second stdin use")
	}
}
