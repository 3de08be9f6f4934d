package drain_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/ocxtal-labs/nd/internal/drain"
	"github.com/ocxtal-labs/nd/internal/hexcodec"
	"github.com/ocxtal-labs/nd/internal/span"
)

func TestTemplateHexField(t *testing.T) {
	tmpl, err := drain.CompileTemplate("out.{n:02x}.txt")
	if err != nil {
		t.Fatalf("CompileTemplate: %v", err)
	}
	name, err := tmpl.Render(0, 0)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if name != "out.00.txt" {
		t.Fatalf("got %q, want out.00.txt", name)
	}
	name, err = tmpl.Render(3, 1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if name != "out.03.txt" {
		t.Fatalf("got %q, want out.03.txt", name)
	}
}

func TestTemplateLiteralOnly(t *testing.T) {
	tmpl, err := drain.CompileTemplate("-")
	if err != nil {
		t.Fatalf("CompileTemplate: %v", err)
	}
	name, err := tmpl.Render(5, 2)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if name != "-" {
		t.Fatalf("got %q, want -", name)
	}
}

func TestTemplateExprField(t *testing.T) {
	tmpl, err := drain.CompileTemplate("{(n+l):d}.bin")
	if err != nil {
		t.Fatalf("CompileTemplate: %v", err)
	}
	name, err := tmpl.Render(10, 2)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if name != "12.bin" {
		t.Fatalf("got %q, want 12.bin", name)
	}
}

func TestTemplateUnterminatedField(t *testing.T) {
	if _, err := drain.CompileTemplate("out.{n.txt"); err == nil {
		t.Fatalf("expected error for unterminated field")
	}
}

func TestRenderSliceRaw(t *testing.T) {
	data := []byte("Hello\n")
	b, err := drain.RenderSlice(hexcodec.Raw, 0, data, span.Span{Start: 0, End: 3})
	if err != nil {
		t.Fatalf("RenderSlice: %v", err)
	}
	if string(b) != "Hel" {
		t.Fatalf("got %q, want Hel", b)
	}
}

func TestFileSinkStdoutOnDashOrEmpty(t *testing.T) {
	var out bytes.Buffer
	sink := drain.NewFileSink(&out)
	if err := sink.Write("-", []byte("a")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sink.Write("", []byte("b")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if out.String() != "ab" {
		t.Fatalf("got %q, want ab", out.String())
	}
}

func TestWriteTemplatedSplitsByName(t *testing.T) {
	dir := t.TempDir()
	sink := drain.NewFileSink(&bytes.Buffer{})
	tmpl, err := drain.CompileTemplate(dir + "/out.{n:02x}.txt")
	if err != nil {
		t.Fatalf("CompileTemplate: %v", err)
	}
	data := []byte("Hello\n")
	slices := []span.Span{{Start: 0, End: 3}, {Start: 3, End: 6}}
	if err := drain.WriteTemplated(sink, tmpl, hexcodec.Hex, 3, data, slices); err != nil {
		t.Fatalf("WriteTemplated: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	for name, want := range map[string]string{
		"out.00.txt": "000000000000 0003 | 48 65 6c | Hel\n",
		"out.03.txt": "000000000003 0003 | 6c 6f 0a | lo.\n",
	} {
		got, err := os.ReadFile(dir + "/" + name)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", name, err)
		}
		if string(got) != want {
			t.Fatalf("%s = %q, want %q", name, got, want)
		}
	}
}
