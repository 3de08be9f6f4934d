package hexcodec_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ocxtal-labs/nd/internal/hexcodec"
)

func TestFormatHexLine(t *testing.T) {
	line, err := hexcodec.FormatHexLine(hexcodec.Hex, 0x10, []byte("hi"), 4)
	if err != nil {
		t.Fatalf("FormatHexLine: %v", err)
	}
	want := fmt.Sprintf("%012x %04x ", 0x10, 2) + "|" + " 68 69" + strings.Repeat("   ", 2) + " | " + "hi\n"
	if line != want {
		t.Fatalf("got %q, want %q", line, want)
	}
}

func TestFormatHexLineNoHeader(t *testing.T) {
	line, err := hexcodec.FormatHexLine(hexcodec.HexNoHeader, 0x10, []byte("hi"), 2)
	if err != nil {
		t.Fatalf("FormatHexLine: %v", err)
	}
	want := "| 68 69 | hi\n"
	if line != want {
		t.Fatalf("got %q, want %q", line, want)
	}
}

func TestMosaicEscaping(t *testing.T) {
	line, err := hexcodec.FormatHexLine(hexcodec.HexNoHeader, 0, []byte{0x00, 0x7f, 0x41}, 3)
	if err != nil {
		t.Fatalf("FormatHexLine: %v", err)
	}
	if !strings.HasSuffix(line, "| ..A\n") {
		t.Fatalf("got %q, want mosaic suffix %q", line, "..A\n")
	}
}

func TestParseHexLineRoundTrip(t *testing.T) {
	data := []byte("The quick")
	line, err := hexcodec.FormatHexLine(hexcodec.Hex, 0x20, data, len(data))
	if err != nil {
		t.Fatalf("FormatHexLine: %v", err)
	}
	rec, err := hexcodec.ParseHexLine(hexcodec.Hex, line)
	if err != nil {
		t.Fatalf("ParseHexLine: %v", err)
	}
	if rec.Offset != 0x20 || rec.Length != uint64(len(data)) {
		t.Fatalf("got offset=%x length=%d, want offset=0x20 length=%d", rec.Offset, rec.Length, len(data))
	}
	if string(rec.Array) != string(data) {
		t.Fatalf("got array %q, want %q", rec.Array, data)
	}
}

func TestParseTruncatedRecordIsDeletion(t *testing.T) {
	rec, err := hexcodec.ParseHexLine(hexcodec.Hex, "00000000000010 0004")
	if err != nil {
		t.Fatalf("ParseHexLine: %v", err)
	}
	if !rec.Deletion {
		t.Fatal("expected deletion record")
	}
	if rec.Offset != 0x10 || rec.Length != 4 {
		t.Fatalf("got offset=%x length=%d", rec.Offset, rec.Length)
	}
}

func TestParseEmptyArrayIsDeletion(t *testing.T) {
	rec, err := hexcodec.ParseHexLine(hexcodec.Hex, "00000000000010 0004 | ")
	if err != nil {
		t.Fatalf("ParseHexLine: %v", err)
	}
	if !rec.Deletion {
		t.Fatal("expected deletion record")
	}
}

func Test16DigitFieldIsFatal(t *testing.T) {
	_, err := hexcodec.ParseHexLine(hexcodec.Hex, "0000000000000010 0004 | 00")
	if err == nil {
		t.Fatal("expected error for 16-digit offset field")
	}
}

func TestOddHexDigitTokenIsFatal(t *testing.T) {
	_, err := hexcodec.ParseHexLine(hexcodec.Hex, "00000000000010 0001 | a")
	if err == nil {
		t.Fatal("expected error for odd-digit hex token")
	}
}

func TestInvalidHexCharacterIsFatal(t *testing.T) {
	_, err := hexcodec.ParseHexLine(hexcodec.Hex, "00000000000010 0001 | zz")
	if err == nil {
		t.Fatal("expected error for invalid hex character")
	}
}

func TestNnxRejectsPrefix(t *testing.T) {
	_, err := hexcodec.ParseHexLine(hexcodec.HexNoHeader, "00000000000010 0001 | 41")
	if err == nil {
		t.Fatal("expected error for offset/length prefix in nnx format")
	}
}

func TestDecoderStream(t *testing.T) {
	src := "00000000000000 0002 | 68 69 | hi\n" +
		"00000000000002 0002 | 74 68 | th\n"
	dec, err := hexcodec.NewDecoder(strings.NewReader(src), hexcodec.Hex)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	var recs []hexcodec.Record
	for {
		rec, ok := dec.Next()
		if !ok {
			break
		}
		recs = append(recs, rec)
	}
	if err := dec.Err(); err != nil {
		t.Fatalf("Decoder.Err: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
}

func TestAssembleHexFillsGapsAndTruncates(t *testing.T) {
	records := []hexcodec.Record{
		{Offset: 2, Array: []byte{0x41, 0x42}},
		{Offset: 6, Array: []byte{0x43}},
	}
	out, err := hexcodec.Assemble(hexcodec.Hex, records, 0xff)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := []byte{0xff, 0xff, 0x41, 0x42, 0xff, 0xff, 0x43}
	if string(out) != string(want) {
		t.Fatalf("got %x, want %x", out, want)
	}
}

func TestAssembleConcatIgnoresOffsets(t *testing.T) {
	records := []hexcodec.Record{
		{Offset: 100, Array: []byte("ab")},
		{Offset: 0, Array: []byte("cd")},
	}
	out, err := hexcodec.Assemble(hexcodec.HexNoHeader, records, 0)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if string(out) != "abcd" {
		t.Fatalf("got %q, want %q", out, "abcd")
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]hexcodec.Format{
		"b":   hexcodec.Raw,
		"nnb": hexcodec.RawNoHeader,
		"x":   hexcodec.Hex,
		"nnx": hexcodec.HexNoHeader,
	}
	for s, want := range cases {
		got, err := hexcodec.ParseFormat(s)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %v, want %v", s, got, want)
		}
	}
	if _, err := hexcodec.ParseFormat("xx"); err == nil {
		t.Error("expected error for invalid format signature")
	}
}
