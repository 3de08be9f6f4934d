package ndcli_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ocxtal-labs/nd/internal/ndcli"
)

func TestReportAppendsUsageHintOnArgErrors(t *testing.T) {
	var buf bytes.Buffer
	code := ndcli.Report(&buf, ndcli.Errorf(ndcli.ARG, "unknown flag %q", "--bogus"))
	if code != 2 {
		t.Fatalf("code = %d, want 2", code)
	}
	if !strings.Contains(buf.String(), "error: unknown flag") || !strings.Contains(buf.String(), "--help") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestReportOmitsHintOnOtherCategories(t *testing.T) {
	var buf bytes.Buffer
	code := ndcli.Report(&buf, ndcli.Errorf(ndcli.SEMANTIC, "overlapping patch"))
	if code != 4 {
		t.Fatalf("code = %d, want 4", code)
	}
	if strings.Contains(buf.String(), "--help") {
		t.Fatalf("unexpected usage hint in %q", buf.String())
	}
}

func TestReportWrapsPlainErrors(t *testing.T) {
	var buf bytes.Buffer
	code := ndcli.Report(&buf, fmt.Errorf("boom"))
	if code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
	if buf.String() != "error: boom\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestReportNilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	if code := ndcli.Report(&buf, nil); code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
