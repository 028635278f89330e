package merges

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmit(t *testing.T) {
	header := []string{"a", "b"}
	rows := [][]string{
		{"plain", "with,comma"},
		{"with \"quote\"", "multi\nline"},
	}
	var buf bytes.Buffer
	if err := Emit(&buf, header, rows); err != nil {
		t.Fatal(err)
	}
	expected := "a,b\nplain,\"with,comma\"\n\"with \"\"quote\"\"\",\"multi\nline\"\n"
	if got := buf.String(); got != expected {
		t.Errorf("unexpected CSV:\nexpected %q\ngot      %q", expected, got)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(append([][]string{header}, rows...), records); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := Emit(&buf, Header(), nil); err != nil {
		t.Fatal(err)
	}
	expected := "source_package,Responsibility,Status,Progress,Ubuntu Version,Debian Version," +
		"vs debian,Upstream Version,Days since last merge,Last Uploader,link,uploader," +
		"binaries,short_description,uploaded\n"
	if got := buf.String(); got != expected {
		t.Errorf("unexpected header line: %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merges-main.csv")
	if err := WriteFile(path, []string{"a"}, [][]string{{"1"}, {"2"}}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "a\n1\n2\n" {
		t.Errorf("unexpected file contents %q", got)
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "merges-main.csv")
	if err := WriteFile(path, Header(), nil); err == nil {
		t.Errorf("expected error writing into a missing directory")
	}
}
