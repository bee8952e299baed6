package jardiff

import (
	"bytes"
	"strings"
	"testing"
)

func TestEqual(t *testing.T) {
	same := []byte("a\nb\nc\n")
	if !Equal(Lines(same, same)) {
		t.Error("identical documents reported different")
	}
	if Equal(Lines([]byte("a\nb\n"), []byte("a\nc\n"))) {
		t.Error("differing documents reported equal")
	}
}

func TestFormat(t *testing.T) {
	from := []byte("keep\nold\nend\n")
	to := []byte("keep\nnew\nend\n")
	var b bytes.Buffer
	if err := Format(&b, Lines(from, to), false); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{" keep\n", "-old\n", "+new\n", " end\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatWholeLinesOnly(t *testing.T) {
	// the diff is line-based: a one-character change replaces the line
	var b bytes.Buffer
	if err := Format(&b, Lines([]byte("value: 1\n"), []byte("value: 2\n")), false); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "-value: 1\n") || !strings.Contains(out, "+value: 2\n") {
		t.Errorf("unexpected diff output:\n%s", out)
	}
}
