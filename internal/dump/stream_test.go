package dump

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFormatStream_EmptyInputProducesNoLines(t *testing.T) {
	layout := mustLayout(t, 32, 4, true)
	var lines []string
	err := FormatStream(bytes.NewReader(nil), layout, mustProfile(t, "default"), func(line string) {
		lines = append(lines, line)
	})
	if err != nil {
		t.Fatalf("empty input is not an error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("empty input produced %d line(s)", len(lines))
	}
}

func TestFormatStream_ShortFinalRow(t *testing.T) {
	// 5 bytes into 4-byte rows: one full row, one row holding a single
	// byte plus three blank padding positions.
	layout := mustLayout(t, 4, 2, false)
	input := []byte{0x00, 0xff, 0x20, 0x7f, 0x41}

	var lines []string
	err := FormatStream(bytes.NewReader(input), layout, mustProfile(t, "default"), func(line string) {
		lines = append(lines, line)
	})
	if err != nil {
		t.Fatalf("FormatStream: %v", err)
	}
	want := []string{
		"00 ff  20 7f" + "  " + ".. .",
		"41" + strings.Repeat(" ", 10) + "  " + "A   ",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d line(s), want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d\n got: %q\nwant: %q", i, lines[i], want[i])
		}
	}
}

func TestFormatStream_ExactMultipleOfRowLength(t *testing.T) {
	layout := mustLayout(t, 4, 4, false)
	var lines []string
	err := FormatStream(strings.NewReader("ABCDEFGH"), layout, mustProfile(t, "default"), func(line string) {
		lines = append(lines, line)
	})
	if err != nil {
		t.Fatalf("FormatStream: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d line(s), want 2", len(lines))
	}
	if lines[0] != "41 42 43 44"+"  "+"ABCD" {
		t.Errorf("line 0: %q", lines[0])
	}
	if lines[1] != "45 46 47 48"+"  "+"EFGH" {
		t.Errorf("line 1: %q", lines[1])
	}
}

// failingReader serves its data, then fails every subsequent read.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestFormatStream_ReadErrorAbortsAfterEmittedLines(t *testing.T) {
	layout := mustLayout(t, 4, 4, false)
	cause := errors.New("device yanked")
	src := &failingReader{data: []byte("ABCD"), err: cause}

	var lines []string
	err := FormatStream(src, layout, mustProfile(t, "default"), func(line string) {
		lines = append(lines, line)
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *ReadError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not wrapped: %v", err)
	}
	// The full row read before the failure was already handed to the
	// sink and stands.
	if len(lines) != 1 {
		t.Fatalf("got %d line(s) before failure, want 1", len(lines))
	}
	if !strings.HasPrefix(lines[0], "41 42 43 44") {
		t.Errorf("line 0: %q", lines[0])
	}
}

func TestFormatStream_SinkPrefixing(t *testing.T) {
	// The caller owns per-line labels; the stream formatter only ever
	// sees bytes.
	layout := mustLayout(t, 4, 4, false)
	var out bytes.Buffer
	err := FormatStream(strings.NewReader("ABCDE"), layout, mustProfile(t, "default"), func(line string) {
		out.WriteString("sample.bin: ")
		out.WriteString(line)
		out.WriteByte('\n')
	})
	if err != nil {
		t.Fatalf("FormatStream: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if !strings.HasPrefix(line, "sample.bin: ") {
			t.Errorf("line missing prefix: %q", line)
		}
	}
}
