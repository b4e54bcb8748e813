package terminal

import (
	"bytes"
	"testing"
)

func TestClear_SkipsNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	Clear(&buf)
	if buf.Len() != 0 {
		t.Errorf("Clear wrote %q to a buffer", buf.String())
	}
	if IsTerminal(&buf) {
		t.Error("a buffer is not a terminal")
	}
}

func TestGetSize_Positive(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize = %dx%d", w, h)
	}
}
