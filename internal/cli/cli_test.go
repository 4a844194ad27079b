package cli

import (
	"errors"
	"testing"
)

func TestTryExpandCommand(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"cap", "capture"},
		{"c", "capture"},
		{"capture", ""}, // exact match needs no expansion
		{"zzz", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := tryExpandCommand(tt.prefix); got != tt.want {
			t.Errorf("tryExpandCommand(%q) = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}

func TestIsPrintedError(t *testing.T) {
	if IsPrintedError(errors.New("plain")) {
		t.Error("plain error should not be marked printed")
	}
	if !IsPrintedError(errPrinted{errors.New("reported")}) {
		t.Error("errPrinted should be marked printed")
	}
}
