package keys

import (
	"errors"
	"os"
	"slices"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []string
	}{
		{"letter", []byte("w"), []string{"w"}},
		{"several letters", []byte("wasd"), []string{"w", "a", "s", "d"}},
		{"arrows", []byte("\x1b[A\x1b[B\x1b[C\x1b[D"), []string{KeyUp, KeyDown, KeyRight, KeyLeft}},
		{"application arrows", []byte("\x1bOA"), []string{KeyUp}},
		{"ctrl keys", []byte{3, 4}, []string{CtrlC, CtrlD}},
		{"lone escape", []byte{27}, []string{KeyEsc}},
		{"escape then letter", []byte{27, 'q'}, []string{KeyEsc, "q"}},
		{"other sequence", []byte("\x1b[3~x"), []string{KeyEsc, "x"}},
		{"unicode", []byte("é"), []string{"é"}},
		{"invalid utf8", []byte{0xff, 'd'}, []string{"d"}},
		{"empty", []byte{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAcquireRejectsNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	l, err := Acquire(r)
	if !errors.Is(err, ErrKeys.NotTerminal) {
		t.Fatalf("Acquire(pipe) error = %v, want NotTerminal", err)
	}
	if l != nil {
		t.Error("Acquire(pipe) should not return a listener")
	}
}

func TestPollKeyDoesNotBlock(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	l := newListener(int(r.Fd()))

	key, ok, err := l.PollKey()
	if err != nil || ok || key != "" {
		t.Fatalf("PollKey() on empty input = %q, %v, %v; want no key", key, ok, err)
	}

	if _, err := w.Write([]byte("wa\x1b[B")); err != nil {
		t.Fatal(err)
	}
	key, ok, err = l.PollKey()
	if err != nil || !ok {
		t.Fatalf("PollKey() = %q, %v, %v; want a key", key, ok, err)
	}
	if key != KeyDown {
		t.Errorf("PollKey() = %q, want latest key %q", key, KeyDown)
	}

	key, ok, err = l.PollKey()
	if err != nil || ok {
		t.Errorf("PollKey() after drain = %q, %v, %v; want no key", key, ok, err)
	}
}

func TestReleaseWithoutStateIsNoop(t *testing.T) {
	var nilListener *Listener
	if err := nilListener.Release(); err != nil {
		t.Errorf("nil Release() = %v", err)
	}

	l := newListener(0)
	if err := l.Release(); err != nil {
		t.Errorf("Release() = %v", err)
	}
	if err := l.Release(); err != nil {
		t.Errorf("second Release() = %v", err)
	}
}

func TestPollKeyNilListener(t *testing.T) {
	var l *Listener
	if _, _, err := l.PollKey(); !errors.Is(err, ErrKeys.NotAcquired) {
		t.Errorf("PollKey() on nil listener = %v, want NotAcquired", err)
	}
}
