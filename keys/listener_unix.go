//go:build unix

package keys

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Listener owns raw mode on a terminal and polls it for keys without blocking.
type Listener struct {
	fd          int
	originalTrm *term.State
	buf         []byte
}

// Acquire switches f into raw mode. The caller must Release the listener on
// every exit path, including panics.
func Acquire(f *os.File) (*Listener, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrKeys.NotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}

	l := newListener(fd)
	l.originalTrm = oldState
	return l, nil
}

func newListener(fd int) *Listener {
	return &Listener{fd: fd, buf: make([]byte, 64)}
}

// Release restores the terminal state recorded by Acquire. Calling it again is a no-op.
func (l *Listener) Release() error {
	if l == nil || l.originalTrm == nil {
		return nil
	}
	state := l.originalTrm
	l.originalTrm = nil
	return term.Restore(l.fd, state)
}

// PollKey returns the most recent key pending on the terminal, or false when
// nothing is ready. It never waits.
func (l *Listener) PollKey() (string, bool, error) {
	if l == nil {
		return "", false, ErrKeys.NotAcquired
	}

	fds := []unix.PollFd{{Fd: int32(l.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return "", false, nil
		}
		return "", false, fmt.Errorf("poll: %w", err)
	}
	if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return "", false, nil
	}

	rn, err := unix.Read(l.fd, l.buf)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read: %w", err)
	}
	if rn <= 0 {
		return "", false, nil
	}

	pressed := Decode(l.buf[:rn])
	if len(pressed) == 0 {
		return "", false, nil
	}
	return pressed[len(pressed)-1], true, nil
}
