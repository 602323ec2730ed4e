//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

// Set by TestMain once the binary is built
var binPath = "binminder_e2e"

const (
	screenRows = 40
	screenCols = 120
	historyCap = 1 << 20

	seeTimeout   = 3 * time.Second
	readyTimeout = 5 * time.Second
)

const (
	keyEnter = "\r"
	keyCtrlC = "\x03"
	keyEsc   = "\x1b"
	keyTab   = "\t"
	keyRight = "l"
	keyEdit  = "e"
	keyHelp  = "?"
	keyQuit  = "q"
)

var escapeRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI
		`(?:\x1b\][^\x07]*\x07)|` + // OSC
		`(?:\x1b[\(\)][A-Za-z])|` + // charset
		`(?:\x1b[=>])|` + // keypad mode
		`\r`,
)

// history keeps the last historyCap bytes the app wrote, plus a running count
// so callers can ask for "everything since mark".
type history struct {
	mu      sync.Mutex
	data    []byte
	written int
}

func (h *history) append(p []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.data = append(h.data, p...)
	if over := len(h.data) - historyCap; over > 0 {
		h.data = append(h.data[:0:0], h.data[over:]...)
	}
	h.written += len(p)
}

// since returns the plain text written after mark
func (h *history) since(mark int) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := h.written - mark
	if n > len(h.data) {
		n = len(h.data)
	}
	return escapeRe.ReplaceAllString(string(h.data[len(h.data)-n:]), "")
}

func (h *history) mark() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.written
}

// session is one binminder process on a pseudo terminal, run in its own home
type session struct {
	t    *testing.T
	home string
	pty  *os.File
	tty  *os.File
	cmd  *exec.Cmd
	out  *history

	exited chan error
}

// newSession prepares an isolated home directory. The process is stopped
// and the home removed when the test ends.
func newSession(t *testing.T) *session {
	t.Helper()
	s := &session{t: t, home: t.TempDir(), out: &history{}}
	t.Cleanup(s.stop)
	return s
}

// start launches the app with args on a 40x120 terminal
func (s *session) start(args ...string) error {
	s.cmd = exec.Command(binPath, args...)
	s.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+s.home,
		"XDG_CONFIG_HOME="+filepath.Join(s.home, ".config"),
	)
	// The default log file is relative to the working directory
	s.cmd.Dir = s.home

	ptmx, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("open pty: %w", err)
	}
	s.pty, s.tty = ptmx, tty
	s.cmd.Stdin, s.cmd.Stdout, s.cmd.Stderr = tty, tty, tty

	size := struct{ rows, cols, x, y uint16 }{screenRows, screenCols, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptmx.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&size)))

	if err := s.cmd.Start(); err != nil {
		ptmx.Close()
		tty.Close()
		return fmt.Errorf("start binminder: %w", err)
	}

	s.exited = make(chan error, 1)
	go func() { s.exited <- s.cmd.Wait() }()
	go s.read(ptmx)
	return nil
}

func (s *session) read(ptmx *os.File) {
	buf := make([]byte, 8192)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			s.out.append(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// press writes raw key sequences to the terminal
func (s *session) press(keys ...string) {
	s.t.Helper()
	for _, k := range keys {
		if _, err := s.pty.Write([]byte(k)); err != nil {
			s.t.Fatalf("write %q: %v", k, err)
		}
	}
}

// typeText sends text one rune at a time, the way the text input sees typing
func (s *session) typeText(text string) {
	s.t.Helper()
	for _, r := range text {
		s.press(string(r))
		time.Sleep(10 * time.Millisecond)
	}
}

// waitSince polls the output written after mark until pred holds
func (s *session) waitSince(mark int, pred func(string) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if pred(s.out.since(mark)) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// see waits for text anywhere in the output
func (s *session) see(text string) bool {
	s.t.Helper()
	return s.waitSince(0, func(o string) bool { return strings.Contains(o, text) }, seeTimeout)
}

// seeAfter waits for text drawn after mark
func (s *session) seeAfter(mark int, text string, timeout time.Duration) bool {
	s.t.Helper()
	return s.waitSince(mark, func(o string) bool { return strings.Contains(o, text) }, timeout)
}

// ready waits for the first browsing frame
func (s *session) ready() bool {
	s.t.Helper()
	return s.waitSince(0, func(o string) bool {
		return strings.Contains(o, "Reminders:") && strings.Contains(o, "BROWSE")
	}, readyTimeout)
}

// edit opens the editing surface and waits for the EDIT badge
func (s *session) edit() bool {
	s.t.Helper()
	mark := s.out.mark()
	s.press(keyEdit)
	return s.waitForMode(mark, "EDIT")
}

// waitForMode waits for the mode badge (BROWSE or EDIT) to be redrawn after mark
func (s *session) waitForMode(mark int, label string) bool {
	s.t.Helper()
	return s.seeAfter(mark, label, seeTimeout)
}

// notice waits for the transient reminder acknowledgement
func (s *session) notice(text string) bool {
	s.t.Helper()
	return s.see(text)
}

// waitExit reports whether the process ended within timeout
func (s *session) waitExit(timeout time.Duration) bool {
	select {
	case err := <-s.exited:
		s.exited <- err
		return true
	case <-time.After(timeout):
		return false
	}
}

// logContents reads the default log file in the session home
func (s *session) logContents() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.home, "binminder.log"))
	return string(data), err
}

// writeConfig writes the config file the app reads by default
func (s *session) writeConfig(contents string) {
	s.t.Helper()
	dir := filepath.Join(s.home, ".config", "binminder")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(contents), 0o644); err != nil {
		s.t.Fatalf("write config: %v", err)
	}
}

// dumpTail logs the last n bytes of plain output
func (s *session) dumpTail(n int) {
	out := s.out.since(0)
	if len(out) > n {
		out = out[len(out)-n:]
	}
	s.t.Logf("--- last output ---\n%s", out)
}

func (s *session) stop() {
	if s.pty != nil {
		_ = s.pty.Close()
		s.pty = nil
	}
	if s.tty != nil {
		_ = s.tty.Close()
		s.tty = nil
	}
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
		s.waitExit(time.Second)
		s.cmd = nil
	}
}
