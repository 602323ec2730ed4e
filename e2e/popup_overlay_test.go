//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpPager(t *testing.T) {
	t.Parallel()
	s := newSession(t)
	require.NoError(t, s.start(), "Failed to start app")
	require.True(t, s.ready(), "Should draw the browsing frame")

	mark := s.out.mark()
	s.press(keyHelp)
	require.True(t, s.seeAfter(mark, "previous/next week", seeTimeout), "Pager should show the key help")

	// q closes the pager, then keys reach the widget again
	s.press(keyQuit)
	require.True(t, s.edit(), "Should return to the widget after closing the pager")
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()
	s := newSession(t)
	s.writeConfig("[ui]\nuse_pager_for_help = false\n")
	require.NoError(t, s.start(), "Failed to start app")
	require.True(t, s.ready(), "Should draw the browsing frame")

	s.press(keyHelp)
	require.True(t, s.see("Actual garbage app help"), "Overlay should show help")

	s.press(keyEsc, keyQuit)
	require.True(t, s.waitExit(2*time.Second), "q should quit once the overlay is closed")
}
