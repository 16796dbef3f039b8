package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultraupload/ultraupload/internal/client/models"
	"github.com/ultraupload/ultraupload/internal/client/session"
)

func TestRun_RestoredSessionLoadsProfile(t *testing.T) {
	silence(t)
	a, s, p, _, out := newTestApp(t, "")
	s.restoreState = session.StateAuthenticated
	s.user = &models.User{ID: "1", Username: "ana", FirstName: "Ana"}
	a.reader = bufio.NewReader(strings.NewReader("exit\n"))

	a.Run(context.Background())

	assert.Equal(t, 1, p.loaded)
	assert.Contains(t, out.String(), "Hola, Ana")
}

func TestRun_NoSession(t *testing.T) {
	silence(t)
	a, s, p, _, _ := newTestApp(t, "")
	s.restoreState = session.StateUnauthenticated
	a.reader = bufio.NewReader(strings.NewReader(""))

	a.Run(context.Background())

	assert.Equal(t, 0, p.loaded)
	assert.Equal(t, "(es)", a.getStatus())
}

func TestWatchSession_PrintsLoadingNoticeOnce(t *testing.T) {
	a, s, _, _, out := newTestApp(t, "")

	unsubscribe := a.watchSession()
	require.NotNil(t, s.subscriber)

	s.subscriber(session.Snapshot{Loading: true})
	s.subscriber(session.Snapshot{Loading: true})
	s.subscriber(session.Snapshot{Loading: false})
	s.subscriber(session.Snapshot{Loading: true})

	assert.Equal(t, 2, strings.Count(out.String(), "Cargando..."))

	unsubscribe()
	assert.True(t, s.unsubscribed)
}

func TestRun_UnsubscribesOnExit(t *testing.T) {
	silence(t)
	a, s, _, _, _ := newTestApp(t, "")
	a.reader = bufio.NewReader(strings.NewReader("exit\n"))

	a.Run(context.Background())

	assert.True(t, s.unsubscribed)
}
