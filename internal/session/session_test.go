package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAndToken(t *testing.T) {
	s := New()
	require.Empty(t, s.Token())
	require.False(t, s.Authenticated())

	s.Set("tok-1")
	require.Equal(t, "tok-1", s.Token())
	require.True(t, s.Authenticated())

	s.Clear()
	require.Empty(t, s.Token())
	require.False(t, s.Authenticated())
}

func TestEverySetNotifies(t *testing.T) {
	s := New()

	var seen []string
	s.Subscribe(func(token string) { seen = append(seen, token) })

	s.Set("a")
	s.Set("b")
	s.Clear()
	// Clearing an already empty session still notifies.
	s.Set("")

	require.Equal(t, []string{"a", "b", "", ""}, seen)
}

func TestMultipleSubscribers(t *testing.T) {
	s := New()

	first, second := 0, 0
	s.Subscribe(func(string) { first++ })
	s.Subscribe(func(string) { second++ })

	s.Set("tok")
	s.Clear()

	require.Equal(t, 2, first)
	require.Equal(t, 2, second)
}

func TestListenerMayReadSession(t *testing.T) {
	s := New()

	var derived bool
	s.Subscribe(func(string) { derived = s.Authenticated() })

	s.Set("tok")
	require.True(t, derived)

	s.Clear()
	require.False(t, derived)
}
