package commands

import (
	"context"
	"testing"

	"github.com/eskrenkovic/spyfall-go/internal/modules/core"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"

	"github.com/stretchr/testify/require"
)

const testCode = "ABC123"

func seedLobby(t *testing.T, repo lobby.Repository, names ...string) domain.Lobby {
	t.Helper()

	require.NotEmpty(t, names)

	l := domain.NewLobby(testCode, names[0], 1_000)
	for _, name := range names[1:] {
		_, err := l.Join(name)
		require.NoError(t, err)
	}

	require.NoError(t, repo.Insert(context.Background(), l))
	return l
}

func storedLobby(t *testing.T, repo lobby.Repository) domain.Lobby {
	t.Helper()

	l, _, err := repo.Get(context.Background(), testCode)
	require.NoError(t, err)
	return l
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		"spyfall1": {{Location: "Restaurant", Roles: []string{"Chef", "Waiter"}}},
	}
}

func requireCommandStatus(t *testing.T, err error, statusCode int) {
	t.Helper()

	require.Error(t, err)

	commandErr, ok := err.(core.CommandError)
	require.True(t, ok, "expected core.CommandError, got %T", err)
	require.Equal(t, statusCode, commandErr.StatusCode)
}
