package commands

import (
	"context"
	"testing"

	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"

	"github.com/stretchr/testify/require"
)

func Test_LeaveLobby_Removes_The_Participant(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	l := seedLobby(t, repo, "Alice", "Bob")
	handler := NewLeaveLobbyCommandHandler(repo)

	_, err := handler.Handle(context.Background(), LeaveLobbyCommand{
		Code:          testCode,
		ParticipantID: l.Participants[1].ID,
	})

	require.NoError(t, err)

	got := storedLobby(t, repo)
	require.Len(t, got.Participants, 1)
	require.Equal(t, "Alice", got.Participants[0].Name)
}

func Test_LeaveLobby_Host_Leaving_Promotes_First_Remaining(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	l := seedLobby(t, repo, "Alice", "Bob", "Carol")
	handler := NewLeaveLobbyCommandHandler(repo)

	_, err := handler.Handle(context.Background(), LeaveLobbyCommand{
		Code:          testCode,
		ParticipantID: l.Participants[0].ID,
	})

	require.NoError(t, err)

	got := storedLobby(t, repo)
	require.Len(t, got.Participants, 2)
	require.Equal(t, "Bob", got.Participants[0].Name)
	require.True(t, got.Participants[0].IsHost)
	require.False(t, got.Participants[1].IsHost)
}

func Test_LeaveLobby_Last_Participant_Deletes_The_Lobby(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	l := seedLobby(t, repo, "Alice")
	handler := NewLeaveLobbyCommandHandler(repo)

	_, err := handler.Handle(context.Background(), LeaveLobbyCommand{
		Code:          testCode,
		ParticipantID: l.Participants[0].ID,
	})

	require.NoError(t, err)

	exists, err := repo.Exists(context.Background(), testCode)
	require.NoError(t, err)
	require.False(t, exists)
}

func Test_LeaveLobby_Unknown_Lobby_Is_A_Silent_Noop(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	handler := NewLeaveLobbyCommandHandler(repo)

	_, err := handler.Handle(context.Background(), LeaveLobbyCommand{
		Code:          "ZZZZZZ",
		ParticipantID: "whatever",
	})

	require.NoError(t, err)
}

func Test_KickParticipant_Has_Leave_Semantics(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	l := seedLobby(t, repo, "Alice", "Bob")
	handler := NewKickParticipantCommandHandler(repo)

	_, err := handler.Handle(context.Background(), KickParticipantCommand{
		Code:          testCode,
		ParticipantID: l.Participants[1].ID,
	})

	require.NoError(t, err)
	require.Len(t, storedLobby(t, repo).Participants, 1)

	// Kicking the last participant deletes the lobby, same as leaving.
	_, err = handler.Handle(context.Background(), KickParticipantCommand{
		Code:          testCode,
		ParticipantID: l.Participants[0].ID,
	})
	require.NoError(t, err)

	exists, err := repo.Exists(context.Background(), testCode)
	require.NoError(t, err)
	require.False(t, exists)
}

func Test_PromoteHost_Moves_The_Host_Flag(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	l := seedLobby(t, repo, "Alice", "Bob")
	handler := NewPromoteHostCommandHandler(repo)

	_, err := handler.Handle(context.Background(), PromoteHostCommand{
		Code:          testCode,
		ParticipantID: l.Participants[1].ID,
	})

	require.NoError(t, err)

	got := storedLobby(t, repo)
	require.False(t, got.Participants[0].IsHost)
	require.True(t, got.Participants[1].IsHost)
}

func Test_PromoteHost_Unknown_Target_Changes_Nothing(t *testing.T) {
	repo := lobby.NewMemoryRepository()
	seedLobby(t, repo, "Alice", "Bob")
	handler := NewPromoteHostCommandHandler(repo)

	_, err := handler.Handle(context.Background(), PromoteHostCommand{
		Code:          testCode,
		ParticipantID: "no-such-id",
	})

	require.NoError(t, err)

	got := storedLobby(t, repo)
	require.True(t, got.Participants[0].IsHost)
	require.False(t, got.Participants[1].IsHost)
}
