package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	playersByIP map[string]*Player
	playersByID map[uint64]*Player
	sessions    map[string]*Session
	closed      map[uint64]int
	nextID      uint64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		playersByIP: make(map[string]*Player),
		playersByID: make(map[uint64]*Player),
		sessions:    make(map[string]*Session),
		closed:      make(map[uint64]int),
		nextID:      1,
	}
}

func (f *fakeRepo) GetPlayerByIP(ip string) (*Player, error) {
	player, ok := f.playersByIP[ip]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return player, nil
}

func (f *fakeRepo) CreatePlayer(player *Player) error {
	player.ID = f.nextID
	f.nextID++
	f.playersByIP[player.IP] = player
	f.playersByID[player.ID] = player
	return nil
}

func (f *fakeRepo) CreateSession(session *Session) error {
	session.ID = f.nextID
	f.nextID++
	f.sessions[session.SessionKey] = session
	return nil
}

func (f *fakeRepo) GetSessionByKey(sessionKey string) (*Session, error) {
	session, ok := f.sessions[sessionKey]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (f *fakeRepo) GetPlayerByID(id uint64) (*Player, error) {
	player, ok := f.playersByID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return player, nil
}

func (f *fakeRepo) ClosePlayerSessions(playerID uint64) error {
	f.closed[playerID]++
	return nil
}

func (f *fakeRepo) UpdatePlayerNickname(playerID uint64, nickname string) error {
	if player, ok := f.playersByID[playerID]; ok {
		player.Nickname = nickname
	}
	return nil
}

func TestCreateSessionAndPlayerIssuesKey(t *testing.T) {
	svc := NewService(newFakeRepo())

	session, player, err := svc.CreateSessionAndPlayer("test-agent", "10.0.0.1")
	require.NoError(t, err)
	assert.Len(t, session.SessionKey, 64)
	assert.Equal(t, player.ID, session.PlayerID)
	assert.Equal(t, "Anonymous", player.Nickname)
}

func TestCreateSessionReusesPlayerByIP(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, first, err := svc.CreateSessionAndPlayer("test-agent", "10.0.0.1")
	require.NoError(t, err)

	second, player, err := svc.CreateSessionAndPlayer("test-agent", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, player.ID)
	assert.Equal(t, first.ID, second.PlayerID)
	assert.Equal(t, 2, repo.closed[first.ID])
}

func TestSessionKeysAreUnique(t *testing.T) {
	svc := NewService(newFakeRepo())

	a, _, err := svc.CreateSessionAndPlayer("test-agent", "10.0.0.1")
	require.NoError(t, err)
	b, _, err := svc.CreateSessionAndPlayer("test-agent", "10.0.0.2")
	require.NoError(t, err)
	assert.NotEqual(t, a.SessionKey, b.SessionKey)
}

func TestGetPlayerBySessionKey(t *testing.T) {
	svc := NewService(newFakeRepo())

	session, player, err := svc.CreateSessionAndPlayer("test-agent", "10.0.0.1")
	require.NoError(t, err)

	found, err := svc.GetPlayerBySessionKey(session.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, player.ID, found.ID)

	_, err = svc.GetPlayerBySessionKey("unknown")
	assert.Error(t, err)
}

func TestUpdateNickname(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, player, err := svc.CreateSessionAndPlayer("test-agent", "10.0.0.1")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateNickname(player.ID, "Dauber"))
	assert.Equal(t, "Dauber", repo.playersByID[player.ID].Nickname)
}
