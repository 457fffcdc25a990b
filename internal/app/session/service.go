package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

type Service interface {
	CreateSessionAndPlayer(userAgent string, ipStr string) (*Session, *Player, error)
	GetPlayerBySessionKey(sessionKey string) (*Player, error)
	GetSessionByKey(sessionKey string) (*Session, error)
	UpdateNickname(playerID uint64, nickname string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateSessionAndPlayer reuses the caller's player by IP, closes any
// sessions the player still has open and issues a fresh session key.
func (s *service) CreateSessionAndPlayer(userAgent string, ipStr string) (*Session, *Player, error) {
	player, err := s.repo.GetPlayerByIP(ipStr)
	if err != nil {
		player = &Player{
			IP:       ipStr,
			Nickname: "Anonymous",
		}
		if err := s.repo.CreatePlayer(player); err != nil {
			return nil, nil, fmt.Errorf("failed to create player: %w", err)
		}
	}

	_ = s.repo.ClosePlayerSessions(player.ID)

	sessionKey, err := generateSessionKey()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate session key: %w", err)
	}

	session := &Session{
		SessionKey: sessionKey,
		UserAgent:  &userAgent,
		PlayerID:   player.ID,
		StartedAt:  time.Now().UTC(),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.CreateSession(session); err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, player, nil
}

func (s *service) GetPlayerBySessionKey(sessionKey string) (*Player, error) {
	session, err := s.repo.GetSessionByKey(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	player, err := s.repo.GetPlayerByID(session.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("player not found: %w", err)
	}

	return player, nil
}

func (s *service) GetSessionByKey(sessionKey string) (*Session, error) {
	return s.repo.GetSessionByKey(sessionKey)
}

func (s *service) UpdateNickname(playerID uint64, nickname string) error {
	return s.repo.UpdatePlayerNickname(playerID, nickname)
}

func generateSessionKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
