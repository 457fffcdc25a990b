package session

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	GetPlayerByIP(ip string) (*Player, error)
	CreatePlayer(player *Player) error
	CreateSession(session *Session) error
	GetSessionByKey(sessionKey string) (*Session, error)
	GetPlayerByID(id uint64) (*Player, error)
	ClosePlayerSessions(playerID uint64) error
	UpdatePlayerNickname(playerID uint64, nickname string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetPlayerByIP(ip string) (*Player, error) {
	var player Player
	err := r.db.Where("ip = ?", ip).First(&player).Error
	return &player, err
}

func (r *repository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

func (r *repository) CreateSession(session *Session) error {
	return r.db.Create(session).Error
}

func (r *repository) GetSessionByKey(sessionKey string) (*Session, error) {
	var session Session
	err := r.db.Where("session_key = ?", sessionKey).First(&session).Error
	return &session, err
}

func (r *repository) GetPlayerByID(id uint64) (*Player, error) {
	var player Player
	err := r.db.Where("id = ?", id).First(&player).Error
	return &player, err
}

func (r *repository) ClosePlayerSessions(playerID uint64) error {
	return r.db.Model(&Session{}).
		Where("player_id = ? AND ended_at IS NULL", playerID).
		Update("ended_at", time.Now().UTC()).Error
}

func (r *repository) UpdatePlayerNickname(playerID uint64, nickname string) error {
	return r.db.Model(&Player{}).
		Where("id = ?", playerID).
		Updates(map[string]interface{}{
			"nickname":   nickname,
			"updated_at": time.Now().UTC(),
		}).Error
}
