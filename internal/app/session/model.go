package session

import "time"

type Session struct {
	ID         uint64     `json:"id" gorm:"primaryKey"`
	SessionKey string     `json:"session_key" gorm:"unique;not null"`
	StartedAt  time.Time  `json:"started_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	UserAgent  *string    `json:"-" gorm:"type:text"`
	PlayerID   uint64     `json:"player_id" gorm:"not null;index"`
	CreatedAt  time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

type Player struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	IP        string    `json:"-" gorm:"type:inet;not null;unique"`
	Nickname  string    `json:"nickname" gorm:"not null;default:'Anonymous'"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

type SessionResponse struct {
	PlayerID   uint64    `json:"player_id"`
	Nickname   string    `json:"nickname"`
	SessionKey string    `json:"session_key"`
	CreatedAt  time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
