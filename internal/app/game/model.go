package game

import "time"

// Grid is a 5x5 bingo card. Columns hold distinct numbers from the
// standard ranges (B 1-15, I 16-30, N 31-45, G 46-60, O 61-75); the
// center cell is free and encoded as 0.
type Grid [5][5]int

type Board struct {
	ID        uint64     `json:"id" gorm:"primaryKey"`
	SessionID uint64     `json:"session_id" gorm:"not null;uniqueIndex"`
	PlayerID  uint64     `json:"player_id" gorm:"not null;index"`
	Cells     Grid       `json:"cells" gorm:"type:jsonb;serializer:json;not null"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// Claim is one recorded bingo shout. Claims are logged in arrival
// order; nobody in this service decides whether a claim is valid.
type Claim struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	BoardID   uint64    `json:"board_id" gorm:"not null;index"`
	SessionID uint64    `json:"session_id" gorm:"not null;index"`
	PlayerID  uint64    `json:"player_id" gorm:"not null"`
	Nickname  string    `json:"nickname" gorm:"not null"`
	Note      *string   `json:"note,omitempty"`
	Position  int64     `json:"position" gorm:"not null;uniqueIndex"`
	ClaimedAt time.Time `json:"claimed_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Claim) TableName() string {
	return "bingo_claims"
}

type BoardResponse struct {
	Board *Board `json:"board"`
}

type ClaimRequest struct {
	SessionKey string  `json:"session_key" binding:"required"`
	Nickname   string  `json:"nickname,omitempty" binding:"omitempty,min=1,max=16"`
	Note       *string `json:"note,omitempty" binding:"omitempty,max=99"`
}

type ClaimResponse struct {
	ID        uint64    `json:"id"`
	Position  int64     `json:"position"`
	ClaimedAt time.Time `json:"claimed_at"`
	CreatedAt time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
