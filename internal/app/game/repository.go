package game

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	GetBoardBySessionID(sessionID uint64) (*Board, error)
	CreateBoard(board *Board) error
	GetLastClaimTime(sessionID uint64) (*time.Time, error)
	RecordClaim(claim *Claim) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetBoardBySessionID(sessionID uint64) (*Board, error) {
	var board Board
	err := r.db.Where("session_id = ?", sessionID).First(&board).Error
	return &board, err
}

func (r *repository) CreateBoard(board *Board) error {
	return r.db.Create(board).Error
}

func (r *repository) GetLastClaimTime(sessionID uint64) (*time.Time, error) {
	var claim Claim
	err := r.db.Where("session_id = ?", sessionID).
		Order("claimed_at DESC").
		First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim.ClaimedAt, nil
}

// RecordClaim inserts the claim with its arrival position and stamps
// the board. Position is the 1-based count of all recorded claims,
// taken in the same transaction as the insert. The table lock keeps
// concurrent transactions from counting the same total under READ
// COMMITTED; the unique index on position backstops it.
func (r *repository) RecordClaim(claim *Claim) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("LOCK TABLE bingo_claims IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&Claim{}).Count(&total).Error; err != nil {
			return err
		}
		claim.Position = total + 1

		if err := tx.Create(claim).Error; err != nil {
			return err
		}

		return tx.Model(&Board{}).
			Where("id = ?", claim.BoardID).
			Updates(map[string]interface{}{
				"claimed_at": claim.ClaimedAt,
				"updated_at": claim.ClaimedAt,
			}).Error
	})
}
