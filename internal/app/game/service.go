package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"bingo-backend/internal/app/session"
	"bingo-backend/internal/providers/minio"
	"bingo-backend/internal/providers/redis"
	"bingo-backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetBoard(ctx context.Context, sessionKey string) (*Board, error)
	ClaimBingo(ctx context.Context, sessionKey, nickname string, note *string) (*Claim, error)
}

type service struct {
	repo        Repository
	sessionSvc  session.Service
	redisP      *redis.Provider
	minioP      *minio.Provider
	eventBus    *utils.EventBus
	logger      *zap.SugaredLogger
	cooldown    time.Duration
	cachePrefix string
}

func NewService(
	repo Repository,
	sessionSvc session.Service,
	redisP *redis.Provider,
	eventBus *utils.EventBus,
	logger *zap.Logger,
	minioP *minio.Provider,
	cooldown time.Duration,
) Service {
	return &service{
		repo:        repo,
		sessionSvc:  sessionSvc,
		redisP:      redisP,
		minioP:      minioP,
		eventBus:    eventBus,
		logger:      logger.Sugar(),
		cooldown:    cooldown,
		cachePrefix: "board:session",
	}
}

// GetBoard returns the session's board, dealing and persisting one on
// first access.
func (s *service) GetBoard(ctx context.Context, sessionKey string) (*Board, error) {
	sess, err := s.sessionSvc.GetSessionByKey(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	cacheKey := fmt.Sprintf("%s:%s", s.cachePrefix, sessionKey)
	if s.redisP != nil {
		if cached, err := s.redisP.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var board Board
			if json.Unmarshal([]byte(cached), &board) == nil {
				return &board, nil
			}
		}
	}

	board, err := s.repo.GetBoardBySessionID(sess.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get board: %w", err)
		}
		board = &Board{
			SessionID: sess.ID,
			PlayerID:  sess.PlayerID,
			Cells:     NewGrid(),
		}
		if createErr := s.repo.CreateBoard(board); createErr != nil {
			// Unique session index: the loser of a creation race
			// re-reads the winner's board.
			board, err = s.repo.GetBoardBySessionID(sess.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to create board: %w", createErr)
			}
		} else {
			s.eventBus.Publish("board_issued", map[string]interface{}{
				"board_id":  board.ID,
				"player_id": board.PlayerID,
				"timestamp": time.Now().UTC().Unix(),
			})
		}
	}

	if s.redisP != nil {
		if data, err := json.Marshal(board); err == nil {
			s.redisP.SetWithDefaultTTL(ctx, cacheKey, data, 0)
		}
	}

	return board, nil
}

// ClaimBingo records a bingo shout in arrival order. The claim is
// never adjudicated here; a human host judges it outside this system.
func (s *service) ClaimBingo(ctx context.Context, sessionKey, nickname string, note *string) (*Claim, error) {
	if note != nil {
		noteLength := utf8.RuneCountInString(*note)
		if noteLength > 99 {
			return nil, fmt.Errorf("claim note must be at most 99 characters, got %d", noteLength)
		}
	}

	sess, err := s.sessionSvc.GetSessionByKey(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	player, err := s.sessionSvc.GetPlayerBySessionKey(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	board, err := s.repo.GetBoardBySessionID(sess.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoBoard
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	lastClaim, err := s.repo.GetLastClaimTime(sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get last claim time: %w", err)
	}
	if lastClaim != nil {
		elapsed := time.Since(*lastClaim)
		if elapsed < s.cooldown {
			secondsLeft := int64(math.Ceil((s.cooldown - elapsed).Seconds()))
			return nil, fmt.Errorf("%w: %d seconds left", ErrClaimCooldown, secondsLeft)
		}
	}

	if nickname != "" && nickname != player.Nickname {
		if err := s.sessionSvc.UpdateNickname(player.ID, nickname); err != nil {
			s.logger.Warnw("Failed to update player nickname", "player_id", player.ID, "error", err)
		} else {
			player.Nickname = nickname
		}
	}

	now := time.Now().UTC()
	claim := &Claim{
		BoardID:   board.ID,
		SessionID: sess.ID,
		PlayerID:  player.ID,
		Nickname:  player.Nickname,
		Note:      note,
		ClaimedAt: now,
	}
	if err := s.repo.RecordClaim(claim); err != nil {
		return nil, fmt.Errorf("failed to record claim: %w", err)
	}

	if s.redisP != nil {
		s.redisP.Del(context.Background(), fmt.Sprintf("%s:%s", s.cachePrefix, sessionKey))
	}

	s.eventBus.Publish("bingo_claimed", map[string]interface{}{
		"claim_id":  claim.ID,
		"board_id":  claim.BoardID,
		"player_id": claim.PlayerID,
		"nickname":  claim.Nickname,
		"position":  claim.Position,
		"timestamp": claim.ClaimedAt.Unix(),
	})

	if s.minioP != nil {
		archived := *claim
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := s.minioP.StoreClaim(ctx, archived.ID, archived); err != nil {
				s.logger.Warnw("Failed to archive claim record", "claim_id", archived.ID, "error", err)
			}
		}()
	}

	return claim, nil
}
