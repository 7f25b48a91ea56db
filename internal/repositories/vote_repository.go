package repositories

import (
	"errors"

	"github.com/dipesh4000/blogvote/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateVote is returned when the (user, post) pair already has a vote.
	ErrDuplicateVote = errors.New("vote already exists")
	// ErrVoteNotFound is returned when no vote exists for the (user, post) pair.
	ErrVoteNotFound = errors.New("vote not found")
)

// VoteRepository defines the interface for vote data operations
type VoteRepository interface {
	CreateVote(vote *models.Vote) error
	DeleteVote(userID, postID uint) error
	HasUserVoted(userID, postID uint) (bool, error)
	GetVoteCountByPostID(postID uint) (int64, error)
}

// GormVoteRepository implements VoteRepository on top of GORM
type GormVoteRepository struct {
	db *gorm.DB
}

// NewGormVoteRepository creates a new GormVoteRepository
func NewGormVoteRepository(db *gorm.DB) *GormVoteRepository {
	return &GormVoteRepository{db: db}
}

// CreateVote inserts a vote. The composite primary key on (user_id, post_id)
// is the authoritative uniqueness check: a concurrent writer that loses the
// race gets ErrDuplicateVote here even if its pre-check saw no vote.
func (r *GormVoteRepository) CreateVote(vote *models.Vote) error {
	if err := r.db.Create(vote).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateVote
		}
		return err
	}
	return nil
}

// DeleteVote removes the vote for the (user, post) pair
func (r *GormVoteRepository) DeleteVote(userID, postID uint) error {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Vote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVoteNotFound
	}
	return nil
}

// HasUserVoted checks if a user has voted on a specific post
func (r *GormVoteRepository) HasUserVoted(userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Vote{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetVoteCountByPostID retrieves the number of votes on a specific post
func (r *GormVoteRepository) GetVoteCountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Vote{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
