package handlers

import (
	"errors"
	"net/http"

	"github.com/dipesh4000/blogvote/internal/middleware"
	"github.com/dipesh4000/blogvote/internal/models"
	"github.com/dipesh4000/blogvote/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// VoteHandler handles HTTP requests related to votes
type VoteHandler struct {
	voteRepository repositories.VoteRepository
	postRepository repositories.PostRepository // To verify the target post exists
}

// NewVoteHandler creates a new VoteHandler
func NewVoteHandler(voteRepo repositories.VoteRepository, postRepo repositories.PostRepository) *VoteHandler {
	return &VoteHandler{
		voteRepository: voteRepo,
		postRepository: postRepo,
	}
}

// RegisterVoteRoutes registers vote-related routes
func (h *VoteHandler) RegisterVoteRoutes(g *echo.Group) {
	g.POST("/vote", h.CastVote)
}

// RegisterPublicVoteRoutes registers vote routes that need no authentication
func (h *VoteHandler) RegisterPublicVoteRoutes(e *echo.Echo) {
	e.GET("/posts/:id/votes", h.GetVoteCountForPost)
}

// CastVote adds (dir=1) or removes (dir=0) the caller's vote on a post.
// Adding an existing vote is a conflict, not a no-op; removing a missing vote
// is not found.
func (h *VoteHandler) CastVote(c echo.Context) error {
	user := c.Get(middleware.UserContextKey).(*models.User)

	var req models.CastVoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(req.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if *req.Dir == 1 {
		// Fast-path check; the composite key on votes is what actually
		// guarantees uniqueness under concurrent requests.
		hasVoted, err := h.voteRepository.HasUserVoted(user.ID, req.PostID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if hasVoted {
			return echo.NewHTTPError(http.StatusConflict, "User has already voted on this post")
		}

		vote := &models.Vote{
			UserID: user.ID,
			PostID: req.PostID,
		}
		if err := h.voteRepository.CreateVote(vote); err != nil {
			if errors.Is(err, repositories.ErrDuplicateVote) {
				return echo.NewHTTPError(http.StatusConflict, "User has already voted on this post")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		return c.JSON(http.StatusCreated, echo.Map{"message": "successfully added vote"})
	}

	if err := h.voteRepository.DeleteVote(user.ID, req.PostID); err != nil {
		if errors.Is(err, repositories.ErrVoteNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Vote does not exist")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "successfully deleted vote"})
}

// GetVoteCountForPost retrieves the total number of votes for a specific post
func (h *VoteHandler) GetVoteCountForPost(c echo.Context) error {
	id, err := parsePostID(c)
	if err != nil {
		return err
	}

	if _, err := h.postRepository.GetPostByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	count, err := h.voteRepository.GetVoteCountByPostID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": id, "votes": count})
}
