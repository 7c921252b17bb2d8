package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"blogvote-api/internal/middleware"
	"blogvote-api/internal/models"
	"blogvote-api/internal/repositories"
)

// VoteHandler handles HTTP requests related to votes
type VoteHandler struct {
	voteRepository repositories.VoteRepository
}

// NewVoteHandler creates a new VoteHandler
func NewVoteHandler(voteRepo repositories.VoteRepository) *VoteHandler {
	return &VoteHandler{voteRepository: voteRepo}
}

// RegisterVoteRoutes registers vote-related routes
func (h *VoteHandler) RegisterVoteRoutes(g *echo.Group) {
	g.POST("/", h.Vote)
}

// Vote toggles the authenticated user's vote on a post. dir=1 casts a
// vote, dir=0 removes one; re-casting conflicts and removing a missing
// vote is not found.
func (h *VoteHandler) Vote(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req models.CreateVoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.voteRepository.Toggle(user.ID, req.PostID, *req.Dir); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPostNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		case errors.Is(err, repositories.ErrVoteNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Vote does not exist")
		case errors.Is(err, repositories.ErrDuplicateVote):
			return echo.NewHTTPError(http.StatusConflict, "You have already voted for this post")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	message := "successfully added vote"
	if *req.Dir == models.VoteDirDown {
		message = "successfully deleted vote"
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": message})
}
