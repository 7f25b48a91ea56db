package handlers_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastVote_FullScenario(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)
	token := signupAndLogin(t, e, "a@x.com", "password1")
	postID := createPost(t, e, token, "Hello", "World")

	// Add vote
	rec := doRequest(t, e, http.MethodPost, "/vote", token, echo.Map{"post_id": postID, "dir": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "successfully added vote", decodeBody(t, rec)["message"])

	// Duplicate vote is a conflict, not a no-op
	rec = doRequest(t, e, http.MethodPost, "/vote", token, echo.Map{"post_id": postID, "dir": 1})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Remove vote
	rec = doRequest(t, e, http.MethodPost, "/vote", token, echo.Map{"post_id": postID, "dir": 0})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "successfully deleted vote", decodeBody(t, rec)["message"])

	// Removing again has nothing to remove
	rec = doRequest(t, e, http.MethodPost, "/vote", token, echo.Map{"post_id": postID, "dir": 0})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// State is back to NoVote, so a fresh vote succeeds
	rec = doRequest(t, e, http.MethodPost, "/vote", token, echo.Map{"post_id": postID, "dir": 1})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCastVote_PostNotFound(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)
	token := signupAndLogin(t, e, "a@x.com", "password1")

	for _, dir := range []int{0, 1} {
		rec := doRequest(t, e, http.MethodPost, "/vote", token, echo.Map{"post_id": 9999, "dir": dir})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestCastVote_InvalidDirection(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)
	token := signupAndLogin(t, e, "a@x.com", "password1")
	postID := createPost(t, e, token, "Hello", "World")

	for _, dir := range []int{-1, 2, 5} {
		rec := doRequest(t, e, http.MethodPost, "/vote", token, echo.Map{"post_id": postID, "dir": dir})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}

	// Missing dir entirely is also rejected at the boundary
	rec := doRequest(t, e, http.MethodPost, "/vote", token, echo.Map{"post_id": postID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCastVote_RequiresAuth(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/vote", "", echo.Map{"post_id": 1, "dir": 1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetVoteCountForPost(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)
	alice := signupAndLogin(t, e, "alice@x.com", "password1")
	bob := signupAndLogin(t, e, "bob@x.com", "password1")
	postID := createPost(t, e, alice, "Hello", "World")

	rec := doRequest(t, e, http.MethodGet, postPath(postID)+"/votes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeBody(t, rec)["votes"])

	doRequest(t, e, http.MethodPost, "/vote", alice, echo.Map{"post_id": postID, "dir": 1})
	doRequest(t, e, http.MethodPost, "/vote", bob, echo.Map{"post_id": postID, "dir": 1})

	rec = doRequest(t, e, http.MethodGet, postPath(postID)+"/votes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["votes"])

	rec = doRequest(t, e, http.MethodGet, "/posts/9999/votes", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
