package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bookmarkd/internal/common"
	"github.com/dmitrijs2005/bookmarkd/internal/server/models"
	"github.com/dmitrijs2005/bookmarkd/internal/server/services"
)

type authRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type editUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type createBookmarkRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Link        string `json:"link" binding:"required"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

// userResponse is the external representation of a user. It has no hash
// field on purpose.
type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type bookmarkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toBookmarkResponse(b *models.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (s *Server) handleSignup(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	token, err := s.auth.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"access_token": token})
}

func (s *Server) handleSignin(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	token, err := s.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (s *Server) handleGetMe(c *gin.Context) {
	user, err := s.users.GetSelf(c.Request.Context(), mustIdentity(c))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) handleEditUser(c *gin.Context) {
	var req editUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	patch := &services.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	user, err := s.users.EditSelf(c.Request.Context(), mustIdentity(c), patch)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) handleListBookmarks(c *gin.Context) {
	list, err := s.bookmarks.List(c.Request.Context(), mustIdentity(c))
	if err != nil {
		s.respondError(c, err)
		return
	}

	out := make([]bookmarkResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBookmarkResponse(b))
	}

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetBookmark(c *gin.Context) {
	id, ok := bookmarkID(c)
	if !ok {
		return
	}

	b, err := s.bookmarks.GetByID(c.Request.Context(), mustIdentity(c), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookmarkResponse(b))
}

func (s *Server) handleCreateBookmark(c *gin.Context) {
	var req createBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	b, err := s.bookmarks.Create(c.Request.Context(), mustIdentity(c), &services.BookmarkCreate{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookmarkResponse(b))
}

func (s *Server) handleEditBookmark(c *gin.Context) {
	id, ok := bookmarkID(c)
	if !ok {
		return
	}

	var req editBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	b, err := s.bookmarks.Update(c.Request.Context(), mustIdentity(c), id, &services.BookmarkPatch{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookmarkResponse(b))
}

func (s *Server) handleDeleteBookmark(c *gin.Context) {
	id, ok := bookmarkID(c)
	if !ok {
		return
	}

	if err := s.bookmarks.Delete(c.Request.Context(), mustIdentity(c), id); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func bookmarkID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid bookmark id"})
		return 0, false
	}
	return id, true
}

// respondError translates service errors into HTTP statuses. Bodies carry a
// short message only; internals are logged, never exposed.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorEmailTaken):
		c.JSON(http.StatusForbidden, gin.H{"message": "credentials taken"})
	case errors.Is(err, common.ErrorInvalidCredentials):
		c.JSON(http.StatusForbidden, gin.H{"message": "credentials incorrect"})
	case errors.Is(err, common.ErrorForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "access to resource denied"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, common.ErrorInvalidToken), errors.Is(err, common.ErrorTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
	default:
		s.logger.Error(c.Request.Context(), "internal error",
			"request_id", c.GetString(requestIDKey), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
