package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamecatalog/backend/internal/auth"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/service"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Name     string `json:"name" example:"Test User"`
	Email    string `json:"email" example:"test@example.com"`
	Password string `json:"password" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" example:"test@example.com"`
	Password string `json:"password" example:"password123"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name,omitempty" example:"Test User"`
	Email string `json:"email" example:"test@example.com"`
}

// AuthResponse is returned after a successful registration or login.
type AuthResponse struct {
	Message string       `json:"message" example:"Login successful"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// endregion

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a new user and returns a session token valid for 7 days.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse "Validation failed or email already registered"
// @Failure      503  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.Registration{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		failWith(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		failWith(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Login godoc
// @Summary      Log in a user
// @Description  Authenticates a user with email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid email or password"
// @Failure      503  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), service.Credentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		failWith(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		failWith(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Me godoc
// @Summary      Get current user
// @Description  Returns the authenticated user. Without a configured store the id and email from the token are returned.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse "Access token required"
// @Failure      403  {object}  ErrorResponse "Invalid or expired token"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Access token required")
		return
	}

	if !h.storeConfigured {
		c.JSON(http.StatusOK, UserResponse{ID: userID, Email: auth.UserEmail(c)})
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		failWith(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}
