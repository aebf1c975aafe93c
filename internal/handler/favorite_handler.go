package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamecatalog/backend/internal/auth"
)

// AddFavorite godoc
// @Summary      Add a favorite
// @Description  Marks a game as a favorite of the caller. Adding the same game twice is an error.
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        gameId  path      int  true  "Game ID"
// @Success      201     {object}  MessageResponse
// @Failure      400     {object}  ErrorResponse "Invalid game ID or already in favorites"
// @Failure      404     {object}  ErrorResponse "Game not found"
// @Router       /favorites/{gameId} [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	gameID, ok := idParam(c, "gameId")
	if !ok {
		fail(c, http.StatusBadRequest, "Invalid game ID")
		return
	}
	userID, _ := auth.UserID(c)

	if _, err := h.favorites.Add(c.Request.Context(), userID, gameID); err != nil {
		failWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Game added to favorites"})
}

// RemoveFavorite godoc
// @Summary      Remove a favorite
// @Description  Removes a game from the caller's favorites.
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        gameId  path      int  true  "Game ID"
// @Success      200     {object}  MessageResponse
// @Failure      400     {object}  ErrorResponse "Invalid game ID"
// @Failure      404     {object}  ErrorResponse "Favorite not found"
// @Router       /favorites/{gameId} [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	gameID, ok := idParam(c, "gameId")
	if !ok {
		fail(c, http.StatusBadRequest, "Invalid game ID")
		return
	}
	userID, _ := auth.UserID(c)

	if err := h.favorites.Remove(c.Request.Context(), userID, gameID); err != nil {
		failWith(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Game removed from favorites"})
}

// GetFavorites godoc
// @Summary      List favorites
// @Description  Returns the caller's favorited games, most recently favorited first.
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.FavoriteGame
// @Failure      401  {object}  ErrorResponse
// @Router       /favorites [get]
func (h *Handler) GetFavorites(c *gin.Context) {
	userID, _ := auth.UserID(c)

	favorites, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		failWith(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}
