package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamecatalog/backend/internal/auth"
	"gamecatalog/backend/internal/catalog"
)

// GetGames godoc
// @Summary      List games
// @Description  Lists games newest first, with the caller's favorite flag. Filters combine with AND.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        page      query  int     false  "Page number (default 1)"
// @Param        limit     query  int     false  "Page size, 1-100 (default 10)"
// @Param        type      query  string  false  "Filter kind"  Enums(sport, provider)
// @Param        filter    query  string  false  "Sport or provider to filter by"
// @Param        favorites query  string  false  "Only favorites when 'true'"
// @Param        q         query  string  false  "Search in name, teams and league"
// @Success      200  {object}  PaginatedResponse[models.GameView]
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	userID, _ := auth.UserID(c)
	q := catalog.FromParams(catalog.Params{
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		Filter:    c.Query("filter"),
		Type:      c.Query("type"),
		Favorites: c.Query("favorites"),
		Q:         c.Query("q"),
	})

	items, total, err := h.games.List(c.Request.Context(), userID, q)
	if err != nil {
		failWith(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(items, total, q.Page, q.Limit))
}

// GetGameByID godoc
// @Summary      Get a game
// @Description  Returns a single game with the caller's favorite flag.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  models.GameView
// @Failure      400  {object}  ErrorResponse "Invalid game ID"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	gameID, ok := idParam(c, "id")
	if !ok {
		fail(c, http.StatusBadRequest, "Invalid game ID")
		return
	}
	userID, _ := auth.UserID(c)

	game, err := h.games.Get(c.Request.Context(), userID, gameID)
	if err != nil {
		failWith(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// GetSports godoc
// @Summary      List sports
// @Description  Returns the distinct sports present in the catalog, sorted.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   string
// @Failure      401  {object}  ErrorResponse
// @Router       /games/sports [get]
func (h *Handler) GetSports(c *gin.Context) {
	sports, err := h.games.Sports(c.Request.Context())
	if err != nil {
		failWith(c, err)
		return
	}
	c.JSON(http.StatusOK, sports)
}

// GetProviders godoc
// @Summary      List providers
// @Description  Returns the distinct casino providers present in the catalog, sorted.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   string
// @Failure      401  {object}  ErrorResponse
// @Router       /games/providers [get]
func (h *Handler) GetProviders(c *gin.Context) {
	providers, err := h.games.Providers(c.Request.Context())
	if err != nil {
		failWith(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}
