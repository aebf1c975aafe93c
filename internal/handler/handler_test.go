package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gamecatalog/backend/internal/auth"
	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/service"
)

func init() { gin.SetMode(gin.TestMode) }

// ---- fakes ----

type fakeUsers struct {
	registerErr error
	authErr     error
	findErr     error
	user        *models.User
	lastReg     service.Registration
}

func (f *fakeUsers) Register(_ context.Context, r service.Registration) (*models.User, error) {
	f.lastReg = r
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.user, nil
}

func (f *fakeUsers) Authenticate(context.Context, service.Credentials) (*models.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.user, nil
}

func (f *fakeUsers) FindByID(context.Context, uint) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.user, nil
}

type fakeCatalog struct {
	items     []models.GameView
	total     int64
	err       error
	lastQuery catalog.Query
	lastUser  uint
}

func (f *fakeCatalog) List(_ context.Context, userID uint, q catalog.Query) ([]models.GameView, int64, error) {
	f.lastUser, f.lastQuery = userID, q
	return f.items, f.total, f.err
}

func (f *fakeCatalog) Get(_ context.Context, _ uint, id uint) (*models.GameView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.GameView{Game: models.Game{ID: id, GameName: "Starburst"}, IsFavorite: true}, nil
}

func (f *fakeCatalog) Sports(context.Context) ([]string, error) {
	return []string{"Cricket", "Football"}, f.err
}

func (f *fakeCatalog) Providers(context.Context) ([]string, error) {
	return []string{"NetEnt"}, f.err
}

type fakeFavorites struct {
	err    error
	gameID uint
}

func (f *fakeFavorites) Add(_ context.Context, _ uint, gameID uint) (*models.Favorite, error) {
	f.gameID = gameID
	return &models.Favorite{GameID: gameID}, f.err
}

func (f *fakeFavorites) Remove(_ context.Context, _ uint, gameID uint) error {
	f.gameID = gameID
	return f.err
}

func (f *fakeFavorites) List(context.Context, uint) ([]models.FavoriteGame, error) {
	return []models.FavoriteGame{}, f.err
}

type fakeTokens struct{ err error }

func (f fakeTokens) GenerateToken(id uint, email string) (string, error) {
	return fmt.Sprintf("token-%d-%s", id, email), f.err
}

// ---- helpers ----

// withUser stands in for the auth middleware.
func withUser(id uint, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.UserIDKey, id)
		c.Set(auth.UserEmailKey, email)
		c.Next()
	}
}

func newEngine(h *Handler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", withUser(5, "me@example.com"), h.Me)
	r.GET("/games", withUser(5, "me@example.com"), h.GetGames)
	r.GET("/games/sports", withUser(5, ""), h.GetSports)
	r.GET("/games/providers", withUser(5, ""), h.GetProviders)
	r.GET("/games/:id", withUser(5, ""), h.GetGameByID)
	r.GET("/favorites", withUser(5, ""), h.GetFavorites)
	r.POST("/favorites/:gameId", withUser(5, ""), h.AddFavorite)
	r.DELETE("/favorites/:gameId", withUser(5, ""), h.RemoveFavorite)
	return r
}

func call(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	return w, m
}

// ---- tests ----

func TestRegister(t *testing.T) {
	users := &fakeUsers{user: &models.User{ID: 3, Name: "Ana", Email: "ana@example.com"}}
	r := newEngine(New(users, &fakeCatalog{}, &fakeFavorites{}, fakeTokens{}, true))

	w, body := call(r, http.MethodPost, "/auth/register", `{"name":"Ana","email":"Ana@example.com","password":"secret1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if body["message"] != "User registered successfully" || body["token"] != "token-3-ana@example.com" {
		t.Fatalf("body = %v", body)
	}
	user := body["user"].(map[string]any)
	if user["id"] != float64(3) || user["name"] != "Ana" || user["email"] != "ana@example.com" {
		t.Fatalf("user = %v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must not be exposed")
	}
	if users.lastReg.Email != "Ana@example.com" {
		t.Fatalf("raw input should reach the service, got %+v", users.lastReg)
	}
}

func TestRegister_Errors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		body   string
		status int
		msg    string
	}{
		{"malformed json", nil, `{"name":`, http.StatusBadRequest, "Invalid request body"},
		{"validation", &service.ValidationError{Message: "Name is required"}, `{}`, http.StatusBadRequest, "Name is required"},
		{"duplicate", service.ErrDuplicateEmail, `{}`, http.StatusBadRequest, "User with this email already exists"},
		{"store down", fmt.Errorf("%w: dial", service.ErrStoreUnavailable), `{}`, http.StatusServiceUnavailable, "Service temporarily unavailable"},
		{"unexpected", errors.New("boom"), `{}`, http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := &fakeUsers{registerErr: tc.err}
			r := newEngine(New(users, &fakeCatalog{}, &fakeFavorites{}, fakeTokens{}, true))
			w, body := call(r, http.MethodPost, "/auth/register", tc.body)
			if w.Code != tc.status || body["error"] != tc.msg {
				t.Fatalf("got %d %v; want %d %q", w.Code, body, tc.status, tc.msg)
			}
			if _, ok := body["token"]; ok {
				t.Fatalf("failed registration must not issue a token")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	users := &fakeUsers{user: &models.User{ID: 9, Name: "Bo", Email: "bo@example.com"}}
	r := newEngine(New(users, &fakeCatalog{}, &fakeFavorites{}, fakeTokens{}, true))

	w, body := call(r, http.MethodPost, "/auth/login", `{"email":"bo@example.com","password":"secret1"}`)
	if w.Code != http.StatusOK || body["message"] != "Login successful" || body["token"] == "" {
		t.Fatalf("login: %d %v", w.Code, body)
	}

	users.authErr = service.ErrInvalidCredentials
	w, body = call(r, http.MethodPost, "/auth/login", `{"email":"bo@example.com","password":"nope"}`)
	if w.Code != http.StatusUnauthorized || body["error"] != "Invalid email or password" {
		t.Fatalf("bad credentials: %d %v", w.Code, body)
	}
}

func TestMe(t *testing.T) {
	users := &fakeUsers{user: &models.User{ID: 5, Name: "Me", Email: "me@example.com"}}
	r := newEngine(New(users, &fakeCatalog{}, &fakeFavorites{}, fakeTokens{}, true))

	w, body := call(r, http.MethodGet, "/auth/me", "")
	if w.Code != http.StatusOK || body["name"] != "Me" || body["id"] != float64(5) {
		t.Fatalf("me: %d %v", w.Code, body)
	}

	users.findErr = service.ErrUserNotFound
	w, body = call(r, http.MethodGet, "/auth/me", "")
	if w.Code != http.StatusNotFound || body["error"] != "User not found" {
		t.Fatalf("deleted user: %d %v", w.Code, body)
	}
}

func TestMe_TokenFallbackWithoutStore(t *testing.T) {
	users := &fakeUsers{findErr: errors.New("must not be called")}
	r := newEngine(New(users, &fakeCatalog{}, &fakeFavorites{}, fakeTokens{}, false))

	w, body := call(r, http.MethodGet, "/auth/me", "")
	if w.Code != http.StatusOK || body["id"] != float64(5) || body["email"] != "me@example.com" {
		t.Fatalf("fallback: %d %v", w.Code, body)
	}
	if _, ok := body["name"]; ok {
		t.Fatalf("fallback has no name: %v", body)
	}
}

func TestGetGames_ParsesQueryAndShapesResponse(t *testing.T) {
	games := &fakeCatalog{
		items: []models.GameView{{Game: models.Game{ID: 1, GameName: "Starburst", GameType: models.GameTypeCasino}}},
		total: 21,
	}
	r := newEngine(New(&fakeUsers{}, games, &fakeFavorites{}, fakeTokens{}, true))

	w, body := call(r, http.MethodGet, "/games?page=2&limit=5&type=provider&filter=NetEnt&favorites=true&q=star", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if games.lastUser != 5 {
		t.Fatalf("caller not passed through: %d", games.lastUser)
	}
	q := games.lastQuery
	if q.Page != 2 || q.Limit != 5 || q.Search != "star" || len(q.Filters) != 2 || !q.FavoritesOnly() {
		t.Fatalf("query = %+v", q)
	}
	if body["total"] != float64(21) || body["page"] != float64(2) || body["limit"] != float64(5) || body["totalPages"] != float64(5) {
		t.Fatalf("envelope = %v", body)
	}
	items := body["items"].([]any)
	first := items[0].(map[string]any)
	if first["game_name"] != "Starburst" || first["is_favorite"] != false || first["game_type"] != "casino" {
		t.Fatalf("item = %v", first)
	}
}

func TestGetGames_EmptyAndInvalidParams(t *testing.T) {
	games := &fakeCatalog{}
	r := newEngine(New(&fakeUsers{}, games, &fakeFavorites{}, fakeTokens{}, true))

	w, body := call(r, http.MethodGet, "/games?page=abc&limit=-4", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if games.lastQuery.Page != 1 || games.lastQuery.Limit != 10 {
		t.Fatalf("query = %+v", games.lastQuery)
	}
	if items, ok := body["items"].([]any); !ok || len(items) != 0 || body["totalPages"] != float64(1) {
		t.Fatalf("empty page envelope = %v", body)
	}
}

func TestGameByIDAndFacets(t *testing.T) {
	games := &fakeCatalog{}
	r := newEngine(New(&fakeUsers{}, games, &fakeFavorites{}, fakeTokens{}, true))

	w, body := call(r, http.MethodGet, "/games/12", "")
	if w.Code != http.StatusOK || body["id"] != float64(12) || body["is_favorite"] != true {
		t.Fatalf("game: %d %v", w.Code, body)
	}
	w, body = call(r, http.MethodGet, "/games/abc", "")
	if w.Code != http.StatusBadRequest || body["error"] != "Invalid game ID" {
		t.Fatalf("bad id: %d %v", w.Code, body)
	}

	w, _ = call(r, http.MethodGet, "/games/sports", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != `["Cricket","Football"]` {
		t.Fatalf("sports: %d %s", w.Code, w.Body.String())
	}
	w, _ = call(r, http.MethodGet, "/games/providers", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != `["NetEnt"]` {
		t.Fatalf("providers: %d %s", w.Code, w.Body.String())
	}

	games.err = service.ErrGameNotFound
	w, body = call(r, http.MethodGet, "/games/99", "")
	if w.Code != http.StatusNotFound || body["error"] != "Game not found" {
		t.Fatalf("missing game: %d %v", w.Code, body)
	}
}

func TestFavoritesHandlers(t *testing.T) {
	favs := &fakeFavorites{}
	r := newEngine(New(&fakeUsers{}, &fakeCatalog{}, favs, fakeTokens{}, true))

	w, body := call(r, http.MethodPost, "/favorites/4", "")
	if w.Code != http.StatusCreated || body["message"] != "Game added to favorites" || favs.gameID != 4 {
		t.Fatalf("add: %d %v", w.Code, body)
	}
	w, body = call(r, http.MethodDelete, "/favorites/4", "")
	if w.Code != http.StatusOK || body["message"] != "Game removed from favorites" {
		t.Fatalf("remove: %d %v", w.Code, body)
	}
	w, _ = call(r, http.MethodGet, "/favorites", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}
	w, body = call(r, http.MethodPost, "/favorites/0", "")
	if w.Code != http.StatusBadRequest || body["error"] != "Invalid game ID" {
		t.Fatalf("zero id: %d %v", w.Code, body)
	}

	cases := []struct {
		method string
		err    error
		status int
		msg    string
	}{
		{http.MethodPost, service.ErrAlreadyFavorited, http.StatusBadRequest, "Game already in favorites"},
		{http.MethodPost, service.ErrGameNotFound, http.StatusNotFound, "Game not found"},
		{http.MethodDelete, service.ErrFavoriteNotFound, http.StatusNotFound, "Favorite not found"},
	}
	for _, tc := range cases {
		favs.err = tc.err
		w, body := call(r, tc.method, "/favorites/4", "")
		if w.Code != tc.status || body["error"] != tc.msg {
			t.Fatalf("%s with %v: got %d %v", tc.method, tc.err, w.Code, body)
		}
	}
}

func TestNewPaginatedResponse(t *testing.T) {
	p := NewPaginatedResponse[int](nil, 0, 1, 10)
	if p.Items == nil || p.TotalPages != 1 {
		t.Fatalf("empty page = %+v", p)
	}
	p = NewPaginatedResponse([]int{1, 2, 3, 4, 5}, 20, 1, 5)
	if p.TotalPages != 4 || p.Total != 20 {
		t.Fatalf("page = %+v", p)
	}
}
