package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/repository"
)

// CatalogService lists games for a caller and enumerates filter facets.
type CatalogService struct {
	DB      *gorm.DB
	Timeout time.Duration
}

// NewCatalogService returns a CatalogService.
func NewCatalogService(db *gorm.DB, timeout time.Duration) *CatalogService {
	return &CatalogService{DB: db, Timeout: timeout}
}

// List returns one page of games matching q together with the total number
// of matches. The count and the page use the same predicate but run as
// separate statements. Page and limit outside their ranges are coerced the
// same way catalog.FromParams does.
func (s *CatalogService) List(ctx context.Context, userID uint, q catalog.Query) ([]models.GameView, int64, error) {
	q = normalize(q)

	ctx, cancel := storeContext(ctx, s.Timeout)
	defer cancel()

	total, err := repository.CountGames(ctx, s.DB, userID, q)
	if err != nil {
		return nil, 0, classify(err)
	}
	if q.PastEnd(total) {
		return []models.GameView{}, total, nil
	}

	items, err := repository.ListGamesPage(ctx, s.DB, userID, q)
	if err != nil {
		return nil, 0, classify(err)
	}
	return items, total, nil
}

// Get returns a single game with the caller's favorite flag.
func (s *CatalogService) Get(ctx context.Context, userID, gameID uint) (*models.GameView, error) {
	ctx, cancel := storeContext(ctx, s.Timeout)
	defer cancel()

	v, err := repository.GetGame(ctx, s.DB, userID, gameID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	return v, classify(err)
}

// Sports returns the distinct sports in the catalog, sorted.
func (s *CatalogService) Sports(ctx context.Context) ([]string, error) {
	ctx, cancel := storeContext(ctx, s.Timeout)
	defer cancel()
	return facet(repository.DistinctSports(ctx, s.DB))
}

// Providers returns the distinct casino providers in the catalog, sorted.
func (s *CatalogService) Providers(ctx context.Context) ([]string, error) {
	ctx, cancel := storeContext(ctx, s.Timeout)
	defer cancel()
	return facet(repository.DistinctProviders(ctx, s.DB))
}

func facet(values []string, err error) ([]string, error) {
	if err != nil {
		return nil, classify(err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// normalize brings page and limit into range for queries built by hand.
func normalize(q catalog.Query) catalog.Query {
	if q.Page < 1 {
		q.Page = catalog.DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = catalog.DefaultLimit
	}
	if q.Limit > catalog.MaxLimit {
		q.Limit = catalog.MaxLimit
	}
	return q
}
