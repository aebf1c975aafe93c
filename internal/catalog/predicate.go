package catalog

import (
	"strings"

	"gorm.io/gorm/clause"
)

// Table and column names referenced by the listing statements. The favorites
// table is LEFT JOINed on (game_id, caller) so favorites.id is NULL for games
// the caller has not favorited.
const (
	GamesTable     = "games"
	FavoritesTable = "favorites"
)

// searchColumns are matched case-insensitively by the free-text search.
var searchColumns = []string{"game_name", "team_a", "team_b", "league"}

// Filter is one restriction on the listing. The set of filters is closed:
// build them with Sport, Provider or FavoritesOnly.
type Filter interface {
	expression() clause.Expression
}

type sportFilter struct{ sport string }

type providerFilter struct{ provider string }

type favoritesFilter struct{}

// Sport restricts the listing to games of the given sport.
func Sport(sport string) Filter { return sportFilter{sport: sport} }

// Provider restricts the listing to games from the given provider.
func Provider(provider string) Filter { return providerFilter{provider: provider} }

// FavoritesOnly restricts the listing to games the caller has favorited.
func FavoritesOnly() Filter { return favoritesFilter{} }

func (f sportFilter) expression() clause.Expression {
	return clause.Eq{Column: clause.Column{Table: GamesTable, Name: "sport"}, Value: f.sport}
}

func (f providerFilter) expression() clause.Expression {
	return clause.Eq{Column: clause.Column{Table: GamesTable, Name: "provider"}, Value: f.provider}
}

func (favoritesFilter) expression() clause.Expression {
	return clause.Expr{SQL: "? IS NOT NULL", Vars: []any{clause.Column{Table: FavoritesTable, Name: "id"}}}
}

// Predicate returns the AND-combined conditions for q. Every user-supplied
// value is bound as a parameter; nothing is spliced into SQL text.
func (q Query) Predicate() []clause.Expression {
	exprs := make([]clause.Expression, 0, len(q.Filters)+1)
	for _, f := range q.Filters {
		exprs = append(exprs, f.expression())
	}
	if s := q.Search; s != "" {
		exprs = append(exprs, searchExpression(s))
	}
	return exprs
}

// searchExpression ORs a case-insensitive substring match across searchColumns.
// Both sides are folded by the database's LOWER so column and term agree on
// what case folding means for the active driver.
func searchExpression(term string) clause.Expression {
	pattern := "%" + EscapeLike(term) + "%"

	parts := make([]string, 0, len(searchColumns))
	vars := make([]any, 0, 2*len(searchColumns))
	for _, col := range searchColumns {
		parts = append(parts, "LOWER(?) LIKE LOWER(?) ESCAPE '\\'")
		vars = append(vars, clause.Column{Table: GamesTable, Name: col}, pattern)
	}
	return clause.Expr{SQL: "(" + strings.Join(parts, " OR ") + ")", Vars: vars}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
