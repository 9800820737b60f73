package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/foomo/resinaro/vo"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgxmock pools
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var listingColumns = []string{
	"city",
	"category",
	"slug",
	"name",
	"COALESCE(short, '')",
	"COALESCE(address, '')",
	"COALESCE(phone, '')",
	"COALESCE(price, '')",
	"COALESCE(tags, '{}')",
	"COALESCE(website, '')",
	"COALESCE(menu_url, '')",
	"COALESCE(maps_url, '')",
	"COALESCE(image, '')",
	"COALESCE(badges, '{}')",
	"COALESCE(review_snippet, '')",
	"COALESCE(review_author, '')",
	"COALESCE(review_source, '')",
}

func listingsQuery() (string, []any, error) {
	return sq.Select(listingColumns...).
		From("listings").
		Where(sq.Eq{"published": true}).
		OrderBy("city", "category", "position").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// LoadPostgres reads all published listings once and builds a snapshot.
// Lowercasing of city and category happens here, the table is maintained by
// hand.
func LoadPostgres(ctx context.Context, db Querier) (*Store, error) {
	query, args, errQuery := listingsQuery()
	if errQuery != nil {
		return nil, fmt.Errorf("could not build listings query: %w", errQuery)
	}
	rows, errRows := db.Query(ctx, query, args...)
	if errRows != nil {
		return nil, fmt.Errorf("could not query listings: %w", errRows)
	}
	defer rows.Close()

	buckets := Buckets{}
	for rows.Next() {
		var (
			city, category string
			l              vo.Listing
			badges         []string
			review         vo.Review
		)
		errScan := rows.Scan(
			&city, &category, &l.Slug, &l.Name, &l.Short,
			&l.Address, &l.Phone, &l.Price, &l.Tags,
			&l.Website, &l.MenuURL, &l.MapsURL, &l.Image, &badges,
			&review.Snippet, &review.Author, &review.Source,
		)
		if errScan != nil {
			return nil, fmt.Errorf("could not scan listing: %w", errScan)
		}
		for _, b := range badges {
			l.Badges = append(l.Badges, vo.Badge(b))
		}
		if len(l.Tags) == 0 {
			l.Tags = nil
		}
		if review.Snippet != "" {
			l.Review = &review
		}
		city, category = lower(city), lower(category)
		if buckets[city] == nil {
			buckets[city] = map[string][]vo.Listing{}
		}
		buckets[city][category] = append(buckets[city][category], l)
	}
	if errRows := rows.Err(); errRows != nil {
		return nil, fmt.Errorf("could not read listings: %w", errRows)
	}
	return New(buckets)
}
