package knowledge

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

// matchAny builds (col1 ILIKE $1 OR col2 ILIKE $1 OR ...) over every token.
func matchAny(tokens []string, columns ...string) squirrel.Or {
	or := make(squirrel.Or, 0, len(tokens)*len(columns))
	for _, t := range tokens {
		pattern := "%" + escapeLike(t) + "%"
		for _, c := range columns {
			or = append(or, squirrel.ILike{c: pattern})
		}
	}
	return or
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(v string) string {
	return likeEscaper.Replace(v)
}

func (r *repo) query(ctx context.Context, b squirrel.SelectBuilder) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return r.db.QueryContext(ctx, query, args...)
}

func (r *repo) SearchProducts(ctx context.Context, tokens []string, limit int) ([]Product, error) {
	rows, err := r.query(ctx, psql.
		Select(
			"p.id::text",
			"COALESCE(p.category, '')",
			"COALESCE(p.price::text, '')",
			"i.locale",
			"COALESCE(i.title, '')",
			"COALESCE(i.slug, '')",
			"COALESCE(i.description, '')",
		).
		From("products p").
		Join("product_i18n i ON i.product_id = p.id").
		Where(squirrel.Eq{"p.is_active": true}).
		Where(matchAny(tokens, "i.title", "i.slug", "i.description")).
		OrderBy("p.created_at DESC").
		Limit(uint64(limit)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Category, &p.Price, &p.Locale, &p.Title, &p.Slug, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repo) SearchServices(ctx context.Context, tokens []string, limit int) ([]Service, error) {
	rows, err := r.query(ctx, psql.
		Select(
			"s.id::text",
			"COALESCE(s.type, '')",
			"COALESCE(s.price::text, '')",
			"i.locale",
			"COALESCE(i.name, '')",
			"COALESCE(i.slug, '')",
			"COALESCE(i.description, '')",
			"COALESCE(i.material, '')",
			"COALESCE(i.includes, '')",
			"COALESCE(i.warranty, '')",
		).
		From("services s").
		Join("services_i18n i ON i.service_id = s.id").
		Where(squirrel.Eq{"s.is_active": true}).
		Where(matchAny(tokens, "i.name", "i.slug", "i.description")).
		OrderBy("s.created_at DESC").
		Limit(uint64(limit)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(
			&s.ID, &s.Type, &s.Price, &s.Locale, &s.Name, &s.Slug,
			&s.Description, &s.Material, &s.Includes, &s.Warranty,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *repo) SearchPages(ctx context.Context, tokens []string, limit int) ([]Page, error) {
	rows, err := r.query(ctx, psql.
		Select(
			"c.id::text",
			"COALESCE(c.module_key, '')",
			"i.locale",
			"COALESCE(i.title, '')",
			"COALESCE(i.slug, '')",
			"COALESCE(i.summary, '')",
			"COALESCE(i.content, '')",
		).
		From("custom_pages c").
		Join("custom_pages_i18n i ON i.page_id = c.id").
		Where(squirrel.Eq{"c.is_published": true}).
		Where(matchAny(tokens, "i.title", "i.slug", "i.summary")).
		OrderBy("c.created_at DESC").
		Limit(uint64(limit)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Page
	for rows.Next() {
		var p Page
		if err := rows.Scan(&p.ID, &p.ModuleKey, &p.Locale, &p.Title, &p.Slug, &p.Summary, &p.Content); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var noteColumns = []string{
	"k.id::text",
	"k.locale",
	"COALESCE(k.title, '')",
	"COALESCE(k.content, '')",
	"COALESCE(k.tags, '')",
	"k.is_active",
	"k.priority",
	"k.updated_at",
}

func scanNotes(rows *sql.Rows) ([]Note, error) {
	defer rows.Close()

	var out []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Locale, &n.Title, &n.Content, &n.Tags, &n.IsActive, &n.Priority, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *repo) SearchNotes(ctx context.Context, tokens []string, locale string, limit int) ([]Note, error) {
	rows, err := r.query(ctx, psql.
		Select(noteColumns...).
		From("chat_ai_knowledge k").
		Where(squirrel.Eq{"k.is_active": true, "k.locale": locale}).
		Where(matchAny(tokens, "k.title", "k.content", "k.tags")).
		OrderBy("k.priority DESC", "k.updated_at DESC").
		Limit(uint64(limit)))
	if err != nil {
		return nil, err
	}
	return scanNotes(rows)
}

func (r *repo) ListNotes(ctx context.Context, locale string) ([]Note, error) {
	b := psql.Select(noteColumns...).
		From("chat_ai_knowledge k").
		OrderBy("k.priority DESC", "k.updated_at DESC")
	if locale != "" {
		b = b.Where(squirrel.Eq{"k.locale": locale})
	}

	rows, err := r.query(ctx, b)
	if err != nil {
		return nil, err
	}
	return scanNotes(rows)
}

func (r *repo) CreateNote(ctx context.Context, note *Note) error {
	query, args, err := psql.
		Insert("chat_ai_knowledge").
		Columns("locale", "title", "content", "tags", "is_active", "priority").
		Values(note.Locale, note.Title, note.Content, note.Tags, note.IsActive, note.Priority).
		Suffix("RETURNING id::text, updated_at").
		ToSql()
	if err != nil {
		return err
	}
	return r.db.QueryRowContext(ctx, query, args...).Scan(&note.ID, &note.UpdatedAt)
}

func (r *repo) SetNoteActive(ctx context.Context, id string, active bool) error {
	query, args, err := psql.
		Update("chat_ai_knowledge").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
