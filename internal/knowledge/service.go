package knowledge

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

type Builder struct {
	repo Repo
}

func NewBuilder(repo Repo) *Builder {
	return &Builder{repo: repo}
}

// NormalizeLocale lowercases locale and defaults blanks to DefaultLocale.
func NormalizeLocale(locale string) string {
	if l := strings.ToLower(strings.TrimSpace(locale)); l != "" {
		return l
	}
	return DefaultLocale
}

// BuildContext searches the four stores for userText. Text without usable
// tokens yields an empty Context and touches no store. Any store error is
// returned as is.
func (b *Builder) BuildContext(ctx context.Context, userText, locale string) (Context, error) {
	tokens := Tokenize(userText)
	if len(tokens) == 0 {
		return Context{}, nil
	}
	locale = NormalizeLocale(locale)

	var (
		products []Product
		services []Service
		pages    []Page
		notes    []Note
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = b.repo.SearchProducts(gctx, tokens, productLimit)
		return err
	})
	g.Go(func() (err error) {
		services, err = b.repo.SearchServices(gctx, tokens, serviceLimit)
		return err
	})
	g.Go(func() (err error) {
		pages, err = b.repo.SearchPages(gctx, tokens, pageLimit)
		return err
	})
	g.Go(func() (err error) {
		notes, err = b.repo.SearchNotes(gctx, tokens, locale, noteLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return Context{}, err
	}

	return Context{
		Text:         Render(products, services, pages, notes),
		SourcesCount: len(products) + len(services) + len(pages) + len(notes),
	}, nil
}
