package publish

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/picklist-dev/picklist/internal/errors"
	"github.com/picklist-dev/picklist/pkg/render"
)

// Publisher renders pages and writes them to a store as self-contained
// static HTML.
type Publisher struct {
	store    Store
	renderer *render.Renderer
	logger   *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

// WithPretty renders indented HTML, for snapshots people read.
func WithPretty() Option {
	return func(p *Publisher) { p.renderer = render.New(render.Config{Pretty: true}) }
}

// New creates a Publisher writing to the given store.
func New(store Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:    store,
		renderer: render.New(render.Config{}),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PublishPage renders one page and saves it under key.
func (p *Publisher) PublishPage(ctx context.Context, key string, page render.Page) error {
	var buf bytes.Buffer
	if err := p.renderer.RenderPage(&buf, page); err != nil {
		return errors.New("E020").WithDetail("page %q", key).Wrap(err)
	}
	size := buf.Len()

	if err := p.store.Save(ctx, key, "text/html; charset=utf-8", &buf); err != nil {
		if stderrors.Is(err, ErrTooLarge) {
			return errors.New("E041").WithDetail("page %q", key).Wrap(err)
		}
		return errors.New("E040").WithDetail("page %q", key).Wrap(err)
	}

	p.logger.Info("page published", "key", key, "bytes", size, "url", p.store.URL(key))
	return nil
}

// PublishSite publishes every page in the map, keyed by route. Routes
// are processed in sorted order so runs are reproducible; the first
// failure stops the run.
func (p *Publisher) PublishSite(ctx context.Context, pages map[string]render.Page) error {
	routes := make([]string, 0, len(pages))
	for route := range pages {
		routes = append(routes, route)
	}
	sort.Strings(routes)

	for _, route := range routes {
		if err := p.PublishPage(ctx, RouteKey(route), pages[route]); err != nil {
			return err
		}
	}

	p.logger.Info("site published", "pages", len(routes))
	return nil
}

// RouteKey maps a page route to its snapshot filename: "/" becomes
// index.html, "/tasks" becomes tasks.html.
func RouteKey(route string) string {
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return "index.html"
	}
	return trimmed + ".html"
}
