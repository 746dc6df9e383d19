package shell

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/y23cs140nandinipinneboina/sahayak/internal/shell"

// NotFoundPage is the page label reported for paths with no route.
const NotFoundPage PageID = "not_found"

// Source says what triggered a render.
type Source string

const (
	SourceHTTP    Source = "http"
	SourcePartial Source = "partial"
	SourceLive    Source = "live"
)

// Recorder receives one observation per render.
type Recorder interface {
	RecordNavigation(page, source string, found bool, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordNavigation(string, string, bool, time.Duration) {}

// Result is the outcome of matching a path against the table.
type Result struct {
	Path  string
	Route Route
	Found bool
}

// Page returns the matched page id, or NotFoundPage.
func (r Result) Page() PageID {
	if !r.Found {
		return NotFoundPage
	}
	return r.Route.Page
}

// Title returns the matched route title, or "Not Found".
func (r Result) Title() string {
	if !r.Found {
		return "Not Found"
	}
	return r.Route.Title
}

// Content returns the component for the content region. An unmatched path
// yields an empty region.
func (r Result) Content() templ.Component {
	if !r.Found {
		return templ.NopComponent
	}
	return r.Route.Component
}

// Router matches paths against a Table and renders the matched page inside
// the layout frame.
type Router struct {
	table    *Table
	header   templ.Component
	brand    string
	live     bool
	recorder Recorder
	tracer   trace.Tracer
	logger   *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithBrand sets the application name appended to document titles.
func WithBrand(brand string) Option {
	return func(r *Router) { r.brand = brand }
}

// WithLive includes the live navigation client in full documents.
func WithLive(live bool) Option {
	return func(r *Router) { r.live = live }
}

// WithRecorder sets where render observations are reported.
func WithRecorder(rec Recorder) Option {
	return func(r *Router) { r.recorder = rec }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *Router) { r.tracer = t }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) { r.logger = l }
}

// NewRouter creates a router over table with the given header.
func NewRouter(table *Table, header templ.Component, opts ...Option) *Router {
	r := &Router{
		table:    table,
		header:   header,
		recorder: nopRecorder{},
		tracer:   otel.Tracer(tracerName),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Table returns the route table.
func (r *Router) Table() *Table {
	return r.table
}

// Resolve matches path without rendering anything.
func (r *Router) Resolve(path string) Result {
	path = NormalizePath(path)
	route, ok := r.table.Match(path)
	return Result{Path: path, Route: route, Found: ok}
}

// Frame returns the layout frame around the result's content.
func (r *Router) Frame(res Result) templ.Component {
	return Frame(r.header, res.Content())
}

// Document returns the full HTML document for a result.
func (r *Router) Document(res Result) templ.Component {
	title := res.Title()
	if r.brand != "" {
		title += " · " + r.brand
	}
	return Document(title, r.Frame(res), r.live)
}

// RenderContent writes only the content region markup for path.
func (r *Router) RenderContent(ctx context.Context, w io.Writer, path string, source Source) (Result, error) {
	res, body, err := r.render(ctx, path, source, Result.Content)
	if err != nil {
		return res, err
	}
	_, err = w.Write(body)
	return res, err
}

// ServeHTTP renders the document for the request path. Unmatched paths get
// the frame with an empty content region and status 404. Requests carrying
// HX-Request receive only the content region.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	source, view := SourceHTTP, r.Document
	if req.Header.Get("HX-Request") == "true" {
		source, view = SourcePartial, Result.Content
	}

	res, body, err := r.render(req.Context(), req.URL.Path, source, view)
	if err != nil {
		r.logger.Error("failed to render page", "path", res.Path, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if !res.Found {
		status = http.StatusNotFound
		r.logger.Info("no route for path", "path", res.Path)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if req.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		r.logger.Warn("failed to write page", "path", res.Path, "error", err)
	}
}

// Mount registers every route on mux and makes the router its not-found
// handler, so unmatched and trailing-slash paths still reach Resolve.
func (r *Router) Mount(mux chi.Router) {
	for _, route := range r.table.Routes() {
		mux.Get(route.Path, r.ServeHTTP)
		mux.Head(route.Path, r.ServeHTTP)
	}
	mux.NotFound(r.ServeHTTP)
}

func (r *Router) render(ctx context.Context, path string, source Source, view func(Result) templ.Component) (Result, []byte, error) {
	start := time.Now()
	res := r.Resolve(path)

	ctx, span := r.tracer.Start(ctx, "shell.render", trace.WithAttributes(
		attribute.String("shell.path", res.Path),
		attribute.String("shell.page", string(res.Page())),
		attribute.String("shell.source", string(source)),
		attribute.Bool("shell.found", res.Found),
	))
	defer span.End()

	var buf bytes.Buffer
	if err := view(res).Render(ctx, &buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return res, nil, err
	}

	r.recorder.RecordNavigation(string(res.Page()), string(source), res.Found, time.Since(start))
	return res, buf.Bytes(), nil
}
