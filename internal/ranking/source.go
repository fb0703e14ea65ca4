package ranking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownSource is returned by Open for an unrecognised source kind.
var ErrUnknownSource = errors.New("unknown ranking source")

// Source kinds accepted by Open.
const (
	KindHTTP     = "http"
	KindPostgres = "postgres"
	KindFile     = "file"
)

// DefaultLimit mirrors the size of the ranked set the carousel is built for.
const DefaultLimit = 5

// Source retrieves the ranked item list.
type Source interface {
	FetchRanked(ctx context.Context) (Result, error)
}

// Closer is implemented by sources holding resources such as a pool.
type Closer interface {
	Close()
}

// Options select and configure a Source.
type Options struct {
	Kind    string
	URL     string
	DSN     string
	Path    string
	Limit   int
	Timeout time.Duration
}

// Open builds the Source described by opts.
func Open(ctx context.Context, opts Options) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Kind)) {
	case KindHTTP, "":
		return NewHTTPSource(opts.URL, opts.Timeout), nil
	case KindPostgres:
		src, err := NewPostgresSource(ctx, opts.DSN, opts.Limit)
		if err != nil {
			return nil, err
		}
		return src, nil
	case KindFile:
		return NewFileSource(opts.Path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, opts.Kind)
	}
}

// Fetch calls src and folds the envelope into items or an error. A
// non-success status becomes a *StatusError carrying the service message.
func Fetch(ctx context.Context, src Source) ([]Item, error) {
	if src == nil {
		return nil, errors.New("ranking source not configured")
	}
	res, err := src.FetchRanked(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch ranked items: %w", err)
	}
	if !res.OK() {
		return nil, &StatusError{Status: res.Status, Message: res.Message}
	}
	if err := Validate(res.Data); err != nil {
		return nil, fmt.Errorf("invalid ranked payload: %w", err)
	}
	return res.Data, nil
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Result, error)

// FetchRanked calls f.
func (f SourceFunc) FetchRanked(ctx context.Context) (Result, error) {
	return f(ctx)
}
