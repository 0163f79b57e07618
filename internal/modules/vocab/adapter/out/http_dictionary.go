package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"studyhub/internal/modules/vocab/domain"
	vocabout "studyhub/internal/modules/vocab/port/out"
	apperrors "studyhub/internal/platform/errors"
)

const cacheSize = 256

type cachedAnswer struct {
	def   domain.Definition
	found bool
}

type HTTPDictionary struct {
	baseURL string
	client  *http.Client
	cache   *lru.Cache[string, cachedAnswer]
	logger  *zap.Logger
}

type dictionaryEntry struct {
	Meanings []struct {
		Definitions []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

func NewHTTPDictionary(baseURL string, timeout time.Duration, logger *zap.Logger) (vocabout.Dictionary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cache, err := lru.New[string, cachedAnswer](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create lookup cache: %w", err)
	}
	return &HTTPDictionary{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		cache:   cache,
		logger:  logger,
	}, nil
}

func (d *HTTPDictionary) Lookup(ctx context.Context, raw string) (domain.Definition, error) {
	term := domain.CleanTerm(raw)
	if utf8.RuneCountInString(term) < 2 {
		return domain.Definition{}, fmt.Errorf("lookup %q: %w", raw, apperrors.ErrLookupNotFound)
	}
	if hit, ok := d.cache.Get(term); ok {
		if !hit.found {
			return domain.Definition{}, fmt.Errorf("lookup %q: %w", term, apperrors.ErrLookupNotFound)
		}
		return hit.def, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+url.PathEscape(term), nil)
	if err != nil {
		return domain.Definition{}, fmt.Errorf("build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Warn("dictionary unreachable", zap.String("term", term), zap.Error(err))
		return domain.Definition{}, fmt.Errorf("%w: %v", apperrors.ErrLookupUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		if resp.StatusCode == http.StatusNotFound {
			d.cache.Add(term, cachedAnswer{})
		}
		d.logger.Debug("dictionary miss", zap.String("term", term), zap.Int("status", resp.StatusCode))
		return domain.Definition{}, fmt.Errorf("lookup %q: status %d: %w", term, resp.StatusCode, apperrors.ErrLookupNotFound)
	}

	entries := []dictionaryEntry{}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		if interrupted(ctx, err) {
			d.logger.Warn("dictionary answer cut off", zap.String("term", term), zap.Error(err))
			return domain.Definition{}, fmt.Errorf("%w: read %q: %v", apperrors.ErrLookupUnavailable, term, err)
		}
		return domain.Definition{}, fmt.Errorf("decode lookup %q: %v: %w", term, err, apperrors.ErrLookupNotFound)
	}
	def, ok := firstDefinition(entries)
	d.cache.Add(term, cachedAnswer{def: def, found: ok})
	if !ok {
		return domain.Definition{}, fmt.Errorf("lookup %q: %w", term, apperrors.ErrLookupNotFound)
	}
	return def, nil
}

// interrupted reports whether a body read failed on the transport rather than
// on the payload itself.
func interrupted(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// firstDefinition walks entries, then meanings, then definitions, taking the
// first non-empty definition and the first non-empty example independently.
func firstDefinition(entries []dictionaryEntry) (domain.Definition, bool) {
	def := domain.Definition{}
	for _, e := range entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if def.Definition == "" && d.Definition != "" {
					def.Definition = d.Definition
				}
				if def.Example == "" && d.Example != "" {
					def.Example = d.Example
				}
			}
		}
	}
	return def, def.Definition != ""
}
