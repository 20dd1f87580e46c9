package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-booking-api/internal/config"
)

// cachedResponse is the envelope stored in Redis for a cached GET.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyCapture duplicates the response body into a buffer while
// forwarding it to the client, up to limit bytes.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	if w.buf.Len() < w.limit {
		remain := w.limit - w.buf.Len()
		if len(b) <= remain {
			w.buf.Write(b)
		} else {
			w.buf.Write(b[:remain])
		}
	}
	return w.ResponseWriter.Write(b)
}

// NewResponseCache caches successful GET responses in Redis.  Cache
// keys embed a version counter that every successful mutating request
// bumps, so reads never observe CRUD state older than the last write.
// Entries additionally expire after cfg.TTL.  When Redis is
// unavailable or disabled the middleware passes requests through.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	verKey := cfg.Prefix + ":ver"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			if c.Request().Method != http.MethodGet {
				err := next(c)
				// Invalidate on any successful mutation.
				if err == nil && c.Response().Status < 400 {
					_ = rdb.Incr(context.Background(), verKey).Err()
				}
				return err
			}

			ver, err := rdb.Get(ctx, verKey).Result()
			if errors.Is(err, redis.Nil) {
				// No mutation yet; the cache starts at version zero.
				ver = "0"
			} else if err != nil {
				// A transient Redis error must not serve entries from
				// an unknown version; skip the cache entirely.
				return next(c)
			}
			key := cacheKey(cfg.Prefix, ver, c)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil {
					c.Response().Header().Set(echo.HeaderContentType, cached.ContentType)
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(cached.Status)
					_, _ = c.Response().Write(cached.Body)
					return nil
				}
			}

			capture := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = capture
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			// Only complete 200 bodies are cacheable.
			if capture.status == http.StatusOK && capture.buf.Len() < cfg.MaxBodyBytes {
				payload, err := json.Marshal(cachedResponse{
					Status:      capture.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        capture.buf.Bytes(),
				})
				if err == nil {
					_ = rdb.SetEx(context.Background(), key, payload, cfg.TTL).Err()
				}
			}
			return nil
		}
	}
}

// cacheKey builds a stable key from the version counter, route and
// query string.
func cacheKey(prefix, version string, c echo.Context) string {
	tail := c.Path() + "?" + c.Request().URL.RawQuery
	for _, name := range c.ParamNames() {
		tail += "&" + name + "=" + c.Param(name)
	}
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:v%s:%x", prefix, version, sum[:])
}
