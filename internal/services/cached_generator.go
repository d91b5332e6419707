package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/vortexgear/storefront/internal/cache"
)

type cachedReply struct {
	Text string `json:"text"`
}

// CachedGenerator answers repeated prompts from the cache. Cache failures are
// logged and fall through to the wrapped generator.
type CachedGenerator struct {
	next  TextGenerator
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedGenerator(next TextGenerator, c cache.Cache, ttl time.Duration) *CachedGenerator {
	return &CachedGenerator{next: next, cache: c, ttl: ttl}
}

func (g *CachedGenerator) Generate(ctx context.Context, prompt string) (string, error) {

	sum := sha256.Sum256([]byte(prompt))
	key := cache.Key(cache.ChatReplyKeyPrefix, hex.EncodeToString(sum[:]))

	var hit cachedReply
	found, err := g.cache.Get(ctx, key, &hit)
	if err != nil {
		slog.Warn("Chat reply cache lookup failed", slog.String("error", err.Error()))
	} else if found {
		return hit.Text, nil
	}

	reply, err := g.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	// Empty replies are not cached so the next attempt reaches the model.
	if strings.TrimSpace(reply) != "" {
		if err := g.cache.Set(ctx, key, cachedReply{Text: reply}, g.ttl); err != nil {
			slog.Warn("Chat reply cache store failed", slog.String("error", err.Error()))
		}
	}

	return reply, nil
}
