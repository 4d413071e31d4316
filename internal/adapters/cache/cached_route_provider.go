package cache

import (
	"context"
	"log"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// CachedRouteProvider layers a RouteCache over any RouteProvider. The
// pipeline's own contract stays cache-free; this decorator is the
// external caching concern the design allows on top of it.
//
// Cache read failures fall through to the provider; cache write
// failures are logged and never fail the route.
type CachedRouteProvider struct {
	Provider ports.RouteProvider
	Cache    ports.RouteCache
}

func NewCachedRouteProvider(provider ports.RouteProvider, cache ports.RouteCache) *CachedRouteProvider {
	return &CachedRouteProvider{Provider: provider, Cache: cache}
}

func (c *CachedRouteProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (ports.RouteResult, error) {
	if c.Cache != nil {
		result, ok, err := c.Cache.Get(ctx, origin, destination)
		if err != nil {
			log.Printf("route cache read failed: %v", err)
		} else if ok {
			return result, nil
		}
	}

	result, err := c.Provider.GetRoute(ctx, origin, destination)
	if err != nil {
		return ports.RouteResult{}, err
	}

	if c.Cache != nil {
		if err := c.Cache.Put(ctx, origin, destination, result); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return result, nil
}
