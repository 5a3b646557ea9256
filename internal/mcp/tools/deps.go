package tools

import (
	"golang.org/x/sync/singleflight"

	"github.com/usestring/inferschema/internal/cache"
	"github.com/usestring/inferschema/internal/config"
	"github.com/usestring/inferschema/internal/query"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Config *config.Config
	Cache  *cache.DocCache
	Query  *query.Engine

	// inferGroup collapses concurrent identical inference requests into a
	// single run; followers get the leader's document.
	inferGroup singleflight.Group
}
