package resource

import (
	"time"

	"isp-dashboard/pkg/cache"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/log"
)

// Deps are the services shared by every Gateway.
type Deps struct {
	Logger    log.Logger
	Client    graphql.Client
	Cache     cache.Cache
	Publisher Publisher
}

// Gateway reads and writes one entity type through the GraphQL API,
// keeping the normalized cache consistent with confirmed mutations.
type Gateway[T any] struct {
	l     log.Logger
	gql   graphql.Client
	cache cache.Cache
	pub   Publisher
	desc  Descriptor[T]
	clock func() time.Time
}

// New creates a Gateway for desc. Nil Cache and Publisher are replaced by no-ops.
func New[T any](deps Deps, desc Descriptor[T]) *Gateway[T] {
	if deps.Cache == nil {
		deps.Cache = cache.NewNop()
	}
	if deps.Publisher == nil {
		deps.Publisher = nopPublisher{}
	}
	return &Gateway[T]{
		l:     deps.Logger,
		gql:   deps.Client,
		cache: deps.Cache,
		pub:   deps.Publisher,
		desc:  desc,
		clock: time.Now,
	}
}

// Typename is the cache typename of T.
func (g *Gateway[T]) Typename() string {
	return g.desc.Typename
}
