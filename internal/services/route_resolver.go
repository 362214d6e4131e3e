package services

import (
	"go.uber.org/zap"

	"github.com/dawabag/portalsvc/domain"
)

// RouteResolverImpl implements domain.RouteResolver with an explicit
// allow-list. Role values never become routes directly: a role outside
// the configured destinations resolves to the fallback.
type RouteResolverImpl struct {
	destinations map[string]struct{}
	fallback     string
	logger       *zap.Logger
}

// NewRouteResolver creates a route resolver from the configured
// destination allow-list and fallback route.
func NewRouteResolver(destinations []string, fallback string, logger *zap.Logger) domain.RouteResolver {
	allowed := make(map[string]struct{}, len(destinations))
	for _, d := range destinations {
		allowed[d] = struct{}{}
	}
	return &RouteResolverImpl{
		destinations: allowed,
		fallback:     fallback,
		logger:       logger,
	}
}

// RouteFor implements domain.RouteResolver
func (r *RouteResolverImpl) RouteFor(role string) string {
	if _, ok := r.destinations[role]; ok {
		return role
	}
	r.logger.Warn("unrecognized role, falling back", zap.String("role", role), zap.String("fallback", r.fallback))
	return r.fallback
}
