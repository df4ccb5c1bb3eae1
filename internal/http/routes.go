package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a set of routes registered under the API group with the
// full middleware chain applied.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// PublicRouteGroup holds routes that skip authentication, such as login.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup holds routes that require a valid access token.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
