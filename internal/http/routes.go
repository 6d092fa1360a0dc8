package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is implemented by handlers that mount routes under /api/v1.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// PublicRouteGroup mounts routes that are reachable without credentials,
// such as login and the drug reference list.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup mounts routes that sit behind the auth middleware
// when authentication is enabled.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
