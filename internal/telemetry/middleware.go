package telemetry

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Middleware opens a server span per API request, named after the matched
// route. Health checks and swagger assets are not traced.
func Middleware(opts ...otelgin.Option) gin.HandlerFunc {
	opts = append([]otelgin.Option{otelgin.WithGinFilter(traced)}, opts...)
	return otelgin.Middleware(ServiceName, opts...)
}

func traced(c *gin.Context) bool {
	route := c.FullPath()
	return route != "/health" && !strings.HasPrefix(route, "/swagger")
}
