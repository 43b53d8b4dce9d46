package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBuilder_Build(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	web := newMetricsBuilder(promauto.With(reg), "web")
	// 同名指标不同的 server 可以同时注册
	admin := newMetricsBuilder(promauto.With(reg), "admin")

	server := gin.New()
	server.Use(web.Build())
	server.GET("/hello/:name", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello")
	})

	testCases := []struct {
		name string
		path string
	}{
		{name: "路由", path: "/hello/tom"},
		{name: "同一个路由模板", path: "/hello/jerry"},
		{name: "不存在的路由", path: "/nothing"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			server.ServeHTTP(httptest.NewRecorder(), req)
		})
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(web.counterVec.WithLabelValues(http.MethodGet, "/hello/:name", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(web.counterVec.WithLabelValues(http.MethodGet, "unknown", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(admin.counterVec.WithLabelValues(http.MethodGet, "/hello/:name", "200")))
}
