package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestGetRealClientIP(t *testing.T) {
	tests := []struct {
		name              string
		cloudFrontAddress string
		fallbackIP        string
		want              string
	}{
		{
			name:              "CloudFront header with port",
			cloudFrontAddress: "203.0.113.50:12345",
			want:              "203.0.113.50",
		},
		{
			name:              "CloudFront header IPv6 with port",
			cloudFrontAddress: "2001:db8::1:54321",
			want:              "2001:db8::1",
		},
		{
			name:       "No CloudFront header uses fallback",
			fallbackIP: "192.168.1.1",
			want:       "192.168.1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cloudFrontAddress != "" {
				c.Request.Header.Set("CloudFront-Viewer-Address", tt.cloudFrontAddress)
			}
			if tt.fallbackIP != "" {
				c.Request.RemoteAddr = tt.fallbackIP + ":8080"
			}

			got := GetRealClientIP(c)
			if got != tt.want {
				t.Errorf("GetRealClientIP() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithFields_DoesNotShareBackingArray(t *testing.T) {
	base := WithFields(context.Background(), Field{"a", 1})
	left := WithFields(base, Field{"b", 2})
	right := WithFields(base, Field{"c", 3})

	if got := getObservabilityFields(left); got[1].Key != "b" {
		t.Errorf("left fields = %v", got)
	}
	if got := getObservabilityFields(right); got[1].Key != "c" {
		t.Errorf("right fields = %v", got)
	}
}

func TestMiddleware_SetsRequestIDAndRecovers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(NewNopLogger()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("X-Request-ID"), "req-") {
		t.Errorf("missing generated request id, got %q", w.Header().Get("X-Request-ID"))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("panic status = %d, want 500", w.Code)
	}
}

func TestRecordSessionTransition(t *testing.T) {
	before := testutil.ToFloat64(sessionTransitions.WithLabelValues("connecting", "ongoing"))
	RecordSessionTransition("connecting", "ongoing")
	after := testutil.ToFloat64(sessionTransitions.WithLabelValues("connecting", "ongoing"))
	if after-before != 1 {
		t.Errorf("transition counter delta = %v, want 1", after-before)
	}
}
