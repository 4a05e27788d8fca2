package app

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clubops/clubops/internal/config"
	"github.com/clubops/clubops/internal/platform/logging"
)

func TestNew_MemoryStorageServesHealthz(t *testing.T) {
	cfg := config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "clubops-api",
		HTTPAddr:           ":0",
		StorageDriver:      config.StorageMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		AuditWorkers:       2,
	}

	a, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Errorf("close app: %v", err)
		}
	})

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("unexpected healthz status: %d", rec.Code)
	}
}

func TestNew_RejectsEmptyHTTPAddr(t *testing.T) {
	cfg := config.Config{
		AppEnv:             config.EnvDev,
		StorageDriver:      config.StorageMemory,
		CORSAllowedOrigins: []string{"*"},
	}

	if _, err := New(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}
