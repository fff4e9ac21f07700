package diag

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/ranger"
)

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestHealthz(t *testing.T) {
	h := NewHandler(prometheus.NewRegistry(), &TreeSnapshot{})
	code, body := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok\n", body)
}

func TestMetricsReflectStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObserveStats(ranger.Stats{FPS: 60, UPS: 30, AvgRender: 2 * time.Millisecond})

	code, body := get(t, NewHandler(reg, &TreeSnapshot{}), "/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "ranger_fps 60")
	assert.Contains(t, body, "ranger_ups 30")
	assert.Contains(t, body, `ranger_frame_phase_seconds{phase="render"} 0.002`)
	assert.Contains(t, body, "ranger_stats_snapshots_total 1")
}

func TestTreeObserverDumpsRunningScene(t *testing.T) {
	ids := &ranger.IDGenerator{}
	scene := ranger.NewScene(ids, "game")
	ranger.NewLeaf(ids, "ship", scene)

	sm := ranger.NewSceneManager(ranger.NewRenderContext(nil, nil), nil)
	snap := &TreeSnapshot{}
	obs := TreeObserver(sm, snap)

	obs.ObserveStats(ranger.Stats{})
	assert.Empty(t, snap.String(), "nothing running yet")

	sm.PushScene(scene)
	sm.Visit(0)
	obs.ObserveStats(ranger.Stats{})

	code, body := get(t, NewHandler(prometheus.NewRegistry(), snap), "/tree")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Scene 'game' (1)")
	assert.Contains(t, body, "  Leaf 'ship' (2)")
}

func TestServerStartAndShutdown(t *testing.T) {
	s, err := Start("127.0.0.1:0", NewHandler(prometheus.NewRegistry(), &TreeSnapshot{}))
	require.NoError(t, err)

	resp, err := http.Get("http://" + s.Addr() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Shutdown(ctx))
}
