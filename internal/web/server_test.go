package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"WhyInvesting/internal/cycle"
	"WhyInvesting/internal/fund"
	"WhyInvesting/internal/model"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*httptest.Server, *cycle.Driver) {
	t.Helper()
	engine, err := fund.NewEngine(fund.Default(), zap.NewNop())
	require.NoError(t, err)

	opts := cycle.DefaultOptions()
	driver := cycle.NewDriver(opts, nil, nil, zap.NewNop())

	srv, err := NewServer("127.0.0.1:0", engine, driver, SpeedRange{
		Min: opts.MinSpeed, Max: opts.MaxSpeed, Step: opts.SpeedStep,
	}, zap.NewNop())
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, driver
}

func TestIndexPage(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)

	assert.Contains(t, page, "<title>Why Investing Works</title>")
	assert.Contains(t, page, model.DefaultPageMeta.Description)
	assert.Contains(t, page, `min="0.65"`)
	assert.Contains(t, page, `max="2.50"`)
	assert.Contains(t, page, `step="0.05"`)
	assert.Contains(t, page, "1.10x")
	assert.Contains(t, page, "Solar Microgrids")
	assert.Contains(t, page, "Funded")
	assert.Contains(t, page, "Capital is pooled")
	assert.Contains(t, page, `data-key="collect-0-11-1"`)
	assert.Contains(t, page, "linear-gradient(135deg")
}

func TestUnknownPath(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSummaryEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/summary")
	require.NoError(t, err)
	defer resp.Body.Close()

	var s model.FlowSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	assert.Equal(t, 21.0, s.ETFInboundTotal)
	assert.Equal(t, 21.0, s.ETFOutboundTotal)
	assert.Len(t, s.Distribution, 4)
	require.Len(t, s.Projects, 3)
	assert.Equal(t, 12.0, s.Projects[0].Total)
}

func TestSpeedEndpoint(t *testing.T) {
	ts, driver := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/speed", "application/json", strings.NewReader(`{"speed": 9}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap model.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, 2.5, snap.Speed)
	assert.Equal(t, 2.5, driver.Speed())

	stateResp, err := http.Get(ts.URL + "/api/state")
	require.NoError(t, err)
	defer stateResp.Body.Close()
	require.NoError(t, json.NewDecoder(stateResp.Body).Decode(&snap))
	assert.Equal(t, 2.5, snap.Speed)
	assert.Equal(t, int64(2480), snap.DwellMS)
}

func TestSpeedChange_KeepsParticleKeysWithNewTimings(t *testing.T) {
	ts, driver := newTestServer(t)
	before := driver.Snapshot()

	resp, err := http.Post(ts.URL+"/api/speed", "application/json", strings.NewReader(`{"speed": 0.65}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var after model.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&after))
	require.Len(t, after.Particles, len(before.Particles))
	for i := range after.Particles {
		assert.Equal(t, before.Particles[i].Key, after.Particles[i].Key)
		assert.InDelta(t, 4000, after.Particles[i].DurationMS, 1e-9)
		assert.NotEqual(t, before.Particles[i].DurationMS, after.Particles[i].DurationMS)
	}

	// The page diffs particles by key, so kept elements must be restyled too.
	page, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer page.Body.Close()
	body, err := io.ReadAll(page.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "applyParticle(el, p);\n      delete fresh[el.dataset.key];")
	assert.Contains(t, string(body), `el.style.setProperty("--duration", p.duration_ms + "ms");`)
}

func TestSpeedEndpoint_BadBody(t *testing.T) {
	ts, driver := newTestServer(t)

	for _, body := range []string{"not json", `{"pace": 2}`} {
		resp, err := http.Post(ts.URL+"/api/speed", "application/json", bytes.NewBufferString(body))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
	assert.Equal(t, 1.1, driver.Speed())
}

func TestStream_PushesSnapshotsAndAcceptsSpeed(t *testing.T) {
	ts, driver := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var snap model.Snapshot
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, model.PhaseCollect, snap.Phase)
	assert.Equal(t, 1.1, snap.Speed)

	require.NoError(t, conn.WriteJSON(map[string]float64{"speed": 2}))
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, 2.0, snap.Speed)
	assert.Equal(t, 2.0, driver.Speed())
	assert.Equal(t, int64(3100), snap.DwellMS)
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
