package hud

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/status"
)

// countingSource returns snapshots with an increasing frame number
type countingSource struct {
	frame atomic.Int64
}

func (c *countingSource) Snapshot() engine.Snapshot {
	return engine.Snapshot{Frame: c.frame.Add(1), State: "playing", Health: 5, MaxHealth: 5}
}

func dial(t *testing.T, ctx context.Context, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(url, "http")+Path, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

func TestFeedMatchesContextSnapshot(t *testing.T) {
	game := engine.NewGameContext(engine.ConfigResource{Width: 800, Height: 960, Scale: 1.5}, engine.WithSeed(5))
	srv := httptest.NewServer(NewServer(game, 10*time.Millisecond).Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn := dial(t, ctx, srv.URL)

	var got engine.Snapshot
	if err := wsjson.Read(ctx, conn, &got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if want := game.Snapshot(); got != want {
		t.Errorf("feed %+v, context %+v", got, want)
	}
}

func TestFeedStreamsAtInterval(t *testing.T) {
	src := &countingSource{}
	feed := NewServer(src, 5*time.Millisecond)
	srv := httptest.NewServer(feed.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn := dial(t, ctx, srv.URL)

	var last int64
	for i := 0; i < 3; i++ {
		var snap engine.Snapshot
		if err := wsjson.Read(ctx, conn, &snap); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if snap.Frame <= last {
			t.Errorf("frame %d after %d", snap.Frame, last)
		}
		if snap.State != "playing" || snap.Health != 5 {
			t.Errorf("snapshot %+v", snap)
		}
		last = snap.Frame
	}
	if feed.Clients() != 1 {
		t.Errorf("clients %d", feed.Clients())
	}
	if feed.Sent() < 3 {
		t.Errorf("sent %d", feed.Sent())
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewServer(&countingSource{}, time.Second).Serve(ctx, ln) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestListenRejectsBadAddress(t *testing.T) {
	if err := NewServer(&countingSource{}, time.Second).ListenAndServe(context.Background(), "256.0.0.1:bad"); err == nil {
		t.Error("expected a listen error")
	}
}

func TestStatsEndpoint(t *testing.T) {
	game := engine.NewGameContext(engine.ConfigResource{Width: 800, Height: 960, Scale: 1.5}, engine.WithSeed(5))
	game.World.Resources.Status.Ints.Get("enemy.killed").Store(3)

	srv := httptest.NewServer(NewServer(game, time.Second).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + StatsPath)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var got status.Stats
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Ints["enemy.killed"] != 3 {
		t.Errorf("enemy.killed: got %d", got.Ints["enemy.killed"])
	}
	if _, ok := got.Ints["engine.ticks"]; !ok {
		t.Errorf("engine counters missing: %v", got.Ints)
	}
}

func TestStatsRequiresStatsSource(t *testing.T) {
	srv := httptest.NewServer(NewServer(&countingSource{}, time.Second).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + StatsPath)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
