package brackets

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"
)

func waitForClients(t *testing.T, h *Hub, room string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientsInRoom(room) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("room %s: expected %d clients, got %d", room, want, h.ClientsInRoom(room))
}

func TestHubPublishReachesRoomOnly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go h.Run(ctx)

	inRoom := &Client{Hub: h, Send: make(chan []byte, 4), Room: RoomForTournament(1)}
	otherRoom := &Client{Hub: h, Send: make(chan []byte, 4), Room: RoomForTournament(2)}
	h.Register <- inRoom
	h.Register <- otherRoom
	waitForClients(t, h, inRoom.Room, 1)
	waitForClients(t, h, otherRoom.Room, 1)

	h.Publish(ctx, 1, EventMatchUpdated, map[string]int{"_id": 42})

	select {
	case raw := <-inRoom.Send:
		var msg struct {
			Type    string         `json:"type"`
			Payload map[string]int `json:"payload"`
			RoomID  string         `json:"room_id"`
		}
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatal(err)
		}
		if msg.Type != EventMatchUpdated || msg.Payload["_id"] != 42 || msg.RoomID != "tournament_1" {
			t.Fatalf("unexpected message %s", raw)
		}
	case <-time.After(time.Second):
		t.Fatal("client in room did not receive the event")
	}

	if len(otherRoom.Send) != 0 {
		t.Fatal("client of another tournament received the event")
	}

	h.Unregister <- inRoom
	waitForClients(t, h, inRoom.Room, 0)
	if _, ok := <-inRoom.Send; ok {
		t.Fatal("send channel should be closed after unregister")
	}
}

func TestHubClosesClientsOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()

	c := &Client{Hub: h, Send: make(chan []byte, 1), Room: RoomForTournament(3)}
	h.Register <- c
	waitForClients(t, h, c.Room, 1)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	if _, ok := <-c.Send; ok {
		t.Fatal("send channel should be closed on shutdown")
	}
	if h.ClientsInRoom(c.Room) != 0 {
		t.Fatal("rooms should be empty after shutdown")
	}
}

func TestHubPublishWithoutClients(t *testing.T) {
	h := NewHub(nil)
	h.Publish(context.Background(), 99, EventBracketUpdated, nil)
}

func TestHubJoinAfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	c := &Client{Hub: h, Send: make(chan []byte, 1), Room: RoomForTournament(4)}
	if h.Join(c) {
		t.Fatal("Join should fail once the hub has stopped")
	}
}
