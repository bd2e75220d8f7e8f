package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/events"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/logger"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/saga"
)

func testWSLogger() logger.Logger {
	return logger.New(&logger.Config{
		Level:  logger.ErrorLevel,
		Format: "json",
		Output: "stdout",
	})
}

func wsURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func TestWebSocketHandler_RejectsNonUpgrade(t *testing.T) {
	handler := NewWebSocketHandler(testWSLogger(), events.NewBroadcaster(), WebSocketConfig{})

	req := httptest.NewRequest(http.MethodGet, "/ws/sagas", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestWebSocketHandler_StreamsSagaEvents(t *testing.T) {
	broadcaster := events.NewBroadcaster()
	handler := NewWebSocketHandler(testWSLogger(), broadcaster, WebSocketConfig{
		MaxConnections: 5,
	})

	server := httptest.NewServer(handler)
	defer server.Close()
	defer handler.Close()
	defer broadcaster.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server.URL), nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	defer conn.Close()

	waitForSubscribers(t, broadcaster, handler)

	broadcaster.SagaEvent(saga.Event{
		Type:     saga.EventSagaStarted,
		Workflow: saga.WorkflowCreateOrder,
		SagaID:   "saga-1",
	})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got saga.Event
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("failed to read streamed event: %v", err)
	}
	if got.Type != saga.EventSagaStarted {
		t.Fatalf("type = %q, want %q", got.Type, saga.EventSagaStarted)
	}
	if got.Workflow != saga.WorkflowCreateOrder {
		t.Fatalf("workflow = %q, want %q", got.Workflow, saga.WorkflowCreateOrder)
	}
}

func TestWebSocketHandler_WorkflowFilter(t *testing.T) {
	broadcaster := events.NewBroadcaster()
	handler := NewWebSocketHandler(testWSLogger(), broadcaster, WebSocketConfig{
		MaxConnections: 5,
	})

	server := httptest.NewServer(handler)
	defer server.Close()
	defer handler.Close()
	defer broadcaster.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server.URL), nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	defer conn.Close()

	waitForSubscribers(t, broadcaster, handler)

	if err := conn.WriteJSON(map[string]any{
		"type":     "subscribe",
		"workflow": saga.WorkflowBuyNow,
	}); err != nil {
		t.Fatalf("failed to subscribe: %v", err)
	}

	// The filter is applied by the write pump; give the read pump a
	// moment to install it before emitting.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if clientCount(handler) == 1 && hasFilter(handler, saga.WorkflowBuyNow) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	broadcaster.SagaEvent(saga.Event{Type: saga.EventSagaStarted, Workflow: saga.WorkflowCreateOrder, SagaID: "saga-1"})
	broadcaster.SagaEvent(saga.Event{Type: saga.EventSagaStarted, Workflow: saga.WorkflowBuyNow, SagaID: "saga-2"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got saga.Event
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("failed to read streamed event: %v", err)
	}
	if got.Workflow != saga.WorkflowBuyNow {
		t.Fatalf("workflow = %q, want %q", got.Workflow, saga.WorkflowBuyNow)
	}
	if got.SagaID != "saga-2" {
		t.Fatalf("saga_id = %q, want saga-2", got.SagaID)
	}
}

func TestWebSocketHandler_ConnectionLimit(t *testing.T) {
	handler := NewWebSocketHandler(testWSLogger(), events.NewBroadcaster(), WebSocketConfig{
		MaxConnections: 1,
	})

	server := httptest.NewServer(handler)
	defer server.Close()
	defer handler.Close()

	first, _, err := websocket.DefaultDialer.Dial(wsURL(server.URL), nil)
	if err != nil {
		t.Fatalf("failed to open first websocket: %v", err)
	}
	defer first.Close()

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(server.URL), nil)
	if err == nil {
		t.Fatal("expected second websocket dial to fail")
	}
	var handshakeErr websocket.HandshakeError
	if !errors.As(err, &handshakeErr) {
		t.Logf("dial returned non-handshake error type: %T", err)
	}
	if resp == nil {
		t.Fatal("expected HTTP response for failed upgrade")
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestWebSocketHandler_OriginCheck(t *testing.T) {
	handler := NewWebSocketHandler(testWSLogger(), events.NewBroadcaster(), WebSocketConfig{
		AllowedOrigins: []string{"http://allowed.example"},
	})
	server := httptest.NewServer(handler)
	defer server.Close()
	defer handler.Close()

	dialer := websocket.Dialer{}
	headers := http.Header{}
	headers.Set("Origin", "http://blocked.example")

	_, resp, err := dialer.Dial(wsURL(server.URL), headers)
	if err == nil {
		t.Fatal("expected websocket dial with blocked origin to fail")
	}
	if resp == nil {
		t.Fatal("expected HTTP response for blocked origin")
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}

func TestConnectionManager_Limit(t *testing.T) {
	manager := NewConnectionManager(1)
	clientA := newWSClient(nil)
	clientB := newWSClient(nil)

	if err := manager.Register(clientA); err != nil {
		t.Fatalf("register clientA failed: %v", err)
	}
	if manager.CanAccept() {
		t.Fatal("expected manager at capacity")
	}
	if err := manager.Register(clientB); err == nil {
		t.Fatal("expected register over capacity to fail")
	}

	manager.Unregister(clientA)
	if manager.Count() != 0 {
		t.Fatalf("count after unregister = %d, want 0", manager.Count())
	}
}

func TestWSClientFilters(t *testing.T) {
	client := newWSClient(nil)

	if !client.wants(saga.WorkflowCreateAccount) {
		t.Fatal("expected empty filter set to receive everything")
	}

	client.subscribe(saga.WorkflowCreateOrder)
	if client.wants(saga.WorkflowCreateAccount) {
		t.Fatal("did not expect unrelated workflow after subscribing")
	}
	if !client.wants(saga.WorkflowCreateOrder) {
		t.Fatal("expected subscribed workflow to pass the filter")
	}

	client.unsubscribe(saga.WorkflowCreateOrder)
	if !client.wants(saga.WorkflowCreateAccount) {
		t.Fatal("expected empty filter set again after unsubscribe")
	}
}

// waitForSubscribers blocks until the dialed connection is subscribed
// to the broadcaster, so an emitted event cannot race the subscription.
func waitForSubscribers(t *testing.T, broadcaster *events.Broadcaster, handler *WebSocketHandler) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if broadcaster.SubscriberCount() > 0 && clientCount(handler) > 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timeout waiting for websocket subscription")
}

func clientCount(handler *WebSocketHandler) int {
	return handler.manager.Count()
}

func hasFilter(handler *WebSocketHandler, workflow string) bool {
	handler.manager.mu.RLock()
	defer handler.manager.mu.RUnlock()
	for client := range handler.manager.clients {
		if !client.wants(workflow) {
			continue
		}
		client.mu.RLock()
		_, ok := client.filters[workflow]
		client.mu.RUnlock()
		if ok {
			return true
		}
	}
	return false
}
