package mux

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"holdemtable-server/pkg/room"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

type wsResponse struct {
	Key     string          `json:"key"`
	Value   string          `json:"value"`
	Context string          `json:"context"`
	Data    json.RawMessage `json:"data"`
}

func dialTable(t *testing.T, url, viewer string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(url, "http") + "/ws?viewer=" + viewer
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// readUntil reads messages until one with the key arrives
func readUntil(t *testing.T, conn *websocket.Conn, key string) wsResponse {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 5))
	for {
		var resp wsResponse
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatalf("waiting for %s: %v", key, err)
		}

		if resp.Key == key {
			return resp
		}
	}
}

func TestTableWS(t *testing.T) {
	a := assert.New(t)
	ts, _ := newTestServer(t)

	assertPost(t, ts, "/table", map[string]interface{}{"id": "main", "players": []string{"alice", "bob", "carol"}}, nil, http.StatusCreated)
	assertPost(t, ts, "/table/main/round", nil, nil, http.StatusCreated)

	alice := dialTable(t, ts.URL+"/table/main", "alice")
	spectator := dialTable(t, ts.URL+"/table/main", "")

	var state testState
	resp := readUntil(t, alice, "tableState")
	a.NoError(json.Unmarshal(resp.Data, &state))
	a.Equal(0, state.CurrentPlayer)
	a.Len(state.Seats[0].Cards, 2)
	a.Nil(state.Seats[1].Cards)

	resp = readUntil(t, spectator, "tableState")
	state = testState{}
	a.NoError(json.Unmarshal(resp.Data, &state))
	a.Nil(state.Seats[0].Cards)

	a.NoError(alice.WriteJSON(room.PayloadIn{Action: "check", Context: "c1"}))
	resp = readUntil(t, alice, "error")
	a.Equal("c1", resp.Context)
	a.Equal("cannot check, you must call or raise", resp.Value)

	a.NoError(alice.WriteJSON(room.PayloadIn{Action: "call", Context: "c2"}))
	resp = readUntil(t, alice, "ok")
	a.Equal("c2", resp.Context)

	resp = readUntil(t, spectator, "tableState")
	state = testState{}
	a.NoError(json.Unmarshal(resp.Data, &state))
	a.Equal(1, state.CurrentPlayer)
	a.Equal(50, state.Pot)

	a.NoError(spectator.WriteJSON(room.PayloadIn{Action: "fold", Context: "c3"}))
	resp = readUntil(t, spectator, "error")
	a.Equal("spectators cannot act", resp.Value)

	assertDelete(t, ts, "/table/main", nil, http.StatusNoContent)

	_ = alice.SetReadDeadline(time.Now().Add(time.Second * 5))
	for {
		var msg wsResponse
		err := alice.ReadJSON(&msg)
		if err == nil {
			continue
		}

		var closeErr *websocket.CloseError
		if a.ErrorAs(err, &closeErr) {
			a.Equal(websocket.CloseNormalClosure, closeErr.Code)
			a.Equal("table closed", closeErr.Text)
		}
		break
	}
}

func TestTableWS_NotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/table/nope/ws"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.Error(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}
}
