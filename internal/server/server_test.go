package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-referee/internal/game"
	"github.com/lox/holdem-referee/internal/gameapi"
)

func startTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	s := NewServer(DefaultConfig(), log.New(io.Discard), quartz.NewReal())
	go s.run()
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		ts.Close()
		s.Stop()
	})
	return s, ts
}

func dialTestServer(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/verify"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	_, ts := startTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestVerifyMoveOverWebSocket(t *testing.T) {
	t.Parallel()

	_, ts := startTestServer(t)
	conn := dialTestServer(t, ts)

	req := gameapi.VerifyMove{
		PlayerIDs:        []int{42, 99},
		LastMove:         game.BuyInMove(99, 2000),
		LastMovePlayerID: 99,
		TokensInPot:      map[int]int{99: 2000},
	}
	msg, err := NewMessage(MessageTypeVerifyMove, req)
	require.NoError(t, err)
	msg.RequestID = "req-1"
	require.NoError(t, conn.WriteJSON(msg))

	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, MessageTypeVerifyMoveDone, reply.Type)
	assert.Equal(t, "req-1", reply.RequestID)

	var verdict gameapi.VerifyMoveDone
	require.NoError(t, json.Unmarshal(reply.Data, &verdict))
	assert.True(t, verdict.Ok())
}

func TestVerifyMoveRejectionOverWebSocket(t *testing.T) {
	t.Parallel()

	_, ts := startTestServer(t)
	conn := dialTestServer(t, ts)

	// The claimed credit does not match the debit
	req := gameapi.VerifyMove{
		PlayerIDs: []int{42, 99},
		LastMove: []gameapi.Operation{gameapi.AttemptChangeTokens{
			Debits:  map[int]int{99: -2000},
			Credits: map[int]int{99: 5000},
		}},
		LastMovePlayerID: 99,
		TokensInPot:      map[int]int{99: 2000},
	}
	msg, err := NewMessage(MessageTypeVerifyMove, req)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(msg))

	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, MessageTypeVerifyMoveDone, reply.Type)

	var verdict gameapi.VerifyMoveDone
	require.NoError(t, json.Unmarshal(reply.Data, &verdict))
	assert.Equal(t, 99, verdict.HackerPlayerID)
	assert.NotEmpty(t, verdict.Message)
}

func TestUnknownMessageType(t *testing.T) {
	t.Parallel()

	_, ts := startTestServer(t)
	conn := dialTestServer(t, ts)

	msg, err := NewMessage(MessageType("bogus"), map[string]any{})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(msg))

	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, MessageTypeError, reply.Type)

	var errData ErrorData
	require.NoError(t, json.Unmarshal(reply.Data, &errData))
	assert.Equal(t, "unknown_type", errData.Code)
}

func TestMalformedVerifyMove(t *testing.T) {
	t.Parallel()

	_, ts := startTestServer(t)
	conn := dialTestServer(t, ts)

	msg := &Message{
		Type: MessageTypeVerifyMove,
		Data: json.RawMessage(`{"lastMove": [{"type": "teleport"}]}`),
	}
	require.NoError(t, conn.WriteJSON(msg))

	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, MessageTypeError, reply.Type)
}
