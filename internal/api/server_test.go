package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storage-manager/internal/models"

	gorillaws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestAPI_Summary(t *testing.T) {
	user := createTestUser(t, 1000)
	createFolderAPI(t, user, "F", nil)
	rr := uploadFiles(t, user, "", uploadPart{"a.pdf", "application/pdf", make([]byte, 250)})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, "GET", "/api/v1/summary?days=3&recent=2", user.token, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	summary := decodeBody[models.Summary](t, rr)
	require.Equal(t, int64(1), summary.Counts.Folders)
	require.Equal(t, int64(1), summary.Counts.Files)
	require.Equal(t, 25.0, summary.Storage.UsagePercent)
	require.Len(t, summary.Activity, 3)
	require.Len(t, summary.Breakdown, 1)
	require.Equal(t, 100.0, summary.Breakdown[0].Percentage)

	rr = doRequest(t, "GET", "/api/v1/summary?days=abc", user.token, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, "GET", "/api/v1/summary?days=400", user.token, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_Events(t *testing.T) {
	user := createTestUser(t, 1<<20)
	folder := createFolderAPI(t, user, "Watched", nil)

	rr := doRequest(t, "GET", "/api/v1/events?since=0", user.token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	events := decodeBody[[]EventResponse](t, rr)
	require.Len(t, events, 1)
	require.Equal(t, "folder_created", events[0].EventType)
	require.Contains(t, string(events[0].Payload), folder.ID)

	rr = doRequest(t, "GET", "/api/v1/events?since="+strings.Repeat("9", 3), user.token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, "GET", "/api/v1/events?since=abc", user.token, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_WebsocketReceivesEvents(t *testing.T) {
	user := createTestUser(t, 1<<20)
	srv := httptest.NewServer(testHandler)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + user.token
	conn, _, err := gorillaws.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return testServer.wsHub.ClientCount(user.ID) == 1
	}, 5*time.Second, 20*time.Millisecond)

	createFolderAPI(t, user, "Live", nil)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(msg), `"event_type":"folder_created"`)
	require.Contains(t, string(msg), `"name":"Live"`)

	_, resp, err := gorillaws.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws?token=bad", nil)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	rr := doRequest(t, "GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ok", decodeBody[HealthResponse](t, rr).Status)

	rr = doRequest(t, "GET", "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `http_requests_total{method="GET",route="/health",status="200"}`)
}

func TestAPI_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest("OPTIONS", "/api/v1/folders", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	testHandler.ServeHTTP(rr, req)

	require.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
