package tempo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testInput() WorklogInput {
	day := time.Date(2025, 7, 14, 0, 0, 0, 0, time.Local)
	return NewWorklogInput(day, "daily work", "8h", "PROJ", "PROJ-123")
}

func TestCreateWorklogSuccess(t *testing.T) {
	var captured graphqlRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"result":{"id":"10042","__typename":"Worklog"}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("secret-token"), zap.NewNop())

	worklog, err := client.CreateWorklog(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, "10042", worklog.ID)
	assert.Equal(t, "Worklog", worklog.TypeTag)
	assert.Equal(t, "Bearer secret-token", authHeader)
	assert.Equal(t, "CreateWorklog", captured.OperationName)

	input, ok := captured.Variables["input"].(map[string]interface{})
	require.True(t, ok, "variables must carry an input object")
	assert.Equal(t, "daily work", input["comment"])
	assert.Equal(t, "8h", input["timeSpentString"])
	assert.Equal(t, "PROJ", input["project"])
	assert.Equal(t, "PROJ-123", input["ticket"])
}

func TestCreateWorklogNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("secret-token"), zap.NewNop())

	worklog, err := client.CreateWorklog(context.Background(), testInput())
	require.Error(t, err)
	assert.Nil(t, worklog)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusForbidden, transportErr.Status)
}

func TestCreateWorklogRemoteErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors":[{"message":"ticket not found"},{"message":"access denied"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("secret-token"), zap.NewNop())

	worklog, err := client.CreateWorklog(context.Background(), testInput())
	require.Error(t, err)
	assert.Nil(t, worklog)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	require.Len(t, remoteErr.Errors, 2)
	assert.Equal(t, "ticket not found", remoteErr.Errors[0].Message)
	assert.Contains(t, remoteErr.Error(), "access denied")
}

func TestCreateWorklogNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, StaticToken("secret-token"), zap.NewNop())

	_, err := client.CreateWorklog(context.Background(), testInput())
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Zero(t, transportErr.Status)
}

func TestCreateWorklogMalformedSuccessPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("secret-token"), zap.NewNop())

	_, err := client.CreateWorklog(context.Background(), testInput())

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
}

func TestCreateWorklogEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request must be issued without a token")
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""), zap.NewNop())

	_, err := client.CreateWorklog(context.Background(), testInput())
	require.Error(t, err)
}

func TestNewWorklogInputStarted(t *testing.T) {
	day := time.Date(2025, 7, 14, 0, 0, 0, 0, time.Local)

	input := NewWorklogInput(day, "c", "8h", "P", "P-1")

	// Started must be 09:00:00.000 local time on the target date, not UTC
	// midnight and not the submission time.
	parsed, err := time.ParseInLocation("2006-01-02T15:04:05.000-0700", input.Started, time.Local)
	require.NoError(t, err)

	local := parsed.In(time.Local)
	assert.Equal(t, 2025, local.Year())
	assert.Equal(t, time.July, local.Month())
	assert.Equal(t, 14, local.Day())
	assert.Equal(t, 9, local.Hour())
	assert.Zero(t, local.Minute())
	assert.Zero(t, local.Second())
	assert.Zero(t, local.Nanosecond())
}
