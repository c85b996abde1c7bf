package tools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/coolify-mcp/internal/common"
	"github.com/bobmcallan/coolify-mcp/internal/config"
	"github.com/bobmcallan/coolify-mcp/internal/coolify"
)

type sentRequest struct {
	Path   string
	Method string
	Body   any
}

// fakeSender records requests and replies with a fixed result.
type fakeSender struct {
	mu     sync.Mutex
	calls  []sentRequest
	result coolify.Result
}

func (f *fakeSender) Send(_ context.Context, path, method string, body any) coolify.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, sentRequest{Path: path, Method: method, Body: body})
	return f.result
}

func (f *fakeSender) Calls() []sentRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentRequest, len(f.calls))
	copy(out, f.calls)
	return out
}

func okResult(data string) coolify.Result {
	raw := json.RawMessage(data)
	status := http.StatusOK
	return coolify.Result{Success: true, Data: &raw, Status: &status}
}

func newTestDispatcher(t *testing.T, sender Sender) *Dispatcher {
	t.Helper()
	reg, err := NewDefaultRegistry()
	require.NoError(t, err)
	return NewDispatcher(reg, sender, common.NewSilentLogger())
}

func TestInvoke_GetProject(t *testing.T) {
	sender := &fakeSender{result: okResult(`{"uuid":"abc","name":"demo"}`)}
	d := newTestDispatcher(t, sender)

	out, err := d.Invoke(context.Background(), "coolify_get_project", map[string]any{"uuid": "abc"})
	require.NoError(t, err)

	calls := sender.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/projects/abc", calls[0].Path)
	assert.Equal(t, http.MethodGet, calls[0].Method)
	assert.Nil(t, calls[0].Body)

	assert.JSONEq(t, `{"success":true,"data":{"uuid":"abc","name":"demo"},"status":200}`, out)
}

func TestInvoke_PayloadIsIndented(t *testing.T) {
	sender := &fakeSender{result: okResult(`{"version":"4.0.0"}`)}
	d := newTestDispatcher(t, sender)

	out, err := d.Invoke(context.Background(), "coolify_get_version", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"success\": true")
}

func TestInvoke_UnknownTool(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(t, sender)

	out, err := d.Invoke(context.Background(), "coolify_nonexistent", map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, sender.Calls())
	assert.JSONEq(t, `{"error":"Unknown tool: coolify_nonexistent"}`, out)
}

func TestInvoke_Deploy(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"by uuid", map[string]any{"uuid": "x"}, "/deploy?uuid=x"},
		{"no args", map[string]any{}, "/deploy"},
		{"nil args", nil, "/deploy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{result: okResult(`{}`)}
			d := newTestDispatcher(t, sender)

			_, err := d.Invoke(context.Background(), "coolify_deploy", tt.args)
			require.NoError(t, err)
			calls := sender.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.want, calls[0].Path)
			assert.Equal(t, http.MethodGet, calls[0].Method)
		})
	}
}

func TestInvoke_DeleteApplicationFlags(t *testing.T) {
	sender := &fakeSender{result: okResult(`{"message":"Deletion request queued."}`)}
	d := newTestDispatcher(t, sender)

	_, err := d.Invoke(context.Background(), "coolify_delete_application", map[string]any{"uuid": "x", "delete_volumes": true})
	require.NoError(t, err)

	calls := sender.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/applications/x?delete_volumes=true", calls[0].Path)
	assert.Equal(t, http.MethodDelete, calls[0].Method)
	assert.Nil(t, calls[0].Body)
}

func TestInvoke_UpdateApplicationEnvRenamesUUID(t *testing.T) {
	sender := &fakeSender{result: okResult(`{"uuid":"b"}`)}
	d := newTestDispatcher(t, sender)

	_, err := d.Invoke(context.Background(), "coolify_update_application_env", map[string]any{
		"uuid":     "a",
		"env_uuid": "b",
		"value":    "v",
	})
	require.NoError(t, err)

	calls := sender.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/applications/a/envs", calls[0].Path)
	assert.Equal(t, http.MethodPatch, calls[0].Method)

	raw, err := json.Marshal(calls[0].Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"uuid":"b","value":"v"}`, string(raw))
}

func TestInvoke_PassthroughWithoutFieldsSendsEmptyObject(t *testing.T) {
	sender := &fakeSender{result: okResult(`{"uuid":"p"}`)}
	d := newTestDispatcher(t, sender)

	_, err := d.Invoke(context.Background(), "coolify_update_project", map[string]any{"uuid": "p"})
	require.NoError(t, err)

	calls := sender.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPatch, calls[0].Method)
	assert.Equal(t, "/projects/p", calls[0].Path)
	assert.Equal(t, map[string]any{}, calls[0].Body)
}

func TestInvoke_MissingPathParam(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(t, sender)

	out, err := d.Invoke(context.Background(), "coolify_get_project", map[string]any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArguments))
	assert.Contains(t, err.Error(), "coolify_get_project")
	assert.Empty(t, out)
	assert.Empty(t, sender.Calls())
}

func TestInvoke_BackendFailureIsPayload(t *testing.T) {
	status := http.StatusNotFound
	sender := &fakeSender{result: coolify.Result{Success: false, Error: "Project not found.", Status: &status}}
	d := newTestDispatcher(t, sender)

	out, err := d.Invoke(context.Background(), "coolify_get_project", map[string]any{"uuid": "missing"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"Project not found.","status":404}`, out)
}

func TestInvoke_TransportFailureIsPayload(t *testing.T) {
	sender := &fakeSender{result: coolify.Result{Success: false, Error: "connection refused"}}
	d := newTestDispatcher(t, sender)

	out, err := d.Invoke(context.Background(), "coolify_list_servers", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"connection refused"}`, out)
}

func TestListTools_Idempotent(t *testing.T) {
	d := newTestDispatcher(t, &fakeSender{})

	first, err := json.Marshal(d.ListTools())
	require.NoError(t, err)
	second, err := json.Marshal(d.ListTools())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
	assert.Len(t, d.ListTools(), len(DefaultRoutes()))
}

func TestInvoke_Concurrent(t *testing.T) {
	sender := &fakeSender{result: okResult(`[]`)}
	d := newTestDispatcher(t, sender)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Invoke(context.Background(), "coolify_list_applications", map[string]any{"tag": "web"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	calls := sender.Calls()
	require.Len(t, calls, 20)
	for _, c := range calls {
		assert.Equal(t, "/applications?tag=web", c.Path)
	}
}

// End to end through the real transport against a stub backend.
func TestInvoke_ThroughClient(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"uuid":"s1"}]`))
	}))
	defer srv.Close()

	client := coolify.NewClient(config.CoolifyConfig{BaseURL: srv.URL, Token: "tok"}, common.NewSilentLogger())
	d := newTestDispatcher(t, client)

	out, err := d.Invoke(context.Background(), "coolify_list_servers", nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/servers", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.JSONEq(t, `{"success":true,"data":[{"uuid":"s1"}],"status":200}`, out)
}
