package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HalfToothed/gostman-site/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg, err := config.Compose(config.Gostman())
	require.NoError(t, err)

	server := httptest.NewServer(SetupRouter(cfg, zerolog.Nop()))
	t.Cleanup(server.Close)
	return server
}

func TestGetConfig(t *testing.T) {
	server := newServer(t)

	resp, err := http.Get(server.URL + "/config")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, "https://halftoothed.github.io", view["site"])
	assert.Equal(t, "/gostman", view["base"])
	assert.Equal(t, "https://halftoothed.github.io/gostman", view["public_url"])
	assert.Len(t, view["head"], 7)
}

func TestGetHead_PreservesOrder(t *testing.T) {
	server := newServer(t)

	resp, err := http.Get(server.URL + "/config/head")
	require.NoError(t, err)
	defer resp.Body.Close()

	var head []config.HeadEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&head))
	require.Len(t, head, 7)
	assert.Equal(t, "meta", head[0].Tag)
	assert.Equal(t, true, head[3].Attrs["crossorigin"])
	assert.Equal(t, "script", head[6].Tag)
	assert.Contains(t, head[6].Content, "minimalAnalytics")
}

func TestGetSocial(t *testing.T) {
	server := newServer(t)

	resp, err := http.Get(server.URL + "/config/social")
	require.NoError(t, err)
	defer resp.Body.Close()

	var social map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&social))
	assert.Equal(t, map[string]string{"github": "https://github.com/HalfToothed/gostman"}, social)
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantKind   config.Kind
	}{
		{
			name:       "valid",
			body:       "site: https://example.com\nbase: /docs/\nout_dir: dist\ntitle: Docs\n",
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid site url",
			body:       "site: ftp://example.com\nbase: /\nout_dir: dist\ntitle: Docs\n",
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   config.InvalidSiteURL,
		},
		{
			name:       "unknown key",
			body:       "site: https://example.com\nlocale: en\n",
			wantStatus: http.StatusBadRequest,
		},
	}

	server := newServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(server.URL+"/compose", "application/yaml", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantKind == "" {
				return
			}
			var body errorView
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Len(t, body.Violations, 1)
			assert.Equal(t, tt.wantKind, body.Violations[0].Kind)
		})
	}
}

func TestComposeNormalizesBasePath(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/compose", strings.NewReader("site: https://example.com\nbase: /docs/\nout_dir: dist\ntitle: Docs\n"))
	ComposeHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view ConfigView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "/docs", view.Base)
	assert.Equal(t, "https://example.com/docs", view.PublicURL)
}

func TestNotFound(t *testing.T) {
	server := newServer(t)

	resp, err := http.Get(server.URL + "/pages/index.html")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnmatchedRequestsAreJSONAndLogged(t *testing.T) {
	cfg, err := config.Compose(config.Gostman())
	require.NoError(t, err)

	var logs bytes.Buffer
	router := SetupRouter(cfg, zerolog.New(&logs).Level(zerolog.DebugLevel))

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/compose", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/config", http.StatusMethodNotAllowed},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			logs.Reset()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

			var body errorView
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)

			assert.Contains(t, logs.String(), `"path":"`+tt.path+`"`)
			assert.Contains(t, logs.String(), fmt.Sprintf(`"status":%d`, tt.wantStatus))
		})
	}
}
