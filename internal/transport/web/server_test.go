package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sandevgo/termfolio/internal/config"
	"github.com/sandevgo/termfolio/internal/core"
	"github.com/sandevgo/termfolio/internal/service/command"
	"github.com/sandevgo/termfolio/internal/service/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProfile = &config.ProfileConfig{
	Name:      "Jubayer Hossen",
	Nickname:  "Jubayer",
	Tagline:   "A passionate developer.",
	Email:     "your.email@example.com",
	GitHubURL: "https://github.com/Jubayer-Hossen",
}

func newTestRouter(t *testing.T, registry core.CmdRegistry) *mux.Router {
	t.Helper()
	router, _ := newTestServer(t, registry)
	return router
}

func newTestServer(t *testing.T, registry core.CmdRegistry) (*mux.Router, *terminal.Store) {
	t.Helper()
	ctx := context.Background()

	store := terminal.NewStore(func() *terminal.Session {
		return terminal.NewSession(registry, terminal.NewScreen(terminal.PermanentElements(testProfile)...))
	}, time.Hour)

	srv, err := NewServer(ctx, &config.WebConfig{ListenAddr: ":0"}, testProfile, registry, store)
	require.NoError(t, err)

	router, err := srv.Router(ctx)
	require.NoError(t, err)
	return router, store
}

func exec(t *testing.T, router http.Handler, cookie *http.Cookie, body string) (*httptest.ResponseRecorder, execResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/exec", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var res execResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func sessionCookieOf(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestServer_Index(t *testing.T) {
	router, store := newTestServer(t, command.NewRegistry(testProfile))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Welcome to Jubayer&#39;s Terminal Portfolio!<br>Type &#39;help&#39; to get started.")
	assert.Contains(t, body, "Jubayer Hossen · terminal portfolio")
	assert.Contains(t, body, `id="command-input"`)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, 0, store.Len(), "page views without a command keep no session")
}

func TestServer_IndexUnknownCookie(t *testing.T) {
	router, store := newTestServer(t, command.NewRegistry(testProfile))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "7f1c7c8e-3f4b-4f0e-9a53-1f0f2c1d9e11"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to Jubayer&#39;s Terminal Portfolio!")
	assert.Equal(t, 0, store.Len())
}

func TestServer_ExecCreatesSession(t *testing.T) {
	router, store := newTestServer(t, command.NewRegistry(testProfile))

	rec, _ := exec(t, router, nil, `{"input": "about"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sessionCookieOf(t, rec).HttpOnly)
	assert.Equal(t, 1, store.Len())
}

func TestServer_ExecFlow(t *testing.T) {
	router := newTestRouter(t, command.NewRegistry(testProfile))

	rec, res := exec(t, router, nil, `{"input": "<script>alert(1)</script>"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookieOf(t, rec)

	require.Len(t, res.Lines, 2)
	assert.True(t, res.Lines[0].IsEcho)
	assert.Equal(t, `<span class="prompt">$</span> &lt;script&gt;alert(1)&lt;/script&gt;`, res.Lines[0].HTML)
	assert.Equal(t, terminal.ScrollBottom, res.Scroll)
	assert.True(t, res.Enabled)

	// the same visitor keeps their screen
	rec, res = exec(t, router, cookie, `{"input": "  Contact "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, res.Lines, 4)
	assert.Contains(t, res.Lines[3].HTML, `<a href="mailto:your.email@example.com">your.email@example.com</a>`)
	assert.Empty(t, rec.Result().Cookies())

	// a reload shows what is on screen
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	page := httptest.NewRecorder()
	router.ServeHTTP(page, req)
	assert.Contains(t, page.Body.String(), "You can reach me at:")

	rec, res = exec(t, router, cookie, `{"input": "clear"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, res.Lines)
	assert.Equal(t, terminal.ScrollTop, res.Scroll)
	assert.Contains(t, rec.Body.String(), `"lines":[]`)
}

func TestServer_ExecBlankInput(t *testing.T) {
	router := newTestRouter(t, command.NewRegistry(testProfile))

	rec, res := exec(t, router, nil, `{"input": "   "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, res.Lines)
}

func TestServer_ExecBadRequest(t *testing.T) {
	router := newTestRouter(t, command.NewRegistry(testProfile))

	rec, _ := exec(t, router, nil, `{"input":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = exec(t, router, nil, `{"input": "`+strings.Repeat("a", maxRequestBody)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type blockingCommand struct {
	started chan struct{}
	release chan struct{}
}

func (c *blockingCommand) Name() string        { return "slow" }
func (c *blockingCommand) Description() string { return "blocks until released" }
func (c *blockingCommand) Execute(ctx context.Context, out core.Output) (string, error) {
	close(c.started)
	<-c.release
	return "done", nil
}

func TestServer_ExecBusy(t *testing.T) {
	slow := &blockingCommand{started: make(chan struct{}), release: make(chan struct{})}
	router := newTestRouter(t, command.New([]core.Command{slow}))

	rec, _ := exec(t, router, nil, `{"input": "nope"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookieOf(t, rec)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		rec, res := exec(t, router, cookie, `{"input": "slow"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, res.Lines, 4)
	}()

	<-slow.started
	rec, _ = exec(t, router, cookie, `{"input": "slow"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), terminal.ErrBusy.Error())

	close(slow.release)
	wg.Wait()
}

func TestServer_Commands(t *testing.T) {
	router := newTestRouter(t, command.NewRegistry(testProfile))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/commands", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res []commandInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 5)
	assert.Equal(t, commandInfo{Name: "--help", Description: "Show this help message"}, res[0])
	assert.Equal(t, "clear", res[4].Name)
}

func TestServer_StaticAndHealth(t *testing.T) {
	router := newTestRouter(t, command.NewRegistry(testProfile))

	tests := []struct {
		path     string
		contains string
	}{
		{path: "/health", contains: "OK"},
		{path: "/static/terminal.js", contains: "/api/exec"},
		{path: "/static/terminal.css", contains: "#terminal"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/exec", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
