package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"ezforum-cli/auth"
	"ezforum-cli/shared"
	"ezforum-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []string
	routes chan string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{routes: make(chan string, 8)}
}

func (n *recordingNotifier) Toast(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, msg)
}

func (n *recordingNotifier) NavigateTo(route string) {
	n.routes <- route
}

func (n *recordingNotifier) Toasts() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.toasts...)
}

func newTestTransport(baseUrl string, store types.KeyValueStore, notifier types.Notifier) *Transport {
	return NewTransport(Config{
		BaseUrl:       baseUrl,
		Store:         store,
		Notifier:      notifier,
		RedirectDelay: 10 * time.Millisecond,
	})
}

func signedInStore(t *testing.T) *auth.MemoryStore {
	store := auth.NewMemoryStore()
	require.NoError(t, store.Set(types.StorageKeyToken, "abc123"))
	require.NoError(t, store.Set(types.StorageKeyUser, `{"id":"u1","username":"lin"}`))
	return store
}

type sortKey string

func TestEncodeParams(t *testing.T) {
	var nilPage *int
	page := 3

	tests := []struct {
		name     string
		params   any
		expected string
	}{
		{"nil params", nil, ""},
		{"nil map", Params(nil), ""},
		{"drops nil values", Params{"page": 1, "limit": nil}, "page=1"},
		{"drops nil pointers", Params{"page": nilPage, "q": "go"}, "q=go"},
		{"follows pointers", Params{"page": &page}, "page=3"},
		{"sorted keys", Params{"b": 2, "a": 1}, "a=1&b=2"},
		{"percent-encodes", Params{"q": "a b&c=d"}, "q=a%20b%26c%3Dd"},
		{"encodes keys", Params{"sort by": "new"}, "sort%20by=new"},
		{"joins slices", Params{"ids": []string{"a", "b"}}, "ids=a%2Cb"},
		{"keeps zero values", Params{"page": 0, "q": ""}, "page=0&q="},
		{"plain map", map[string]any{"page": 2, "x": nil}, "page=2"},
		{"string map", map[string]string{"q": "x y"}, "q=x%20y"},
		{"typed map", map[string]int{"page": 1, "limit": 20}, "limit=20&page=1"},
		{"typed map of pointers", map[string]*int{"page": nil, "limit": &page}, "limit=3"},
		{"named string keys", map[sortKey]string{"sort": "new"}, "sort=new"},
		{"url values", url.Values{"tag": {"go", "web"}}, "tag=go&tag=web"},
		{"struct params", shared.ListParams{Page: 2, Limit: 10}, "limit=10&page=2"},
		{"struct omits zero", shared.ListParams{Page: 1}, "page=1"},
		{"empty struct", shared.ListParams{}, ""},
		{"nil struct pointer", (*shared.ListParams)(nil), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := EncodeParams(tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestEncodeParamsRejectsScalars(t *testing.T) {
	_, err := EncodeParams(42)
	assert.Error(t, err)
}

func TestBuildUrl(t *testing.T) {
	t.Setenv("EZFORUM_API_ORIGIN", "")

	t.Run("proxy mode uses the url as-is", func(t *testing.T) {
		tr := NewTransport(Config{Proxy: true})
		out, err := tr.BuildUrl("/api/posts", nil)
		require.NoError(t, err)
		assert.Equal(t, "/api/posts", out)
	})

	t.Run("direct mode prepends the origin", func(t *testing.T) {
		tr := NewTransport(Config{})
		out, err := tr.BuildUrl("/api/posts", nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultOrigin+"/api/posts", out)
	})

	t.Run("drops undefined params", func(t *testing.T) {
		tr := NewTransport(Config{})
		out, err := tr.BuildUrl("/api/posts", Params{"page": 1, "limit": nil})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3009/api/posts?page=1", out)
	})

	t.Run("no question mark for empty params", func(t *testing.T) {
		tr := NewTransport(Config{Proxy: true})
		out, err := tr.BuildUrl("/api/posts", Params{"limit": nil})
		require.NoError(t, err)
		assert.Equal(t, "/api/posts", out)
	})
}

func TestBaseUrlOriginOverride(t *testing.T) {
	t.Setenv("EZFORUM_API_ORIGIN", "http://forum.test")
	assert.Equal(t, "http://forum.test", BaseUrl(false))
	assert.Equal(t, "", BaseUrl(true))
}

func TestDoHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"success","message":"","data":null}`))
	}))
	defer srv.Close()

	t.Run("bearer token when signed in", func(t *testing.T) {
		tr := newTestTransport(srv.URL, signedInStore(t), nil)
		apiErr := tr.Do(context.Background(), RequestOptions{Url: "/api/auth/me", Method: http.MethodGet}, nil)
		require.Nil(t, apiErr)
		assert.Equal(t, "Bearer abc123", got.Get("Authorization"))
		assert.Equal(t, "application/json", got.Get("Content-Type"))
	})

	t.Run("no authorization header without token", func(t *testing.T) {
		tr := newTestTransport(srv.URL, auth.NewMemoryStore(), nil)
		apiErr := tr.Do(context.Background(), RequestOptions{Url: "/api/posts", Method: http.MethodGet}, nil)
		require.Nil(t, apiErr)
		assert.Empty(t, got.Values("Authorization"))
	})

	t.Run("caller headers override defaults but not the token", func(t *testing.T) {
		tr := newTestTransport(srv.URL, signedInStore(t), nil)
		apiErr := tr.Do(context.Background(), RequestOptions{
			Url:    "/api/posts",
			Method: http.MethodGet,
			Headers: map[string]string{
				"Authorization": "Bearer other",
				"Content-Type":  "text/plain",
				"X-Client":      "cli",
			},
		}, nil)
		require.Nil(t, apiErr)
		assert.Equal(t, "Bearer abc123", got.Get("Authorization"))
		assert.Equal(t, "text/plain", got.Get("Content-Type"))
		assert.Equal(t, "cli", got.Get("X-Client"))
	})

	t.Run("caller authorization kept without token", func(t *testing.T) {
		tr := newTestTransport(srv.URL, auth.NewMemoryStore(), nil)
		apiErr := tr.Do(context.Background(), RequestOptions{
			Url:     "/api/posts",
			Method:  http.MethodGet,
			Headers: map[string]string{"Authorization": "Bearer other"},
		}, nil)
		require.Nil(t, apiErr)
		assert.Equal(t, "Bearer other", got.Get("Authorization"))
	})
}

func TestDoSendsJsonBodyAndQuery(t *testing.T) {
	var method, path, rawQuery string
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path, rawQuery = r.Method, r.URL.Path, r.URL.RawQuery
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := newTestTransport(srv.URL, nil, nil)

	apiErr := tr.Do(context.Background(), RequestOptions{
		Url:    "/api/posts",
		Method: http.MethodPost,
		Data:   shared.CreatePostRequest{Title: "hi", Content: "there", Images: []string{}},
	}, nil)
	require.Nil(t, apiErr)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/api/posts", path)
	assert.JSONEq(t, `{"title":"hi","content":"there","images":[]}`, string(body))

	apiErr = tr.Do(context.Background(), RequestOptions{
		Url:    "/api/posts",
		Method: http.MethodGet,
		Params: Params{"page": 2, "limit": nil},
	}, nil)
	require.Nil(t, apiErr)
	assert.Equal(t, "page=2", rawQuery)
	assert.Empty(t, body)
}

func TestDoResolvesBodyUnchanged(t *testing.T) {
	const payload = `{"code":"success","message":"ok","data":{"id":"p1","title":"Hello","images":["a.png"],"isLiked":true}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	tr := newTestTransport(srv.URL, nil, nil)

	raw, apiErr := Request[json.RawMessage](context.Background(), tr, RequestOptions{Url: "/api/posts/p1", Method: http.MethodGet})
	require.Nil(t, apiErr)
	assert.Equal(t, payload, string(*raw))

	res, apiErr := envelope[shared.Post](context.Background(), tr, RequestOptions{Url: "/api/posts/p1", Method: http.MethodGet})
	require.Nil(t, apiErr)
	assert.True(t, res.Ok())
	assert.Equal(t, "ok", res.Message)
	assert.Equal(t, "Hello", res.Data.Title)
	assert.Equal(t, []string{"a.png"}, res.Data.Images)
	assert.True(t, res.Data.IsLiked)
}

func TestDoUnauthorized(t *testing.T) {
	bodies := map[string]string{
		"json body":  `{"code":"error","message":"token expired","data":null}`,
		"plain body": `nope`,
		"empty body": ``,
	}

	for name, respBody := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(respBody))
			}))
			defer srv.Close()

			store := signedInStore(t)
			notifier := newRecordingNotifier()
			tr := newTestTransport(srv.URL, store, notifier)

			apiErr := tr.Do(context.Background(), RequestOptions{Url: "/api/auth/me", Method: http.MethodGet}, nil)
			require.NotNil(t, apiErr)
			assert.True(t, apiErr.IsUnauthorized())
			assert.Equal(t, shared.MsgUnauthorized, apiErr.Msg)
			assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

			assert.Empty(t, store.Get(types.StorageKeyToken))
			assert.Empty(t, store.Get(types.StorageKeyUser))
			assert.Equal(t, []string{toastLoginRequired}, notifier.Toasts())

			select {
			case route := <-notifier.routes:
				assert.Equal(t, LoginRoute, route)
			case <-time.After(time.Second):
				t.Fatal("login navigation was not scheduled")
			}
		})
	}
}

func TestDoUnauthorizedIsNotDeduplicated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	notifier := newRecordingNotifier()
	tr := newTestTransport(srv.URL, signedInStore(t), notifier)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			apiErr := tr.Do(context.Background(), RequestOptions{Url: "/api/posts/liked", Method: http.MethodGet}, nil)
			assert.NotNil(t, apiErr)
		}()
	}
	wg.Wait()

	for i := 0; i < 2; i++ {
		select {
		case <-notifier.routes:
		case <-time.After(time.Second):
			t.Fatal("expected one navigation per unauthorized response")
		}
	}
	assert.Len(t, notifier.Toasts(), 2)
}

func TestDoRequestFailed(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"server message", http.StatusBadRequest, `{"code":"error","message":"Title is required","data":null}`, "Title is required"},
		{"message list", http.StatusBadRequest, `{"message":["title should not be empty","content too long"]}`, "title should not be empty,content too long"},
		{"empty list", http.StatusBadRequest, `{"message":[]}`, shared.MsgRequestFailed},
		{"numeric message", http.StatusConflict, `{"message":409}`, "409"},
		{"zero message", http.StatusConflict, `{"message":0}`, shared.MsgRequestFailed},
		{"false message", http.StatusConflict, `{"message":false}`, shared.MsgRequestFailed},
		{"null message", http.StatusBadRequest, `{"message":null}`, shared.MsgRequestFailed},
		{"object message", http.StatusBadRequest, `{"message":{"field":"title"}}`, `{"field":"title"}`},
		{"empty message", http.StatusForbidden, `{"code":"error","message":""}`, shared.MsgRequestFailed},
		{"no message", http.StatusNotFound, `{"code":"error"}`, shared.MsgRequestFailed},
		{"not json", http.StatusInternalServerError, `<html>bad gateway</html>`, shared.MsgRequestFailed},
		{"redirect status", http.StatusNotModified, ``, shared.MsgRequestFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			store := signedInStore(t)
			notifier := newRecordingNotifier()
			tr := newTestTransport(srv.URL, store, notifier)

			apiErr := tr.Do(context.Background(), RequestOptions{Url: "/api/posts", Method: http.MethodPost, Data: emptyBody}, nil)
			require.NotNil(t, apiErr)
			assert.Equal(t, shared.ApiErrorTypeRequestFailed, apiErr.Type)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.expected, apiErr.Msg)
			assert.Equal(t, []string{tc.expected}, notifier.Toasts())

			// only a 401 touches the session
			assert.Equal(t, "abc123", store.Get(types.StorageKeyToken))
		})
	}
}

func TestDoNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedUrl := srv.URL
	srv.Close()

	store := signedInStore(t)
	notifier := newRecordingNotifier()
	tr := newTestTransport(closedUrl, store, notifier)

	apiErr := tr.Do(context.Background(), RequestOptions{Url: "/api/posts", Method: http.MethodGet}, nil)
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeNetwork, apiErr.Type)
	assert.Error(t, apiErr.Unwrap())
	assert.Equal(t, []string{toastNetworkError}, notifier.Toasts())
	assert.Equal(t, "abc123", store.Get(types.StorageKeyToken))
}

func TestDoCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	tr := newTestTransport(srv.URL, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	apiErr := tr.Do(ctx, RequestOptions{Url: "/api/posts", Method: http.MethodGet}, nil)
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeNetwork, apiErr.Type)
	assert.ErrorIs(t, apiErr, context.DeadlineExceeded)
}

func TestDoRejectsUnsupportedMethod(t *testing.T) {
	tr := newTestTransport("http://127.0.0.1:1", nil, nil)
	apiErr := tr.Do(context.Background(), RequestOptions{Url: "/api/posts", Method: http.MethodPatch}, nil)
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeOther, apiErr.Type)
}

func TestDoProxyMode(t *testing.T) {
	var path, rawQuery, authHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
		authHeader = r.Header.Get("Authorization")
		w.Write([]byte(`{"code":"success","message":"","data":{"items":[],"total":0,"page":1,"limit":10,"totalPages":0}}`))
	}))
	defer srv.Close()

	t.Run("configured origin", func(t *testing.T) {
		tr := NewTransport(Config{Proxy: true, ProxyOrigin: srv.URL, Store: signedInStore(t)})

		requestUrl, err := tr.BuildUrl("/api/posts", Params{"page": 1})
		require.NoError(t, err)
		assert.Equal(t, "/api/posts?page=1", requestUrl)

		res, apiErr := envelope[shared.PostList](context.Background(), tr, RequestOptions{
			Url:    "/api/posts",
			Method: http.MethodGet,
			Params: Params{"page": 1, "limit": nil},
		})
		require.Nil(t, apiErr)
		assert.True(t, res.Ok())
		assert.Equal(t, "/api/posts", path)
		assert.Equal(t, "page=1", rawQuery)
		assert.Equal(t, "Bearer abc123", authHeader)
	})

	t.Run("origin from env", func(t *testing.T) {
		t.Setenv("EZFORUM_PROXY_ORIGIN", srv.URL)
		tr := NewTransport(Config{Proxy: true})

		apiErr := tr.Do(context.Background(), RequestOptions{Url: "/api/posts/liked", Method: http.MethodGet}, nil)
		require.Nil(t, apiErr)
		assert.Equal(t, "/api/posts/liked", path)
	})

	t.Run("uploads go through the proxy too", func(t *testing.T) {
		upSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Write([]byte(`{"code":"success","message":"","data":{"url":"/uploads/a","filename":"a","mimetype":"text/plain"}}`))
		}))
		defer upSrv.Close()

		uploads := New(NewTransport(Config{Proxy: true, ProxyOrigin: upSrv.URL})).Uploads
		_, apiErr := uploads.UploadReader(context.Background(), "a.txt", strings.NewReader("x"))
		require.Nil(t, apiErr)
		assert.Equal(t, uploadPath, path)
	})
}

func TestParseOrigin(t *testing.T) {
	_, err := ParseOrigin("http://localhost:5173")
	assert.NoError(t, err)

	for _, bad := range []string{"", "localhost:5173", "/api", "ftp://host"} {
		_, err := ParseOrigin(bad)
		assert.Error(t, err, bad)
	}
}

type lockedTokenStore struct {
	*auth.MemoryStore
}

func (s lockedTokenStore) Remove(key string) error {
	if key == types.StorageKeyToken {
		return io.ErrClosedPipe
	}
	return s.MemoryStore.Remove(key)
}

func TestDoUnauthorizedClearsUserWhenTokenIsStuck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := lockedTokenStore{signedInStore(t)}
	tr := newTestTransport(srv.URL, store, newRecordingNotifier())

	apiErr := tr.Do(context.Background(), RequestOptions{Url: "/api/auth/me", Method: http.MethodGet}, nil)
	require.NotNil(t, apiErr)
	assert.True(t, apiErr.IsUnauthorized())
	assert.Empty(t, store.Get(types.StorageKeyUser))
}
