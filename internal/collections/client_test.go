package collections

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient("test-key", "user", "12345", nil)
	require.NoError(t, err)
	c.baseURL = baseURL
	return c
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "user", "1", nil)
	assert.ErrorContains(t, err, "API key")

	_, err = NewClient("k", "team", "1", nil)
	assert.ErrorContains(t, err, "user")

	_, err = NewClient("k", "user", "", nil)
	assert.ErrorContains(t, err, "library ID")
}

func TestFetchAllFollowsPagination(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Zotero-API-Key"))
		assert.Equal(t, "3", r.Header.Get("Zotero-API-Version"))

		if r.URL.Query().Get("start") == "" {
			w.Header().Set("Link", fmt.Sprintf(`<%s/users/12345/collections?start=2>; rel="next", <%s>; rel="last"`, srv.URL, srv.URL))
			fmt.Fprint(w, `[
				{"key":"AAA","data":{"name":"Archive","parentCollection":false}},
				{"key":"BBB","data":{"name":"DDR","parentCollection":"AAA"}}
			]`)
			return
		}
		fmt.Fprint(w, `[{"key":"CCC","data":{"name":"Theses","parentCollection":false}}]`)
	}))
	defer srv.Close()

	nodes, err := newTestClient(t, srv.URL).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.Equal(t, "AAA", nodes[0].Key)
	assert.Nil(t, nodes[0].ParentKey)
	require.NotNil(t, nodes[1].ParentKey)
	assert.Equal(t, "AAA", *nodes[1].ParentKey)
	assert.Equal(t, "Theses", nodes[2].Name)
}

func TestFetchAllForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "API key")
}

func TestFetchAllServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNextLink(t *testing.T) {
	header := `<https://api.zotero.org/users/1/collections?start=100>; rel="next", <https://api.zotero.org/users/1/collections?start=200>; rel="last"`
	assert.Equal(t, "https://api.zotero.org/users/1/collections?start=100", nextLink(header))
	assert.Equal(t, "", nextLink(`<https://x>; rel="last"`))
	assert.Equal(t, "", nextLink(""))
}
