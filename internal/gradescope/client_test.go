package gradescope

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/duesoon/internal/fetch"
	"github.com/alexanderramin/duesoon/internal/progress"
)

func TestLoadAll(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))
		fmt.Fprint(w, `<html><body>
			<a class="courseBox" href="/courses/9">
				<h3>CS 61B</h3><div>Data Structures</div><div>3 assignments</div>
			</a>
		</body></html>`)
	})
	mux.HandleFunc("/courses/9", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><table><tbody>
			<tr><td>Proj 0</td><td>Submitted</td><td>2026-02-01 23:59:00 -0800</td></tr>
		</tbody></table></body></html>`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	client, err := fetch.NewClient(srv.URL, fetch.Credentials{Cookie: "session=abc"},
		fetch.BackoffPolicy{InitialInterval: time.Millisecond, MaxElapsedTime: 100 * time.Millisecond})
	require.NoError(t, err)

	loaded, err := NewSource(client, progress.New(io.Discard)).LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "CS 61B", loaded[0].Course.Shortname)
	require.Len(t, loaded[0].Assignments, 1)
	assert.True(t, loaded[0].Assignments[0].Submitted)
}
