package gitea

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/inovacc/giteabak/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var repoX = model.Repository{Name: "org/x", URL: "git@host:org/x.git"}

func issueJSON(number int, title, state string, labels ...string) map[string]any {
	ls := make([]map[string]string, 0, len(labels))
	for _, l := range labels {
		ls = append(ls, map[string]string{"name": l})
	}

	return map[string]any{
		"number": number,
		"title":  title,
		"body":   "body of " + title,
		"state":  state,
		"user":   map[string]string{"full_name": "Jane Doe", "login": "jane"},
		"labels": ls,
	}
}

func TestIssues_OpenAndClosed(t *testing.T) {
	var (
		mu        sync.Mutex
		requested []string
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/repos/org/x/issues", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		mu.Lock()
		requested = append(requested, q.Get("state")+":"+q.Get("page"))
		mu.Unlock()

		switch q.Get("state") + ":" + q.Get("page") {
		case "open:1":
			writeJSON(t, w, []any{issueJSON(1, "Crash on start", "open")})
		case "closed:1":
			writeJSON(t, w, []any{issueJSON(2, "Old bug", "closed", "bug", "ui")})
		default:
			writeJSON(t, w, []any{})
		}
	})
	mux.HandleFunc("/api/v1/repos/org/x/issues/1/comments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{
			map[string]any{"body": "me too", "user": map[string]string{"full_name": "Bob"}},
		})
	})
	mux.HandleFunc("/api/v1/repos/org/x/issues/2/comments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{})
	})

	issues, err := newTestClient(t, mux, tokenAuth).Issues(context.Background(), repoX)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	mu.Lock()
	assert.Equal(t, []string{"open:1", "open:2", "closed:1", "closed:2"}, requested)
	mu.Unlock()

	open := issues[0]
	assert.Equal(t, "Crash on start", open.Title)
	assert.Equal(t, "Jane Doe", open.Author)
	assert.Equal(t, "body of Crash on start", open.Body)
	assert.Equal(t, model.StateOpen, open.State)
	assert.Empty(t, open.Labels)
	assert.Equal(t, []model.Comment{{Author: "Bob", Body: "me too"}}, open.Comments)

	closed := issues[1]
	assert.Equal(t, model.StateClosed, closed.State)
	assert.Equal(t, []string{"bug", "ui"}, closed.Labels)
	assert.Empty(t, closed.Comments)
}

func TestIssues_CommentFailureKeepsIssue(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/repos/org/x/issues", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") == "open" && q.Get("page") == "1" {
			writeJSON(t, w, []any{issueJSON(5, "Keep me", "open")})
			return
		}

		writeJSON(t, w, []any{})
	})
	mux.HandleFunc("/api/v1/repos/org/x/issues/5/comments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	issues, err := newTestClient(t, mux, tokenAuth).Issues(context.Background(), repoX)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "Keep me", issues[0].Title)
	assert.Empty(t, issues[0].Comments)
}

func TestIssues_UnknownState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/repos/org/x/issues", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") == "closed" && q.Get("page") == "1" {
			writeJSON(t, w, []any{issueJSON(3, "Odd", "Closed")})
			return
		}

		writeJSON(t, w, []any{})
	})
	mux.HandleFunc("/api/v1/repos/org/x/issues/3/comments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{})
	})

	issues, err := newTestClient(t, mux, tokenAuth).Issues(context.Background(), repoX)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, model.StateUnknown, issues[0].State)
}

func TestIssues_TransportErrorEndsState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/repos/org/x/issues", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		switch {
		case q.Get("state") == "open":
			w.WriteHeader(http.StatusNotFound)
		case q.Get("page") == "1":
			writeJSON(t, w, []any{issueJSON(9, "Closed one", "closed")})
		default:
			writeJSON(t, w, []any{})
		}
	})
	mux.HandleFunc("/api/v1/repos/org/x/issues/9/comments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{})
	})

	issues, err := newTestClient(t, mux, tokenAuth).Issues(context.Background(), repoX)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "Closed one", issues[0].Title)
}

func TestIssues_ForbiddenComments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/repos/org/x/issues", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{issueJSON(1, "A", "open")})
	})
	mux.HandleFunc("/api/v1/repos/org/x/issues/1/comments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := newTestClient(t, mux, tokenAuth).Issues(context.Background(), repoX)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestComments_NoPagination(t *testing.T) {
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/repos/org/x/issues/4/comments", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Empty(t, r.URL.Query().Get("page"))
		writeJSON(t, w, []any{
			map[string]any{"body": "first", "user": map[string]string{"full_name": "A"}},
			map[string]any{"body": "second", "user": map[string]string{"full_name": "B"}},
		})
	})

	comments, err := newTestClient(t, mux, tokenAuth).Comments(context.Background(), repoX, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []model.Comment{{Author: "A", Body: "first"}, {Author: "B", Body: "second"}}, comments)
}
