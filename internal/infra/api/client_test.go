package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"subletswipe/config"
	"subletswipe/internal/domain/entity"
	"subletswipe/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 2 * time.Second

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Get_DecodesBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/7/listings", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`{"listing_ids":[3,9]}`))
	}))

	var out struct {
		ListingIDs []int `json:"listing_ids"`
	}
	err := client.Get(context.Background(), "/users/7/listings", &out)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 9}, out.ListingIDs)
}

func TestClient_Post_SendsJSONBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"target_id":55,"is_right":true}`, string(body))
		_, _ = w.Write([]byte(`{"match":true}`))
	}))

	var result entity.MatchResult
	err := client.Post(context.Background(), "/swipes/listing/4",
		entity.SwipeDecision{TargetID: 55, IsRight: true}, &result)
	require.NoError(t, err)
	assert.True(t, result.Matched)
}

func TestClient_Non2xx_SurfacesBodyText(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Email already registered"}`))
	}))

	err := client.Post(context.Background(), "/signup", map[string]string{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email already registered")
	assert.True(t, IsStatus(err, http.StatusBadRequest))
}

func TestClient_Non2xx_EmptyBodyFallsBackToStatusText(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	err := client.Get(context.Background(), "/renters/1/listing_matches", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), err.Error())
}

func TestResourceRepository_RenterProfile404MeansNoProfile(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	repo := NewResourceRepository(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	id, found, err := repo.FetchRenterProfileID(context.Background(), 12)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, id)
}

func TestSwipeRepository_PathDependsOnRole(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"match":false}`))
	}))
	repo := NewSwipeRepository(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := repo.Submit(context.Background(),
		entity.ActiveRole{IsRenter: true, ResourceID: 42},
		entity.SwipeDecision{TargetID: 9, IsRight: false})
	require.NoError(t, err)
	assert.Equal(t, "/swipes/renter/42", gotPath)

	_, err = repo.Submit(context.Background(),
		entity.ActiveRole{IsRenter: false, ResourceID: 7},
		entity.SwipeDecision{TargetID: 55, IsRight: true})
	require.NoError(t, err)
	assert.Equal(t, "/swipes/listing/7", gotPath)
}

func TestMatchRepository_RecommendationsNormalizePhotos(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listings/recommendations/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"recommendations":[
			{"id":1,"photos":"[{\"url\":\"http://x/1.jpg\"}]"},
			{"id":2,"photos":[]},
			{"id":3,"photos":null}
		]}`))
	}))
	repo := NewMatchRepository(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	recs, err := repo.Recommendations(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	require.NotNil(t, recs[0].PhotoURL)
	assert.Equal(t, "http://x/1.jpg", *recs[0].PhotoURL)
	assert.Nil(t, recs[1].PhotoURL)
	assert.Nil(t, recs[2].PhotoURL)
}

func TestAuthRepository_LoginMapsUnauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid email or password"}`))
	}))
	repo := NewAuthRepository(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	user, err := repo.Login(context.Background(), "a@b.c", "nope")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrInvalidCredentials)
}
