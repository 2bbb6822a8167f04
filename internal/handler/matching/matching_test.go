package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tutor-match/internal/api"
	"tutor-match/internal/cache"
	"tutor-match/internal/database"
	"tutor-match/internal/middleware"
	"tutor-match/internal/model"
	"tutor-match/internal/service"
	"tutor-match/internal/store"
	"tutor-match/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	listTutors = store.ListTutors
	getTutorByID = store.GetTutorByID
}

var catalog = []model.User{
	{ID: "tutor-001", Name: "Carlos Mendoza", Level: model.LevelGold},
	{ID: "tutor-002", Name: "Ana Torres", Level: model.LevelSilver},
}

func stubCatalog(t *testing.T) {
	t.Cleanup(restore)
	listTutors = func(_ context.Context, _ database.DB, exclude string) ([]model.User, error) {
		var out []model.User
		for _, u := range catalog {
			if u.ID != exclude {
				out = append(out, u)
			}
		}
		return out, nil
	}
	getTutorByID = func(_ context.Context, _ database.DB, id string) (*model.User, error) {
		for _, u := range catalog {
			if u.ID == id {
				u := u
				return &u, nil
			}
		}
		return nil, fmt.Errorf("GetTutorByID: %w", store.ErrNotFound)
	}
}

func newCtx(method, target string, user *model.User, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, target, nil), rec)
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	return c, rec
}

func interestedStoreWithNotices() (*service.InterestedTutors, *service.Notifications) {
	kv, _ := cache.NewMemoryCache()
	notices := service.NewNotifications(kv)
	return service.NewInterestedTutors(kv, service.NewNotifier(notices, worker.Inline{})), notices
}

func TestFeedHandler(t *testing.T) {
	stubCatalog(t)
	me := &model.User{ID: "user-demo-001"}
	interested, _ := interestedStoreWithNotices()

	c, rec := newCtx(http.MethodGet, "/api/feed", me)
	require.NoError(t, FeedHandler(&database.FakeDB{}, interested)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var page api.FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Equal(t, "tutor-001", page.Tutor.ID)
	require.Equal(t, 2, page.Total)
	require.True(t, page.HasNext)
	require.False(t, page.HasPrev)

	c, rec = newCtx(http.MethodGet, "/api/feed?index=2", me)
	require.NoError(t, FeedHandler(&database.FakeDB{}, interested)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"done":true`)

	for _, q := range []string{"-1", "abc"} {
		c, rec = newCtx(http.MethodGet, "/api/feed?index="+q, me)
		require.NoError(t, FeedHandler(&database.FakeDB{}, interested)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	// 自己不會出現在 feed
	c, rec = newCtx(http.MethodGet, "/api/feed", &model.User{ID: "tutor-001"})
	require.NoError(t, FeedHandler(&database.FakeDB{}, interested)(c))
	require.Contains(t, rec.Body.String(), "tutor-002")
	require.Contains(t, rec.Body.String(), `"total":1`)

	listTutors = func(context.Context, database.DB, string) ([]model.User, error) { return nil, errors.New("pg") }
	c, rec = newCtx(http.MethodGet, "/api/feed", me)
	require.NoError(t, FeedHandler(&database.FakeDB{}, interested)(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	c, rec = newCtx(http.MethodGet, "/api/feed", nil)
	require.NoError(t, FeedHandler(&database.FakeDB{}, interested)(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFeedHandlerInterestedFlag(t *testing.T) {
	stubCatalog(t)
	me := &model.User{ID: "user-demo-001"}
	interested, _ := interestedStoreWithNotices()
	db := &database.FakeDB{}

	feed := func(index string) api.FeedResponse {
		c, rec := newCtx(http.MethodGet, "/api/feed?index="+index, me)
		require.NoError(t, FeedHandler(db, interested)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		var page api.FeedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		return page
	}

	require.False(t, feed("0").Interested)
	require.False(t, feed("1").Interested)

	c, _ := newCtx(http.MethodPost, "/", me, "tutor_id", "tutor-002")
	require.NoError(t, InterestHandler(db, interested)(c))

	require.False(t, feed("0").Interested)
	require.True(t, feed("1").Interested)
	require.False(t, feed("2").Interested)

	// 別的使用者不受影響
	c, rec := newCtx(http.MethodGet, "/api/feed?index=1", &model.User{ID: "other"})
	require.NoError(t, FeedHandler(db, interested)(c))
	require.Contains(t, rec.Body.String(), `"interested":false`)
}

func TestInterestFlow(t *testing.T) {
	stubCatalog(t)
	me := &model.User{ID: "user-demo-001"}
	interested, notices := interestedStoreWithNotices()
	db := &database.FakeDB{}

	c, rec := newCtx(http.MethodPost, "/", me, "tutor_id", "tutor-002")
	require.NoError(t, InterestHandler(db, interested)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"added":true`)

	c, rec = newCtx(http.MethodPost, "/", me, "tutor_id", "tutor-002")
	require.NoError(t, InterestHandler(db, interested)(c))
	require.Contains(t, rec.Body.String(), `"added":false`)

	c, rec = newCtx(http.MethodPost, "/", me, "tutor_id", "tutor-404")
	require.NoError(t, InterestHandler(db, interested)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newCtx(http.MethodGet, "/", me)
	require.NoError(t, ListInterestedHandler(interested)(c))
	var list api.InterestedListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	require.Equal(t, "Ana Torres", list.Items[0].Tutor.Name)

	require.Len(t, notices.List(context.Background(), me.ID), 1)

	c, rec = newCtx(http.MethodDelete, "/", me, "tutor_id", "tutor-999")
	require.NoError(t, RemoveInterestedHandler(interested)(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, interested.List(context.Background(), me.ID), 1)

	c, rec = newCtx(http.MethodDelete, "/", me, "tutor_id", "tutor-002")
	require.NoError(t, RemoveInterestedHandler(interested)(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, interested.List(context.Background(), me.ID))

	_, err := interested.Add(context.Background(), me.ID, catalog[0])
	require.NoError(t, err)
	c, rec = newCtx(http.MethodDelete, "/", me)
	require.NoError(t, ClearInterestedHandler(interested)(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, interested.List(context.Background(), me.ID))
}

func TestInterestedHandlersRequireSession(t *testing.T) {
	interested, _ := interestedStoreWithNotices()
	handlers := []echo.HandlerFunc{
		InterestHandler(&database.FakeDB{}, interested),
		ListInterestedHandler(interested),
		RemoveInterestedHandler(interested),
		ClearInterestedHandler(interested),
	}
	for _, h := range handlers {
		c, rec := newCtx(http.MethodGet, "/", nil)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}
