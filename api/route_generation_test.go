package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/merrydance/routeplan/algorithm"
	mockdb "github.com/merrydance/routeplan/db/mock"
	db "github.com/merrydance/routeplan/db/sqlc"
	"github.com/merrydance/routeplan/token"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testLongitude = 116.404
	testLatitude  = 39.915
)

func freshCacheEntryFor(t *testing.T, courier db.Courier, previews []algorithm.RoutePreview) db.RouteCacheEntry {
	payload, err := json.Marshal(previews)
	require.NoError(t, err)

	return db.RouteCacheEntry{
		CourierID:          courier.ID,
		VehicleType:        courier.VehicleType,
		Algorithm:          "greedy-cluster",
		StartLongitude:     testLongitude,
		StartLatitude:      testLatitude,
		Previews:           payload,
		AvailableTaskCount: 5,
		GeneratedAt:        pgtype.Timestamptz{Time: time.Now(), Valid: true},
		ExpiresAt:          pgtype.Timestamptz{Time: time.Now().Add(2 * time.Minute), Valid: true},
		Version:            1,
	}
}

func TestGenerateRoutesAPI(t *testing.T) {
	userID := int64(101)
	courier := randomCourier(userID)
	previews := []algorithm.RoutePreview{
		{BucketMinutes: 60, OrderCount: 3, EstimatedMinutes: 52, EstimatedEarnings: 1800, Algorithm: "greedy-cluster"},
	}

	testCases := []struct {
		name          string
		body          map[string]interface{}
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "CacheHit",
			body: map[string]interface{}{
				"longitude": testLongitude,
				"latitude":  testLatitude,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, userID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(courier, nil)

				store.EXPECT().
					EnsureRouteCacheEntry(gomock.Any(), gomock.Eq(courier.ID)).
					Times(1).
					Return(nil)

				store.EXPECT().
					GetRouteCacheEntry(gomock.Any(), gomock.Eq(courier.ID)).
					Times(1).
					Return(freshCacheEntryFor(t, courier, previews), nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp generateRoutesResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.True(t, resp.FromCache)
				require.Len(t, resp.Previews, 1)
				require.Equal(t, 60, resp.Previews[0].BucketMinutes)
			},
		},
		{
			name: "CourierOffline",
			body: map[string]interface{}{
				"longitude": testLongitude,
				"latitude":  testLatitude,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, userID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				offline := courier
				offline.IsOnline = false
				store.EXPECT().
					GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(offline, nil)

				store.EXPECT().
					GetRouteCacheEntry(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NotACourier",
			body: map[string]interface{}{
				"longitude": testLongitude,
				"latitude":  testLatitude,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, userID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(db.Courier{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "MissingLocation",
			body: map[string]interface{}{},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, userID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetCourierByUserID(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/routes/generate", bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
