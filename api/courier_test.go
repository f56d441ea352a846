package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockdb "github.com/merrydance/routeplan/db/mock"
	db "github.com/merrydance/routeplan/db/sqlc"
	"github.com/merrydance/routeplan/token"
	"github.com/merrydance/routeplan/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func randomCourier(userID int64) db.Courier {
	return db.Courier{
		ID:          util.RandomInt(1, 1000),
		UserID:      userID,
		Name:        "骑手" + util.RandomString(4),
		VehicleType: "ebike",
		IsOnline:    true,
		CreatedAt:   time.Now(),
	}
}

func TestRegisterCourierAPI(t *testing.T) {
	userID := util.RandomInt(1, 1000)
	courier := randomCourier(userID)

	testCases := []struct {
		name          string
		body          map[string]interface{}
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: map[string]interface{}{
				"name":         "张三",
				"vehicle_type": "ebike",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, userID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(db.Courier{}, db.ErrRecordNotFound)

				store.EXPECT().
					CreateCourier(gomock.Any(), gomock.Any()).
					Times(1).
					Return(courier, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
			},
		},
		{
			name: "AlreadyRegistered",
			body: map[string]interface{}{
				"name":         "张三",
				"vehicle_type": "ebike",
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
					CreateCourier(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "InvalidVehicle",
			body: map[string]interface{}{
				"name":         "张三",
				"vehicle_type": "rocket",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, userID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateCourier(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NoAuthorization",
			body: map[string]interface{}{
				"name":         "张三",
				"vehicle_type": "ebike",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateCourier(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
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

			request, err := http.NewRequest(http.MethodPost, "/v1/couriers/register", bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestGoOnlineAPI(t *testing.T) {
	userID := util.RandomInt(1, 1000)
	courier := randomCourier(userID)
	courier.IsOnline = false

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
		Times(1).
		Return(courier, nil)

	online := courier
	online.IsOnline = true
	store.EXPECT().
		UpdateCourierOnline(gomock.Any(), gomock.Eq(db.UpdateCourierOnlineParams{
			ID:       courier.ID,
			IsOnline: true,
		})).
		Times(1).
		Return(online, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodPost, "/v1/couriers/online", nil)
	require.NoError(t, err)
	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, userID, time.Minute)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp courierResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.True(t, resp.IsOnline)
}
