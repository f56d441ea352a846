package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/merrydance/routeplan/algorithm"
	mockdb "github.com/merrydance/routeplan/db/mock"
	db "github.com/merrydance/routeplan/db/sqlc"
	"github.com/merrydance/routeplan/worker"
	mockwk "github.com/merrydance/routeplan/worker/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func claimablePreview(taskID int64) []algorithm.RoutePreview {
	return []algorithm.RoutePreview{
		{
			BucketMinutes: 60,
			Stops: []algorithm.PreviewStop{
				{
					Kind:                algorithm.StopPickup,
					TaskID:              taskID,
					Location:            algorithm.Location{Longitude: 116.404, Latitude: 39.915},
					EstimatedArrivalMin: 6,
				},
				{
					Kind:                algorithm.StopDelivery,
					TaskID:              taskID,
					Location:            algorithm.Location{Longitude: 116.412, Latitude: 39.921},
					EstimatedArrivalMin: 18,
					Earning:             800,
				},
			},
			OrderCount:        1,
			EstimatedMinutes:  25,
			EstimatedEarnings: 800,
			Algorithm:         "greedy-cluster",
		},
	}
}

func claimedRouteResult(courier db.Courier, taskID int64) db.ClaimRouteTxResult {
	route := db.CourierRoute{
		ID:                1,
		CourierID:         courier.ID,
		Status:            db.RouteStatusActive,
		TargetMinutes:     60,
		EstimatedMinutes:  25,
		EstimatedEarnings: 800,
		StartedAt:         time.Now(),
	}
	return db.ClaimRouteTxResult{
		Route: route,
		Stops: []db.RouteStop{
			{ID: 11, RouteID: route.ID, Seq: 0, Kind: db.StopKindPickup, TaskID: pgtype.Int8{Int64: taskID, Valid: true}, Status: db.StopStatusPending},
			{ID: 12, RouteID: route.ID, Seq: 1, Kind: db.StopKindDelivery, TaskID: pgtype.Int8{Int64: taskID, Valid: true}, Earning: 800, Status: db.StopStatusPending},
		},
	}
}

func TestClaimRouteAPI(t *testing.T) {
	userID := int64(202)
	courier := randomCourier(userID)
	taskID := int64(7)

	testCases := []struct {
		name          string
		buildStubs    func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(courier, nil)

				store.EXPECT().
					GetRouteCacheEntry(gomock.Any(), gomock.Eq(courier.ID)).
					Times(1).
					Return(freshCacheEntryFor(t, courier, claimablePreview(taskID)), nil)

				store.EXPECT().
					GetDeliveryTask(gomock.Any(), gomock.Eq(taskID)).
					Times(1).
					Return(db.DeliveryTask{ID: taskID, PickupAddress: "望京SOHO T1", DeliveryAddress: "阜通东大街6号"}, nil)

				store.EXPECT().
					ClaimRouteTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.ClaimRouteTxParams) (db.ClaimRouteTxResult, error) {
						require.Equal(t, courier.ID, arg.CourierID)
						require.Equal(t, int32(60), arg.TargetMinutes)
						require.Len(t, arg.Stops, 2)
						require.Equal(t, "望京SOHO T1", arg.Stops[0].Address)
						require.Equal(t, "阜通东大街6号", arg.Stops[1].Address)
						return claimedRouteResult(courier, taskID), nil
					})

				// 接单成功后全量失效缓存
				distributor.EXPECT().
					DistributeTaskInvalidateRouteCache(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var resp routeResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.Equal(t, db.RouteStatusActive, resp.Status)
				require.Len(t, resp.Stops, 2)
			},
		},
		{
			name: "TaskConflict",
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(courier, nil)

				store.EXPECT().
					GetRouteCacheEntry(gomock.Any(), gomock.Eq(courier.ID)).
					Times(1).
					Return(freshCacheEntryFor(t, courier, claimablePreview(taskID)), nil)

				store.EXPECT().
					GetDeliveryTask(gomock.Any(), gomock.Eq(taskID)).
					Times(1).
					Return(db.DeliveryTask{ID: taskID}, nil)

				store.EXPECT().
					ClaimRouteTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.ClaimRouteTxResult{}, fmt.Errorf("%w: 任务 %d", db.ErrTaskUnavailable, taskID))

				// 冲突时失效该骑手的缓存，让其重新生成
				distributor.EXPECT().
					DistributeTaskInvalidateRouteCache(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "RouteInProgress",
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(courier, nil)

				store.EXPECT().
					GetRouteCacheEntry(gomock.Any(), gomock.Eq(courier.ID)).
					Times(1).
					Return(freshCacheEntryFor(t, courier, claimablePreview(taskID)), nil)

				store.EXPECT().
					GetDeliveryTask(gomock.Any(), gomock.Eq(taskID)).
					Times(1).
					Return(db.DeliveryTask{ID: taskID}, nil)

				store.EXPECT().
					ClaimRouteTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.ClaimRouteTxResult{}, db.ErrRouteInProgress)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "PreviewExpired",
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(courier, nil)

				expired := freshCacheEntryFor(t, courier, claimablePreview(taskID))
				expired.NeedsRevalidation = true
				store.EXPECT().
					GetRouteCacheEntry(gomock.Any(), gomock.Eq(courier.ID)).
					Times(1).
					Return(expired, nil)

				store.EXPECT().
					ClaimRouteTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusGone, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			tc.buildStubs(store, distributor)

			server := newTestServerWithDistributor(t, store, distributor)
			recorder := httptest.NewRecorder()

			body, err := json.Marshal(map[string]interface{}{
				"bucket_minutes": 60,
				"longitude":      testLongitude,
				"latitude":       testLatitude,
			})
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/routes/claim", bytes.NewReader(body))
			require.NoError(t, err)
			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, userID, time.Minute)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestReportStopProgressAPI(t *testing.T) {
	userID := int64(303)
	courier := randomCourier(userID)
	routeID := int64(1)
	stopID := int64(12)

	progressURL := func(action string) (string, []byte) {
		body, _ := json.Marshal(map[string]interface{}{"action": action})
		return fmt.Sprintf("/v1/routes/%d/stops/%d/progress", routeID, stopID), body
	}

	t.Run("CompleteDeliveryNotifiesEarnings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		distributor := mockwk.NewMockTaskDistributor(ctrl)

		store.EXPECT().
			GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
			Times(1).
			Return(courier, nil)

		result := db.RouteProgressTxResult{
			Route: db.CourierRoute{ID: routeID, CourierID: courier.ID, Status: db.RouteStatusCompleted, ActualEarnings: 800},
			Stop: db.RouteStop{
				ID:     stopID,
				Kind:   db.StopKindDelivery,
				TaskID: pgtype.Int8{Int64: 7, Valid: true},
				Status: db.StopStatusCompleted,
			},
			EarningsDelta:  800,
			RouteCompleted: true,
		}
		store.EXPECT().
			RouteProgressTx(gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ interface{}, arg db.RouteProgressTxParams) (db.RouteProgressTxResult, error) {
				require.Equal(t, db.StopActionCompleted, arg.Action)
				require.Equal(t, courier.ID, arg.CourierID)
				require.NotNil(t, arg.EstimateMinutes)
				return result, nil
			})

		distributor.EXPECT().
			DistributeTaskNotifyEarnings(gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ interface{}, payload *worker.PayloadNotifyEarnings, _ ...interface{}) error {
				require.Equal(t, courier.ID, payload.CourierID)
				require.Equal(t, int64(800), payload.Amount)
				require.Equal(t, int64(7), payload.TaskID)
				return nil
			})

		// 送达让所有骑手的缓存预览失效
		distributor.EXPECT().
			DistributeTaskInvalidateRouteCache(gomock.Any(), gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ interface{}, payload *worker.PayloadInvalidateRouteCache, _ ...interface{}) error {
				require.Equal(t, int64(0), payload.CourierID)
				require.Equal(t, "task_delivered", payload.Reason)
				return nil
			})

		server := newTestServerWithDistributor(t, store, distributor)
		recorder := httptest.NewRecorder()

		url, body := progressURL("completed")
		request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
		require.NoError(t, err)
		addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, userID, time.Minute)

		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp stopProgressResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.True(t, resp.RouteCompleted)
		require.Equal(t, int64(800), resp.EarningsDelta)
	})

	t.Run("ForeignCourierForbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)

		store.EXPECT().
			GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
			Times(1).
			Return(courier, nil)

		store.EXPECT().
			RouteProgressTx(gomock.Any(), gomock.Any()).
			Times(1).
			Return(db.RouteProgressTxResult{}, db.ErrNotRouteOwner)

		server := newTestServer(t, store)
		recorder := httptest.NewRecorder()

		url, body := progressURL("arrived")
		request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
		require.NoError(t, err)
		addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, userID, time.Minute)

		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("InvalidAction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().
			RouteProgressTx(gomock.Any(), gomock.Any()).
			Times(0)

		server := newTestServer(t, store)
		recorder := httptest.NewRecorder()

		url, body := progressURL("teleported")
		request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
		require.NoError(t, err)
		addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, userID, time.Minute)

		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAbandonRouteAPI(t *testing.T) {
	userID := int64(404)
	courier := randomCourier(userID)
	routeID := int64(9)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	distributor := mockwk.NewMockTaskDistributor(ctrl)

	store.EXPECT().
		GetCourierByUserID(gomock.Any(), gomock.Eq(userID)).
		Times(1).
		Return(courier, nil)

	store.EXPECT().
		AbandonRouteTx(gomock.Any(), gomock.Eq(db.AbandonRouteTxParams{
			RouteID:   routeID,
			CourierID: courier.ID,
			Reason:    "车坏了",
		})).
		Times(1).
		Return(db.AbandonRouteTxResult{
			Route:           db.CourierRoute{ID: routeID, CourierID: courier.ID, Status: db.RouteStatusAbandoned},
			ReleasedTaskIDs: []int64{7, 8},
		}, nil)

	// 释放了任务，全量失效缓存
	distributor.EXPECT().
		DistributeTaskInvalidateRouteCache(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return(nil)

	store.EXPECT().
		ListRouteStops(gomock.Any(), gomock.Eq(routeID)).
		Times(1).
		Return([]db.RouteStop{}, nil)

	server := newTestServerWithDistributor(t, store, distributor)
	recorder := httptest.NewRecorder()

	body, err := json.Marshal(map[string]interface{}{"reason": "车坏了"})
	require.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, fmt.Sprintf("/v1/routes/%d/abandon", routeID), bytes.NewReader(body))
	require.NoError(t, err)
	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, userID, time.Minute)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp routeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, db.RouteStatusAbandoned, resp.Status)
}
