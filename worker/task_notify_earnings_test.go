package worker_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	mockdb "github.com/merrydance/routeplan/db/mock"
	"github.com/merrydance/routeplan/worker"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProcessTaskNotifyEarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)

	// 未连接Redis时只消费任务，不做推送
	processor := worker.NewTestTaskProcessor(store, nil)

	payload := worker.PayloadNotifyEarnings{
		CourierID: 100,
		RouteID:   7,
		TaskID:    42,
		Amount:    800,
	}
	jsonPayload, err := json.Marshal(payload)
	require.NoError(t, err)

	task := asynq.NewTask(worker.TaskNotifyEarnings, jsonPayload)
	err = processor.ProcessTaskNotifyEarnings(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTaskNotifyEarningsBadPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	processor := worker.NewTestTaskProcessor(store, nil)

	task := asynq.NewTask(worker.TaskNotifyEarnings, []byte("not json"))
	err := processor.ProcessTaskNotifyEarnings(context.Background(), task)
	require.Error(t, err)
	require.ErrorIs(t, err, asynq.SkipRetry)
}
