//go:build unit

package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"dish-studio/internal/pkg/clock"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCloudWatch struct {
	mock.Mock
}

func (m *MockCloudWatch) PutMetricData(ctx context.Context, in *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*cloudwatch.PutMetricDataOutput)
	return out, args.Error(1)
}

func TestCloudWatchSinkRecord(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	client := &MockCloudWatch{}
	sink := NewCloudWatchSink(client, "DishStudio", clock.NewMockClock(now))

	var got *cloudwatch.PutMetricDataInput
	client.On("PutMetricData", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(*cloudwatch.PutMetricDataInput) }).
		Return(&cloudwatch.PutMetricDataOutput{}, nil)

	sink.Record(context.Background(), "retry")

	require.NotNil(t, got)
	assert.Equal(t, "DishStudio", aws.ToString(got.Namespace))
	require.Len(t, got.MetricData, 1)
	datum := got.MetricData[0]
	assert.Equal(t, "PipelineOutcome", aws.ToString(datum.MetricName))
	assert.Equal(t, "retry", aws.ToString(datum.Dimensions[0].Value))
	assert.Equal(t, types.StandardUnitCount, datum.Unit)
	assert.Equal(t, now, aws.ToTime(datum.Timestamp))
}

func TestCloudWatchSinkSwallowsErrors(t *testing.T) {
	client := &MockCloudWatch{}
	sink := NewCloudWatchSink(client, "DishStudio", clock.NewRealClock())
	client.On("PutMetricData", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

	assert.NotPanics(t, func() { sink.Record(context.Background(), "success") })
}

func TestNewCloudWatchSinkWithoutNamespaceIsNop(t *testing.T) {
	sink := NewCloudWatchSink(&MockCloudWatch{}, "", clock.NewRealClock())
	assert.IsType(t, nopSink{}, sink)
}
