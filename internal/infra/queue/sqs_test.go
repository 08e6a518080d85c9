//go:build unit

package queue

import (
	"context"
	"testing"
	"time"

	"dish-studio/internal/pkg/config"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSQS struct {
	mock.Mock
}

func (m *MockSQS) SendMessage(ctx context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*sqs.SendMessageOutput)
	return out, args.Error(1)
}

func (m *MockSQS) ReceiveMessage(ctx context.Context, in *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*sqs.ReceiveMessageOutput)
	return out, args.Error(1)
}

func (m *MockSQS) DeleteMessage(ctx context.Context, in *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*sqs.DeleteMessageOutput)
	return out, args.Error(1)
}

func (m *MockSQS) ChangeMessageVisibility(ctx context.Context, in *sqs.ChangeMessageVisibilityInput, _ ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*sqs.ChangeMessageVisibilityOutput)
	return out, args.Error(1)
}

func newTestSQSQueue(client *MockSQS) *SQSQueue {
	cfg := config.NewTestConfig()
	cfg.AWS.SQSQueueURL = "https://sqs.ap-northeast-1.amazonaws.com/000000000000/dish-generate.fifo"
	return NewSQSQueue(client, cfg)
}

func TestSQSQueueEnqueueUsesRequestIDForFIFOKeys(t *testing.T) {
	client := new(MockSQS)
	q := newTestSQSQueue(client)
	requestID := uuid.New()

	client.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
		return sdkaws.ToString(in.MessageGroupId) == requestID.String() &&
			sdkaws.ToString(in.MessageDeduplicationId) == requestID.String() &&
			sdkaws.ToString(in.MessageBody) == `{"requestId":"`+requestID.String()+`"}`
	})).Return(&sqs.SendMessageOutput{}, nil)

	require.NoError(t, q.Enqueue(context.Background(), requestID))
	client.AssertExpectations(t)
}

func TestSQSQueueEnqueueMapsAPIErrors(t *testing.T) {
	client := new(MockSQS)
	q := newTestSQSQueue(client)

	apiErr := &smithy.GenericAPIError{Code: "AWS.SimpleQueueService.NonExistentQueue", Message: "gone", Fault: smithy.FaultClient}
	client.On("SendMessage", mock.Anything, mock.Anything).Return(nil, apiErr)

	err := q.Enqueue(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSQSQueueReceive(t *testing.T) {
	client := new(MockSQS)
	q := newTestSQSQueue(client)
	requestID := uuid.New()

	client.On("ReceiveMessage", mock.Anything, mock.MatchedBy(func(in *sqs.ReceiveMessageInput) bool {
		return in.MaxNumberOfMessages == 10 && in.VisibilityTimeout == 60
	})).Return(&sqs.ReceiveMessageOutput{Messages: []sqstypes.Message{
		{
			MessageId:     sdkaws.String("m-1"),
			ReceiptHandle: sdkaws.String("rh-1"),
			Body:          sdkaws.String(`{"requestId":"` + requestID.String() + `"}`),
			Attributes:    map[string]string{"ApproximateReceiveCount": "3"},
		},
		{
			MessageId:     sdkaws.String("m-2"),
			ReceiptHandle: sdkaws.String("rh-2"),
			Body:          sdkaws.String(`not json`),
		},
	}}, nil)
	client.On("DeleteMessage", mock.Anything, mock.MatchedBy(func(in *sqs.DeleteMessageInput) bool {
		return sdkaws.ToString(in.ReceiptHandle) == "rh-2"
	})).Return(&sqs.DeleteMessageOutput{}, nil)

	jobs, err := q.Receive(context.Background(), 25)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, Job{Handle: "rh-1", RequestID: requestID, Attempt: 3}, jobs[0])
	client.AssertExpectations(t)
}

func TestSQSQueueRetryChangesVisibility(t *testing.T) {
	client := new(MockSQS)
	q := newTestSQSQueue(client)

	client.On("ChangeMessageVisibility", mock.Anything, mock.MatchedBy(func(in *sqs.ChangeMessageVisibilityInput) bool {
		return sdkaws.ToString(in.ReceiptHandle) == "rh-1" && in.VisibilityTimeout == 40
	})).Return(&sqs.ChangeMessageVisibilityOutput{}, nil)

	require.NoError(t, q.Retry(context.Background(), Job{Handle: "rh-1"}, 40*time.Second, nil))
	client.AssertExpectations(t)
}

func TestSQSQueueExtend(t *testing.T) {
	tests := []struct {
		name      string
		apiErr    error
		wantOwned bool
		wantErr   error
	}{
		{name: "visible handle renews the lease", wantOwned: true},
		{
			name:   "redelivered message is stale",
			apiErr: &smithy.GenericAPIError{Code: "ReceiptHandleIsInvalid", Message: "expired", Fault: smithy.FaultClient},
		},
		{
			name:    "throttling is an error",
			apiErr:  &smithy.GenericAPIError{Code: "RequestThrottled", Message: "slow down", Fault: smithy.FaultServer},
			wantErr: ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockSQS)
			q := newTestSQSQueue(client)

			var out *sqs.ChangeMessageVisibilityOutput
			if tt.apiErr == nil {
				out = &sqs.ChangeMessageVisibilityOutput{}
			}
			client.On("ChangeMessageVisibility", mock.Anything, mock.MatchedBy(func(in *sqs.ChangeMessageVisibilityInput) bool {
				return sdkaws.ToString(in.ReceiptHandle) == "rh-1" && in.VisibilityTimeout == 60
			})).Return(out, tt.apiErr)

			owned, err := q.Extend(context.Background(), Job{Handle: "rh-1"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOwned, owned)
			client.AssertExpectations(t)
		})
	}
}

func TestVisibilitySecondsClamps(t *testing.T) {
	assert.Equal(t, int32(0), visibilitySeconds(-time.Second))
	assert.Equal(t, int32(90), visibilitySeconds(90*time.Second))
	assert.Equal(t, int32(12*60*60), visibilitySeconds(48*time.Hour))
}
