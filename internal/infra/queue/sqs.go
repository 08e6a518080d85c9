package queue

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"dish-studio/internal/infra/awsclient"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/errs"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

const (
	sqsMaxBatch         = 10
	sqsMaxVisibility    = 12 * time.Hour
	sqsReceiveCountAttr = "ApproximateReceiveCount"
)


// SQSQueue targets a FIFO queue. The request id is both the group id and the
// deduplication id, which gives a 5 minute dedup window; the request row
// state is what keeps late duplicates harmless.
type SQSQueue struct {
	client   awsclient.SQSAPI
	queueURL string
	lease    time.Duration
	waitTime int32
}

func NewSQSQueue(client awsclient.SQSAPI, cfg config.Config) *SQSQueue {
	wait := int32(cfg.Worker.PollInterval / time.Second)
	if wait > 20 {
		wait = 20
	}
	return &SQSQueue{
		client:   client,
		queueURL: cfg.AWS.SQSQueueURL,
		lease:    cfg.Queue.Lease,
		waitTime: wait,
	}
}

func (q *SQSQueue) Enqueue(ctx context.Context, requestID uuid.UUID) error {
	body, err := encodePayload(requestID)
	if err != nil {
		return err
	}
	key := requestID.String()
	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:               &q.queueURL,
		MessageBody:            sdkaws.String(string(body)),
		MessageGroupId:         &key,
		MessageDeduplicationId: &key,
	})
	if err != nil {
		return wrapSQSErr("send message", err)
	}
	return nil
}

func (q *SQSQueue) Receive(ctx context.Context, max int) ([]Job, error) {
	if max > sqsMaxBatch {
		max = sqsMaxBatch
	}
	out, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            &q.queueURL,
		MaxNumberOfMessages: int32(max),
		WaitTimeSeconds:     q.waitTime,
		VisibilityTimeout:   visibilitySeconds(q.lease),
		MessageSystemAttributeNames: []sqstypes.MessageSystemAttributeName{
			sqstypes.MessageSystemAttributeNameApproximateReceiveCount,
		},
	})
	if err != nil {
		return nil, wrapSQSErr("receive message", err)
	}

	jobs := make([]Job, 0, len(out.Messages))
	for _, m := range out.Messages {
		job := Job{Handle: sdkaws.ToString(m.ReceiptHandle), Attempt: 1}
		if n, err := strconv.Atoi(m.Attributes[sqsReceiveCountAttr]); err == nil {
			job.Attempt = n
		}
		requestID, err := decodePayload([]byte(sdkaws.ToString(m.Body)))
		if err != nil {
			slog.ErrorContext(ctx, "burying malformed message", "message_id", sdkaws.ToString(m.MessageId), "error", err)
			if berr := q.Bury(ctx, job, err); berr != nil {
				return nil, berr
			}
			continue
		}
		job.RequestID = requestID
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Extend restarts the visibility timeout. A handle SQS no longer honours
// means the message was redelivered to someone else.
func (q *SQSQueue) Extend(ctx context.Context, job Job) (bool, error) {
	_, err := q.client.ChangeMessageVisibility(ctx, &sqs.ChangeMessageVisibilityInput{
		QueueUrl:          &q.queueURL,
		ReceiptHandle:     &job.Handle,
		VisibilityTimeout: visibilitySeconds(q.lease),
	})
	if err == nil {
		return true, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ReceiptHandleIsInvalid", "MessageNotInflight", "AWS.SimpleQueueService.MessageNotInflight":
			return false, nil
		}
	}
	return false, wrapSQSErr("extend visibility", err)
}

func (q *SQSQueue) Ack(ctx context.Context, job Job) error {
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &q.queueURL,
		ReceiptHandle: &job.Handle,
	})
	if err != nil {
		return wrapSQSErr("delete message", err)
	}
	return nil
}

// Retry shortens the visibility timeout so the message reappears after delay.
func (q *SQSQueue) Retry(ctx context.Context, job Job, delay time.Duration, _ error) error {
	_, err := q.client.ChangeMessageVisibility(ctx, &sqs.ChangeMessageVisibilityInput{
		QueueUrl:          &q.queueURL,
		ReceiptHandle:     &job.Handle,
		VisibilityTimeout: visibilitySeconds(delay),
	})
	if err != nil {
		return wrapSQSErr("change visibility", err)
	}
	return nil
}

// Bury deletes the message; the request row already records the failure.
func (q *SQSQueue) Bury(ctx context.Context, job Job, cause error) error {
	slog.WarnContext(ctx, "burying message", "request_id", job.RequestID, "attempt", job.Attempt, "cause", causeText(cause))
	return q.Ack(ctx, job)
}

func visibilitySeconds(d time.Duration) int32 {
	if d < 0 {
		d = 0
	}
	if d > sqsMaxVisibility {
		d = sqsMaxVisibility
	}
	return int32(d / time.Second)
}

func wrapSQSErr(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		slog.Error("sqs api error", "op", op, "code", apiErr.ErrorCode(), "fault", apiErr.ErrorFault().String())
	}
	return errs.Mark(errs.Wrap(err, op), ErrUnavailable)
}
