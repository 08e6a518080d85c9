package worker

import (
	"context"
	"log/slog"
	"time"

	"dish-studio/internal/infra/awsclient"
	"dish-studio/internal/pkg/clock"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// CloudWatchSink mirrors pipeline outcomes as a CloudWatch count metric.
// Failures are logged and dropped.
type CloudWatchSink struct {
	client    awsclient.CloudWatchAPI
	namespace string
	clock     clock.Clock
}

func NewCloudWatchSink(client awsclient.CloudWatchAPI, namespace string, clk clock.Clock) OutcomeSink {
	if client == nil || namespace == "" {
		return NopSink()
	}
	return &CloudWatchSink{client: client, namespace: namespace, clock: clk}
}

func (s *CloudWatchSink) Record(ctx context.Context, outcome string) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(s.namespace),
		MetricData: []types.MetricDatum{{
			MetricName: aws.String("PipelineOutcome"),
			Dimensions: []types.Dimension{{
				Name:  aws.String("Outcome"),
				Value: aws.String(outcome),
			}},
			Timestamp: aws.Time(s.clock.Now()),
			Unit:      types.StandardUnitCount,
			Value:     aws.Float64(1),
		}},
	})
	if err != nil {
		slog.WarnContext(ctx, "cloudwatch put failed", "outcome", outcome, "error", err)
	}
}
