package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type SQSConfig struct {
	Region    string
	AccessKey string
	SecretKey string

	NotificationQueueURL string
	EmailQueueURL        string
}

// SQSPublisher publishes to the two SQS queues.
type SQSPublisher struct {
	client    *sqs.Client
	queueURLs map[Channel]string
}

func NewSQSPublisher(cfg SQSConfig) (*SQSPublisher, error) {
	ctx := context.Background()

	var awsCfg aws.Config
	var err error

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		awsCfg, err = awscfg.LoadDefaultConfig(ctx,
			awscfg.WithRegion(cfg.Region),
			awscfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
		)
	} else {
		awsCfg, err = awscfg.LoadDefaultConfig(ctx,
			awscfg.WithRegion(cfg.Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SQSPublisher{
		client: sqs.NewFromConfig(awsCfg),
		queueURLs: map[Channel]string{
			ChannelNotification: cfg.NotificationQueueURL,
			ChannelEmail:        cfg.EmailQueueURL,
		},
	}, nil
}

func (p *SQSPublisher) Publish(ctx context.Context, channel Channel, msg Message) error {
	queueURL, ok := p.queueURLs[channel]
	if !ok || queueURL == "" {
		return fmt.Errorf("no queue configured for channel %q", channel)
	}

	_, err := p.client.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: aws.String(queueURL),
		Entries: []types.SendMessageBatchRequestEntry{
			{
				Id:          aws.String(msg.ID),
				MessageBody: aws.String(msg.Body),
			},
		},
	})
	return err
}

var _ Publisher = (*SQSPublisher)(nil)
