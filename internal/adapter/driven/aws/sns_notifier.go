package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
)

// SNSNotifier publishes the notification to an SNS topic, typically fanned
// out to email subscriptions.
type SNSNotifier struct {
	clients  *Clients
	topicARN string
}

// NewSNSNotifier cria o canal de publicação em tópico SNS.
func NewSNSNotifier(clients *Clients, topicARN string) repository.Notifier {
	return &SNSNotifier{clients: clients, topicARN: topicARN}
}

func (n *SNSNotifier) Name() string { return "sns" }

func (n *SNSNotifier) Notify(ctx context.Context, title, body string) error {
	client, err := n.clients.SNS(ctx)
	if err != nil {
		return err
	}

	_, err = client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(title),
		Message:  aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("publishing to topic %s: %w", n.topicARN, err)
	}
	return nil
}
