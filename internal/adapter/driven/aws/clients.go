package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// costExplorerRegion pins the Cost Explorer and Organizations clients to the
// only region serving those APIs.
const costExplorerRegion = "us-east-1"

// Clients builds and caches the AWS service clients the notifier uses. The
// SDK v2 manages credentials through the loaded config, so one config is
// shared by every client.
type Clients struct {
	mu          sync.Mutex
	cfg         *aws.Config
	clientCache map[string]interface{}
}

// NewClients cria um novo cache de clientes AWS.
func NewClients() *Clients {
	return &Clients{
		clientCache: make(map[string]interface{}),
	}
}

func (c *Clients) awsConfig(ctx context.Context) (aws.Config, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg != nil {
		return *c.cfg, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	c.cfg = &cfg
	return cfg, nil
}

func (c *Clients) serviceClient(ctx context.Context, service string) (interface{}, error) {
	c.mu.Lock()
	if client, ok := c.clientCache[service]; ok {
		c.mu.Unlock()
		return client, nil
	}
	c.mu.Unlock()

	cfg, err := c.awsConfig(ctx)
	if err != nil {
		return nil, err
	}

	var client interface{}
	switch service {
	case "costexplorer":
		regionalCfg := cfg.Copy()
		regionalCfg.Region = costExplorerRegion
		client = costexplorer.NewFromConfig(regionalCfg)
	case "organizations":
		regionalCfg := cfg.Copy()
		regionalCfg.Region = costExplorerRegion
		client = organizations.NewFromConfig(regionalCfg)
	case "sns":
		client = sns.NewFromConfig(cfg)
	case "sts":
		client = sts.NewFromConfig(cfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	c.mu.Lock()
	c.clientCache[service] = client
	c.mu.Unlock()

	return client, nil
}

// CostExplorer returns the shared Cost Explorer client.
func (c *Clients) CostExplorer(ctx context.Context) (*costexplorer.Client, error) {
	client, err := c.serviceClient(ctx, "costexplorer")
	if err != nil {
		return nil, err
	}
	return client.(*costexplorer.Client), nil
}

// Organizations returns the shared Organizations client.
func (c *Clients) Organizations(ctx context.Context) (*organizations.Client, error) {
	client, err := c.serviceClient(ctx, "organizations")
	if err != nil {
		return nil, err
	}
	return client.(*organizations.Client), nil
}

// SNS returns the shared SNS client.
func (c *Clients) SNS(ctx context.Context) (*sns.Client, error) {
	client, err := c.serviceClient(ctx, "sns")
	if err != nil {
		return nil, err
	}
	return client.(*sns.Client), nil
}

// STS returns the shared STS client.
func (c *Clients) STS(ctx context.Context) (*sts.Client, error) {
	client, err := c.serviceClient(ctx, "sts")
	if err != nil {
		return nil, err
	}
	return client.(*sts.Client), nil
}
