package glacierclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/glacier"
	"github.com/aws/aws-sdk-go-v2/service/glacier/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	appConfig "glacierprune/config"
	"glacierprune/internal/models"
	"glacierprune/pkg/utils"
)

// accountID "-" means the account owning the credentials.
const accountID = "-"

type Client struct {
	glacierClient *glacier.Client
	config        *appConfig.Config
}

func New(cfg *appConfig.Config) (*Client, error) {
	var loadOptions []func(*config.LoadOptions) error

	if cfg.Region != "" {
		loadOptions = append(loadOptions, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOptions = append(loadOptions, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOptions = append(loadOptions, config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
			},
		}))
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(), loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.RoleARN != "" {
		stsClient := sts.NewFromConfig(awsConfig)
		provider := stscreds.NewAssumeRoleProvider(stsClient, cfg.RoleARN, func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = "glacierprune"
		})
		awsConfig.Credentials = aws.NewCredentialsCache(provider)
	}

	var glacierClient *glacier.Client
	if cfg.ApiURL != "" {
		glacierClient = glacier.NewFromConfig(awsConfig, func(o *glacier.Options) {
			o.BaseEndpoint = aws.String(cfg.ApiURL)
		})
	} else {
		glacierClient = glacier.NewFromConfig(awsConfig)
	}

	return &Client{
		glacierClient: glacierClient,
		config:        cfg,
	}, nil
}

// InitiateInventoryJob starts a JSON-format inventory-retrieval job and
// returns its job id. The job can take hours to complete.
func (c *Client) InitiateInventoryJob(ctx context.Context, vaultName string) (string, error) {
	resp, err := c.glacierClient.InitiateJob(ctx, &glacier.InitiateJobInput{
		AccountId: aws.String(accountID),
		VaultName: aws.String(vaultName),
		JobParameters: &types.JobParameters{
			Type:   aws.String("inventory-retrieval"),
			Format: aws.String("JSON"),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to initiate inventory-retrieval job: %w", err)
	}
	return aws.ToString(resp.JobId), nil
}

func (c *Client) DescribeJob(ctx context.Context, vaultName, jobID string) (*models.JobStatus, error) {
	resp, err := c.glacierClient.DescribeJob(ctx, &glacier.DescribeJobInput{
		AccountId: aws.String(accountID),
		VaultName: aws.String(vaultName),
		JobId:     aws.String(jobID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe job %s: %w", jobID, err)
	}
	return &models.JobStatus{
		Code:    string(resp.StatusCode),
		Message: aws.ToString(resp.StatusMessage),
	}, nil
}

// FetchInventory downloads and decodes the output of a completed
// inventory-retrieval job.
func (c *Client) FetchInventory(ctx context.Context, vaultName, jobID string) (*models.Inventory, error) {
	resp, err := c.glacierClient.GetJobOutput(ctx, &glacier.GetJobOutputInput{
		AccountId: aws.String(accountID),
		VaultName: aws.String(vaultName),
		JobId:     aws.String(jobID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get output of job %s: %w", jobID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read job output: %w", err)
	}

	var inventory models.Inventory
	if err := json.Unmarshal(body, &inventory); err != nil {
		return nil, fmt.Errorf("failed to decode inventory JSON: %w", err)
	}
	return &inventory, nil
}

func (c *Client) DeleteArchive(ctx context.Context, vaultName, archiveID string) error {
	_, err := c.glacierClient.DeleteArchive(ctx, &glacier.DeleteArchiveInput{
		AccountId: aws.String(accountID),
		VaultName: aws.String(vaultName),
		ArchiveId: aws.String(archiveID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete archive %s: %w", archiveID, err)
	}
	return nil
}

func (c *Client) DescribeVault(ctx context.Context, vaultName string) (*models.VaultInfo, error) {
	resp, err := c.glacierClient.DescribeVault(ctx, &glacier.DescribeVaultInput{
		AccountId: aws.String(accountID),
		VaultName: aws.String(vaultName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe vault %s: %w", vaultName, err)
	}

	return &models.VaultInfo{
		VaultName:         aws.ToString(resp.VaultName),
		VaultARN:          aws.ToString(resp.VaultARN),
		CreationDate:      aws.ToString(resp.CreationDate),
		LastInventoryDate: aws.ToString(resp.LastInventoryDate),
		NumberOfArchives:  resp.NumberOfArchives,
		SizeInBytes:       resp.SizeInBytes,
		SizeHuman:         utils.FormatBytes(resp.SizeInBytes),
		APIEndpoint:       c.config.ApiURL,
	}, nil
}
