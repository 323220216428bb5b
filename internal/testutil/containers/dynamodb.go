//go:build integration

package containers

import (
	"context"
	"testing"

	appconfig "repasse_imoveis/internal/infrastructure/config"
	"repasse_imoveis/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// DynamoDBContainer wraps a DynamoDB Local instance with every service table created.
type DynamoDBContainer struct {
	Container testcontainers.Container
	Endpoint  string
	Client    *dynamodb.Client
	Tables    appconfig.TableNames
}

// TestTables returns table names unique to one test so tests can share a container.
func TestTables(prefix string) appconfig.TableNames {
	return appconfig.TableNames{
		Invoices:          prefix + "_invoices",
		Settlements:       prefix + "_settlements",
		Payouts:           prefix + "_owner_payouts",
		Contracts:         prefix + "_contracts",
		Owners:            prefix + "_owners",
		RetentionConfigs:  prefix + "_retention_configs",
		CorrectionIndexes: prefix + "_correction_indexes",
	}
}

// NewDynamoDBContainer starts DynamoDB Local in memory and creates the tables.
func NewDynamoDBContainer(t *testing.T, tables appconfig.TableNames) *DynamoDBContainer {
	t.Helper()

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:2.5.2",
			ExposedPorts: []string{"8000/tcp"},
			Cmd:          []string{"-jar", "DynamoDBLocal.jar", "-inMemory", "-sharedDb"},
			WaitingFor:   wait.ForListeningPort("8000/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start dynamodb container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.PortEndpoint(ctx, "8000/tcp", "http")
	if err != nil {
		t.Fatalf("failed to get dynamodb endpoint: %v", err)
	}

	client, err := database.ConnectDynamoDB(ctx, appconfig.DynamoDBConfig{
		Region:          "us-east-1",
		Endpoint:        endpoint,
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	if err != nil {
		t.Fatalf("failed to connect to dynamodb: %v", err)
	}

	if err := database.EnsureTables(ctx, client, tables, zap.NewNop()); err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}

	return &DynamoDBContainer{
		Container: container,
		Endpoint:  endpoint,
		Client:    client,
		Tables:    tables,
	}
}
