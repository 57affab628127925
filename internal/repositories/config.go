package repositories

import (
	"errors"
	"strings"
)

// Config represents item store configuration
type Config struct {
	// Type selects the backend (dynamodb, sqlite, badger, memory)
	Type StoreType `json:"type" yaml:"type"`

	// TableName is the DynamoDB table, SQLite table or badger key prefix
	TableName string `json:"table_name" yaml:"table_name"`

	// DynamoDB configuration
	DynamoDB DynamoDBConfig `json:"dynamodb" yaml:"dynamodb"`

	// SQLitePath is the database file path (for SQLite)
	SQLitePath string `json:"sqlite_path" yaml:"sqlite_path"`

	// BadgerPath is the badger data directory; empty runs badger in memory
	BadgerPath string `json:"badger_path" yaml:"badger_path"`
}

// DynamoDBConfig represents DynamoDB client configuration
type DynamoDBConfig struct {
	// Region is the AWS region of the table
	Region string `json:"region" yaml:"region"`

	// Endpoint overrides the service endpoint (DynamoDB Local, LocalStack)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// MaxAttempts bounds the SDK retryer; zero keeps the SDK default
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`
}

// DefaultConfig returns the default store configuration
func DefaultConfig() *Config {
	return &Config{
		Type:      StoreTypeDynamoDB,
		TableName: "ItemsTable",
		DynamoDB: DynamoDBConfig{
			Region:      "ap-south-1",
			MaxAttempts: 3,
		},
		SQLitePath: "./data/items.db",
		BadgerPath: "./data/badger",
	}
}

// Validate validates the store configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TableName) == "" {
		return errors.New("table name is required")
	}

	switch c.Type {
	case StoreTypeDynamoDB:
		if c.DynamoDB.Region == "" {
			return errors.New("dynamodb region is required")
		}
		if c.DynamoDB.MaxAttempts < 0 {
			return errors.New("dynamodb max attempts cannot be negative")
		}
	case StoreTypeSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite path is required")
		}
	case StoreTypeBadger, StoreTypeMemory:
	default:
		return ErrUnsupported
	}

	return nil
}
