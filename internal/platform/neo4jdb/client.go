package neo4jdb

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/vocabgraph/internal/platform/envutil"
	"github.com/yungbote/vocabgraph/internal/platform/logger"
)

type Config struct {
	URI      string `yaml:"uri"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`

	TimeoutSeconds int `yaml:"timeout_seconds"`
	MaxPoolSize    int `yaml:"max_pool_size"`
}

// ApplyEnv fills empty fields from the environment, so credentials can
// stay out of the config file.
func (c *Config) ApplyEnv() {
	if c.URI == "" {
		c.URI = envutil.String("NEO4J_URI", "bolt://localhost:7687")
	}
	if c.User == "" {
		c.User = envutil.String("NEO4J_USER", "neo4j")
	}
	if c.Password == "" {
		c.Password = envutil.String("NEO4J_PASSWORD", "")
	}
	if c.Database == "" {
		c.Database = envutil.String("NEO4J_DATABASE", "")
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = envutil.Int("NEO4J_TIMEOUT_SECONDS", 10)
	}
	if c.MaxPoolSize <= 0 {
		c.MaxPoolSize = envutil.Int("NEO4J_MAX_POOL_SIZE", 50)
	}
}

type Client struct {
	Driver   neo4j.DriverWithContext
	Database string
	log      *logger.Logger
}

func New(cfg Config, log *logger.Logger) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("neo4jdb: logger required")
	}
	if cfg.URI == "" {
		return nil, fmt.Errorf("neo4jdb: uri required")
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	auth := neo4j.BasicAuth(cfg.User, cfg.Password, "")
	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth, func(c *neo4j.Config) {
		if cfg.MaxPoolSize > 0 {
			c.MaxConnectionPoolSize = cfg.MaxPoolSize
		}
		c.SocketConnectTimeout = timeout
	})
	if err != nil {
		return nil, fmt.Errorf("neo4jdb: init driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4jdb: verify connectivity: %w", err)
	}

	return &Client{
		Driver:   driver,
		Database: cfg.Database,
		log:      log.With("client", "Neo4jDB"),
	}, nil
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := c.Driver.Close(ctx)
	c.Driver = nil
	return err
}
