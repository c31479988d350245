// file: rsp_client.go
package rsp

import (
	"context"

	. "github.com/remote-scripting-protocol/go-rsp/src/rpc"

	"github.com/remote-scripting-protocol/go-rsp/src/config"
	"github.com/remote-scripting-protocol/go-rsp/src/facades"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/manual"
	"github.com/remote-scripting-protocol/go-rsp/src/registry"
	"github.com/remote-scripting-protocol/go-rsp/src/sdk"
	"github.com/remote-scripting-protocol/go-rsp/src/search"
)

// ClientInterface defines the public API a dispatcher consumes.
type ClientInterface interface {
	GetMethodDescriptor(name string) *MethodDescriptor
	CollectMethodDescriptors() []MethodDescriptor
	CollectSupportedMethodDescriptors() []MethodDescriptor
	CollectStartEventMethodDescriptors() map[string]MethodDescriptor
	CollectStopEventMethodDescriptors() map[string]MethodDescriptor
	SearchMethods(ctx context.Context, query string, limit int) ([]MethodDescriptor, error)
	Manual() manual.Manual
}

// Client owns the built registry and the search strategy over it. Everything
// behind it is immutable after NewClient returns.
type Client struct {
	config         *config.RegistryConfig
	registry       *registry.Registry
	searchStrategy *search.MethodSearchStrategy
}

// NewClient resolves the sdk level, assembles the facade roster from config
// (or the default roster), and builds the registry. Any build failure —
// duplicate method name, duplicate event binding, malformed table entry,
// unknown configured facade — is returned as-is; the client never comes up
// partially initialized.
func NewClient(ctx context.Context, cfg *config.RegistryConfig) (*Client, error) {
	if cfg == nil {
		cfg = config.NewRegistryConfig()
	}

	level := sdk.FromEnv()
	if cfg.SdkLevel != nil {
		level = sdk.Level(*cfg.SdkLevel)
	}

	var roster []base.Facade
	if len(cfg.Facades) > 0 {
		resolved, err := facades.ByName(cfg.Facades)
		if err != nil {
			return nil, err
		}
		roster = resolved
	} else {
		roster = facades.DefaultSet(level)
	}

	reg, err := registry.New(level, roster)
	if err != nil {
		return nil, err
	}

	return &Client{
		config:         cfg,
		registry:       reg,
		searchStrategy: search.NewMethodSearchStrategy(reg, 1.0),
	}, nil
}

// Registry exposes the underlying registry for collaborators that want the
// raw accessors.
func (c *Client) Registry() *registry.Registry {
	return c.registry
}

func (c *Client) GetMethodDescriptor(name string) *MethodDescriptor {
	return c.registry.GetMethodDescriptor(name)
}

func (c *Client) CollectMethodDescriptors() []MethodDescriptor {
	return c.registry.CollectMethodDescriptors()
}

func (c *Client) CollectSupportedMethodDescriptors() []MethodDescriptor {
	return c.registry.CollectSupportedMethodDescriptors()
}

func (c *Client) CollectStartEventMethodDescriptors() map[string]MethodDescriptor {
	return c.registry.CollectStartEventMethodDescriptors()
}

func (c *Client) CollectStopEventMethodDescriptors() map[string]MethodDescriptor {
	return c.registry.CollectStopEventMethodDescriptors()
}

func (c *Client) SearchMethods(ctx context.Context, query string, limit int) ([]MethodDescriptor, error) {
	return c.searchStrategy.SearchMethods(ctx, query, limit)
}

// Manual returns the discovery manual for the supported surface.
func (c *Client) Manual() manual.Manual {
	return manual.FromRegistry(c.registry)
}
