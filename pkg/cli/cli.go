// Package cli runs named commands with per-command flag sets.
package cli

import (
	"github.com/shuldan/formkit/pkg/contracts"
)

type cli struct {
	registry    contracts.CliRegistry
	cmdExecutor *cmdExecutor
}

// New builds a Cli over registry, creating an empty registry when nil.
func New(registry contracts.CliRegistry) contracts.Cli {
	if registry == nil {
		registry = NewRegistry()
	}

	return &cli{
		registry:    registry,
		cmdExecutor: newExecutor(newParser(registry)),
	}
}

func (c *cli) Register(cmd contracts.CliCommand) error {
	return c.registry.Register(cmd)
}

func (c *cli) Run(ctx contracts.CliContext) error {
	return c.cmdExecutor.Execute(ctx)
}
