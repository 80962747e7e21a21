package cli

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/shuldan/formkit/pkg/contracts"
)

const defaultGroup = "general"

type cmdRegistry struct {
	mutex    sync.RWMutex
	commands map[string]contracts.CliCommand
	groups   map[string][]string
}

func NewRegistry() contracts.CliRegistry {
	return &cmdRegistry{
		commands: make(map[string]contracts.CliCommand),
		groups:   make(map[string][]string),
	}
}

// Register adds command under its group, or "general" when it has none.
// Names must be usable as the first argument: non-empty, no whitespace and
// no leading dash.
func (r *cmdRegistry) Register(command contracts.CliCommand) error {
	if command == nil {
		return ErrCommandRegistration.WithDetail("command", "nil")
	}

	name := command.Name()
	if reason := invalidName(name); reason != "" {
		return ErrCommandRegistration.WithDetail("command", name).WithDetail("reason", reason)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.commands[name]; exists {
		return ErrCommandRegistration.WithDetail("command", name).WithDetail("reason", "already registered")
	}
	r.commands[name] = command

	group := command.Group()
	if group == "" {
		group = defaultGroup
	}
	r.groups[group] = append(r.groups[group], name)

	return nil
}

func invalidName(name string) string {
	switch {
	case name == "":
		return "empty name"
	case strings.HasPrefix(name, "-"):
		return "leading dash"
	case strings.ContainsFunc(name, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }):
		return "whitespace in name"
	}
	return ""
}

func (r *cmdRegistry) Get(name string) (contracts.CliCommand, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	command, exists := r.commands[name]
	return command, exists
}

func (r *cmdRegistry) All() map[string]contracts.CliCommand {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return maps.Clone(r.commands)
}

// Groups returns the commands of each group sorted by name.
func (r *cmdRegistry) Groups() map[string][]contracts.CliCommand {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make(map[string][]contracts.CliCommand, len(r.groups))
	for group, names := range r.groups {
		sorted := slices.Sorted(slices.Values(names))
		commands := make([]contracts.CliCommand, 0, len(sorted))
		for _, name := range sorted {
			if command := r.commands[name]; command != nil {
				commands = append(commands, command)
			}
		}
		result[group] = commands
	}
	return result
}
