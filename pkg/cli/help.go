package cli

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
	"text/template"

	"github.com/shuldan/formkit/pkg/contracts"
)

const helpTemplate = `Usage: {{ .Program }} <command> [options] [arguments]
{{ range .Groups }}
{{ .Name }}:{{ range .Commands }}
  {{ .PaddedName }}  {{ .Description }}{{ end }}
{{ end }}`

type HelpCommand struct {
	registry contracts.CliRegistry
	program  string
	command  string
}

func NewHelpCommand(registry contracts.CliRegistry, program string) contracts.CliCommand {
	return &HelpCommand{
		registry: registry,
		program:  program,
	}
}

func (h *HelpCommand) Name() string {
	return "help"
}

func (h *HelpCommand) Description() string {
	return "Display help for commands"
}

func (h *HelpCommand) Group() string {
	return contracts.SystemCliGroup
}

func (h *HelpCommand) Configure(flags *flag.FlagSet) {
	flags.StringVar(&h.command, "command", "", "Show help for specific command")
}

func (h *HelpCommand) Validate(ctx contracts.CliContext) error {
	if h.command == "" && len(ctx.Args()) > 0 {
		h.command = ctx.Args()[0]
	}
	return nil
}

func (h *HelpCommand) Execute(ctx contracts.CliContext) error {
	if h.command != "" {
		return h.showCommandHelp(ctx, h.command)
	}
	return h.showGeneralHelp(ctx)
}

type printableGroup struct {
	Name     string
	Commands []PrintableCommand
}

type PrintableCommand struct {
	PaddedName  string
	Description string
}

func (h *HelpCommand) showGeneralHelp(ctx contracts.CliContext) error {
	groups := h.registry.Groups()

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	data := struct {
		Program string
		Groups  []printableGroup
	}{
		Program: h.program,
	}

	for _, groupName := range names {
		commands := groups[groupName]
		longest := 0
		for _, cmd := range commands {
			if len(cmd.Name()) > longest {
				longest = len(cmd.Name())
			}
		}

		formatter := "%-" + strconv.Itoa(longest) + "s"
		group := printableGroup{Name: groupName}
		for _, cmd := range commands {
			group.Commands = append(group.Commands, PrintableCommand{
				PaddedName:  fmt.Sprintf(formatter, cmd.Name()),
				Description: cmd.Description(),
			})
		}
		data.Groups = append(data.Groups, group)
	}

	tmpl := template.Must(template.New("help").Parse(helpTemplate))
	return tmpl.Execute(ctx.Output(), data)
}

func (h *HelpCommand) showCommandHelp(ctx contracts.CliContext, commandName string) error {
	command, exists := h.registry.Get(commandName)
	if !exists || command == nil {
		return ErrHelpCommandNotFound.WithDetail("command", commandName)
	}

	output := ctx.Output()
	if _, err := fmt.Fprintf(output, "%s - %s\n\n", command.Name(), command.Description()); err != nil {
		return ErrCommandExecution.WithDetail("command", command.Name()).WithCause(err)
	}

	flags := flag.NewFlagSet(command.Name(), flag.ContinueOnError)
	flags.SetOutput(output)
	command.Configure(flags)

	if _, err := fmt.Fprintf(output, "Options:\n"); err != nil {
		return ErrCommandExecution.WithDetail("command", command.Name()).WithCause(err)
	}

	flags.PrintDefaults()

	return nil
}
