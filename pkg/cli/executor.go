package cli

import "github.com/shuldan/formkit/pkg/contracts"

type cmdExecutor struct {
	parser *cmdParser
}

func newExecutor(parser *cmdParser) *cmdExecutor {
	return &cmdExecutor{
		parser: parser,
	}
}

func (e *cmdExecutor) Execute(commandCtx contracts.CliContext) error {
	if err := commandCtx.Ctx().Err(); err != nil {
		return err
	}

	if len(commandCtx.Args()) == 0 {
		return ErrNoCommandSpecified
	}

	parsed, err := e.parser.Parse(commandCtx.Args(), commandCtx.Output())
	if err != nil {
		return err
	}

	parsedCtx := NewContext(
		commandCtx.Ctx(),
		commandCtx.Input(),
		commandCtx.Output(),
		parsed.Args,
	)

	if err = parsed.Command.Validate(parsedCtx); err != nil {
		return ErrCommandValidation.WithDetail("command", parsed.Command.Name()).WithCause(err)
	}

	if err = parsedCtx.Ctx().Err(); err != nil {
		return err
	}

	if err = parsed.Command.Execute(parsedCtx); err != nil {
		return ErrCommandExecution.WithDetail("command", parsed.Command.Name()).WithCause(err)
	}

	return nil
}
