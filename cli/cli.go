package cli

import (
	"context"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/solstice-io/solstice/cli/cmd"
	"github.com/solstice-io/solstice/pkg"
	"github.com/solstice-io/solstice/resource"
)

// CLI is the top-level command-line interface for solstice.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Path       []string         `help:"Resource search path entries (directories or archives), prefixed onto $SOLSTICE_PATH" name:"path"       short:"I" type:"path"`
	Properties []string         `help:"YAML property source file(s) overlaid over the environment, in order"                 name:"properties" short:"P" type:"existingfile"`
	Version    kong.VersionFlag `help:"Print version and exit"                                                               name:"version"    short:"V"`

	Scan   cmd.Scan   `cmd:"" help:"Enumerate resources beneath a namespace"`
	Get    cmd.Get    `cmd:"" help:"Resolve a configuration property"`
	Keys   cmd.Keys   `cmd:"" help:"List resolvable property keys"`
	Browse cmd.Browse `cmd:"" help:"Browse properties interactively"`
	Init   cmd.Init   `cmd:"" help:"Write a starter property source file"`
}

// Run executes the solstice CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		"version":            strings.TrimSpace(pkg.Version),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless
	// of flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands.
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSearchPath(ctx,
		resource.SearchPath(os.Getenv(pkg.PathEnv), cli.Path...))
	ctx = cmd.WithPropertySources(ctx, cli.Properties)

	// Finalize logger configuration with all parsed values.
	cli.Log.start(ctx)

	// start is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command.
	return ktx.Run(ctx, &cli)
}
