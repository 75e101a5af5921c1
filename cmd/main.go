package main

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"

	"github.com/smarthome-go/starfield/starfield"
)

const programName = "starfield"
const version = "latest"
const envPrefix = "STARFIELD_"

func envVar(name string) []string {
	return []string{envPrefix + name}
}

// emitFlags returns a fresh flag set, the root command and `emit` cannot share flag instances.
func emitFlags() []cli.Flag {
	return []cli.Flag{
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "variant",
			Usage:   "Generation mode, see `variants`",
			Aliases: []string{"m"},
			Value:   starfield.DefaultVariant.String(),
			EnvVars: envVar("VARIANT"),
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "stars",
			Usage:   "Number of stars (N)",
			Aliases: []string{"n"},
			Value:   starfield.DefaultStars,
			EnvVars: envVar("STARS"),
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "timer",
			Usage:   "Period of the phase counter (TS)",
			Aliases: []string{"t"},
			Value:   starfield.DefaultTimer,
			EnvVars: envVar("TIMER"),
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "seed",
			Usage:   "Random seed, 0 seeds from the clock",
			Aliases: []string{"s"},
			EnvVars: envVar("SEED"),
		}),
		altsrc.NewPathFlag(&cli.PathFlag{
			Name:    "output",
			Usage:   "Write the program to this file instead of stdout",
			Aliases: []string{"o"},
			EnvVars: envVar("OUTPUT"),
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "Log a summary of the emitted program",
			EnvVars: envVar("VERBOSE"),
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "dump",
			Usage:   "Dump the generated stars to stderr",
			Aliases: []string{"d"},
			EnvVars: envVar("DUMP"),
		}),
		&cli.PathFlag{
			Name:    "config",
			Usage:   "YAML file providing defaults for the flags above",
			Aliases: []string{"c"},
			EnvVars: envVar("CONFIG"),
		},
	}
}

func newApp() *cli.App {
	rootFlags := emitFlags()
	emitCmdFlags := emitFlags()

	// nolint:exhaustruct
	return &cli.App{
		Name:     programName,
		Usage:    "Generate a randomized Applesoft BASIC starfield animation",
		Version:  version,
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{
				Name:  "The Smarthome Authors",
				Email: "",
			},
		},
		Flags:  rootFlags,
		Before: altsrc.InitInputSourceWithContext(rootFlags, altsrc.NewYamlSourceFromFlagFunc("config")),
		Action: emitAction,
		Commands: []*cli.Command{
			{
				Name:    "emit",
				Aliases: []string{"e"},
				Usage:   "Print a starfield program",
				Flags:   emitCmdFlags,
				Before:  altsrc.InitInputSourceWithContext(emitCmdFlags, altsrc.NewYamlSourceFromFlagFunc("config")),
				Action:  emitAction,
			},
			{
				Name:   "variants",
				Usage:  "List the available generation modes",
				Action: variantsAction,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
