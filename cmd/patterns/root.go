package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xuenqlve/patterns/config"
	"github.com/xuenqlve/patterns/errors"
	"github.com/xuenqlve/patterns/log"
)

type options struct {
	configPath string
	logLevel   string

	cfg *config.Config
}

func (o *options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.configPath, "config", "c", "", "path to a YAML config file")
	fs.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error), overrides the config")
}

func (o *options) load() error {
	cfg, err := config.NewConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = strings.ToLower(o.logLevel)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.Path); err != nil {
		return errors.Trace(err)
	}
	o.cfg = cfg
	return nil
}

// NewRootCommand builds the patterns command tree. Demo output goes to out.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "patterns",
		Short:         "Run design pattern demonstrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return opts.load()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(newListCommand(out), newRunCommand(opts, out))
	return cmd
}

func newListCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			for _, d := range demos {
				line := fmt.Sprintf("%-10s %s", d.name, d.title)
				if len(d.aliases) > 0 {
					line += fmt.Sprintf(" (aliases: %s)", strings.Join(d.aliases, ", "))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newRunCommand(opts *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run the named demos, or every demo when none is named",
		RunE: func(c *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 && opts.cfg != nil {
				names = opts.cfg.Demos
			}
			selected, err := selectDemos(names)
			if err != nil {
				return err
			}
			for i, d := range selected {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "===== %s =====\n", d.title)
				log.Debugf("run demo. name=[%s]", d.name)
				if err := d.run(out); err != nil {
					return errors.Annotatef(err, "demo %s", d.name)
				}
			}
			return nil
		},
	}
}
