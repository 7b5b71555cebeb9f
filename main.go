package main

import (
	"context"
	"fmt"
	"os"

	"github.com/datatug/imgtug/pkg/fsutils"
	"github.com/datatug/imgtug/pkg/imgtug"
	"github.com/datatug/imgtug/pkg/imgtug/settings"
	"github.com/datatug/imgtug/pkg/profiling"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

var osExit = os.Exit

type options struct {
	configPath string
	logFile    string
	renderer   string
	cpuProfile string
	memProfile string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "imgtug: %v\n", err)
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:     "imgtug [dir]",
		Short:   "Browse images and their embedded prompts in the terminal",
		Long:    `imgtug lists the images of a directory, previews the selected one and shows its XMP metadata.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return run(cmd.Context(), dir, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config `file` (.yaml, .toml or .json), defaults to ~/.imgtug/config.yaml")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to `file`")
	flags.StringVar(&opts.renderer, "renderer", "", "image renderer: auto, kitty, iterm2, sixel, kitten, halfblocks or none")
	flags.StringVar(&opts.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&opts.memProfile, "memprofile", "", "write memory profile to `file`")
	return cmd
}

// loadSettings applies command line flags over the config file.
func loadSettings(opts options) (settings.Settings, error) {
	s, err := settings.Load(opts.configPath)
	if err != nil {
		return s, err
	}
	if opts.logFile != "" {
		s.LogFile = opts.logFile
	}
	if opts.renderer != "" {
		s.Renderer = opts.renderer
	}
	return s, s.Validate()
}

type application interface {
	Run(ctx context.Context) error
}

var newApp = func(dir string, s settings.Settings, log logrus.FieldLogger) (application, error) {
	return imgtug.NewApp(dir, s, log)
}

var run = func(ctx context.Context, dir string, opts options) (err error) {
	// checked before the terminal is taken over
	exists, err := fsutils.DirExists(dir)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if opts.cpuProfile != "" {
		stopCPUProfiling, profErr := profiling.DoCPUProfiling(opts.cpuProfile)
		if profErr != nil {
			return profErr
		}
		defer func() {
			_ = stopCPUProfiling()
		}()
	}
	if opts.memProfile != "" {
		defer func() {
			if memErr := profiling.DoMemProfiling(opts.memProfile)(); memErr != nil && err == nil {
				err = memErr
			}
		}()
	}

	s, err := loadSettings(opts)
	if err != nil {
		return err
	}
	log, logCloser, err := s.NewLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logCloser.Close()
	}()

	app, err := newApp(dir, s, log)
	if err != nil {
		return err
	}
	if err = app.Run(ctx); err != nil {
		log.WithError(err).Error("imgtug stopped")
	}
	return err
}
