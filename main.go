package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heathj/gomarkup/markup"
	"github.com/heathj/gomarkup/markup/loader"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		logrus.WithError(err).Error("gomarkup failed")
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "gomarkup",
		Short:         "Build HTML from YAML element documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(in, out))
	return root
}

type renderOptions struct {
	debug   bool
	newline bool
}

func newRenderCmd(in io.Reader, out io.Writer) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a YAML element document to HTML",
		Long: `Render reads a YAML element document and writes the HTML to stdout.

With no file, or with "-", the document is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(in, out, path, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log every element as it is built")
	cmd.Flags().BoolVarP(&opts.newline, "newline", "n", false, "append a trailing newline")
	return cmd
}

func runRender(in io.Reader, out io.Writer, path string, opts renderOptions) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opts.debug {
		log.SetLevel(logrus.DebugLevel)
	}

	l := loader.New(loader.WithLogger(log.WithField("source", path)))

	var (
		root markup.Element
		err  error
	)
	if path == "-" {
		root, err = l.Load(in)
	} else {
		root, err = l.LoadFile(path)
	}
	if err != nil {
		return err
	}

	if _, err := root.WriteTo(out); err != nil {
		return errors.Wrap(err, "write output")
	}
	if opts.newline {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return nil
}
