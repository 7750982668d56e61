package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"shireesh.com/switchgen/internal/compressor"
	"shireesh.com/switchgen/internal/config"
	"shireesh.com/switchgen/internal/dialect"
	"shireesh.com/switchgen/internal/generator"
	"shireesh.com/switchgen/internal/locale"
	"shireesh.com/switchgen/internal/logger"
	"shireesh.com/switchgen/internal/request"
	"shireesh.com/switchgen/internal/tui"
)

const (
	requestPrompt = "Input language(c, cc, rust) and length of the target number(e.g. c 5): "
	pathPrompt    = "Input code filename: "
)

var errNoPath = errors.New("output filename is empty")

type options struct {
	lang       string
	digits     string
	output     string
	locale     string
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "switchgen",
		Short: "Generate a program with one switch branch per number below 10^N",
		Long: `switchgen writes a C, C++ or Rust program that reads a number and, through
one case per possible value, prints its digit count, the place name and value
of every digit, and the number reversed.

Without flags it asks for "<language> <N>" and then for the output filename.
An output filename ending in .zip stores the program in a zip archive.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.lang, "lang", "", "target language: "+dialect.Names())
	flags.StringVar(&opts.digits, "digits", "", "number of digits N; branches cover 1 to 10^N-1")
	flags.StringVarP(&opts.output, "output", "o", "", "output filename")
	flags.StringVar(&opts.locale, "locale", "", "language of printed phrases: en or zh (default from config)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	cmd.MarkFlagsRequiredTogether("lang", "digits")
	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, newRootCmd(), os.Stdout)
	stop()
	os.Exit(code)
}

func execute(ctx context.Context, cmd *cobra.Command, out io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(out, "hint:", hint)
		}
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.locale != "" {
		cfg.Locale = opts.locale
	}
	log := logger.New(opts.verbose, cmd.ErrOrStderr())
	defer log.Sync()

	phrases, err := locale.New(cfg.Locale)
	if err != nil {
		return err
	}
	prompter := tui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	req, err := readRequest(prompter, opts)
	if err != nil {
		return err
	}
	g, err := generator.New(generator.Options{
		Lang:       req.Lang,
		Digits:     req.Digits,
		Phrases:    phrases,
		LineEnding: cfg.EOL(),
	})
	if err != nil {
		return err
	}

	path, err := readPath(prompter, opts)
	if err != nil {
		return err
	}
	log.Debugw("generating",
		logger.FieldLang, req.Lang.String(),
		logger.FieldDigits, req.Digits,
		logger.FieldCount, g.Count(),
		logger.FieldLocale, phrases.Tag().String(),
		logger.FieldPath, path)

	start := time.Now()
	sink, err := compressor.Create(path, req.Lang.Syntax().Ext)
	if err != nil {
		return err
	}
	stats, err := g.Emit(cmd.Context(), sink)
	if err != nil {
		sink.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := sink.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	log.Infow("generated",
		logger.FieldPath, path,
		logger.FieldCount, stats.Branches,
		logger.FieldBytes, stats.Bytes,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return nil
}

func readRequest(p tui.Prompter, opts *options) (request.Request, error) {
	if opts.lang != "" {
		return request.Parse(opts.lang + " " + opts.digits)
	}
	line, err := p.Ask(requestPrompt)
	if err != nil {
		return request.Request{}, err
	}
	return request.Parse(line)
}

func readPath(p tui.Prompter, opts *options) (string, error) {
	path := opts.output
	if path == "" {
		answer, err := p.Ask(pathPrompt)
		if err != nil {
			return "", err
		}
		path = answer
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.WithHint(errNoPath, "enter a path such as out.c")
	}
	return path, nil
}
