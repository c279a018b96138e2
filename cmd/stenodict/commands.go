package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iudanet/stenodict/internal/app"
	"github.com/iudanet/stenodict/internal/cli"
	"github.com/iudanet/stenodict/internal/config"
	"github.com/iudanet/stenodict/internal/iocli"
)

// globalFlags флаги, переопределяющие конфигурацию
type globalFlags struct {
	configPath   string
	dictionaries []string
	statePath    string
	logLevel     string
}

// runner создает Cli после загрузки конфигурации
type runner struct {
	flags globalFlags
	cli   *cli.Cli
}

func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(r.flags.configPath)
	if err != nil {
		return err
	}

	if len(r.flags.dictionaries) > 0 {
		cfg.Dictionaries = r.flags.dictionaries
	}
	if r.flags.statePath != "" {
		cfg.StatePath = r.flags.statePath
	}
	if r.flags.logLevel != "" {
		cfg.Log.Level = r.flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)
	r.cli = cli.New(iocli.NewStdio(), cfg, logger)
	return nil
}

func newRootCmd() *cobra.Command {
	r := &runner{}

	root := &cobra.Command{
		Use:               "stenodict",
		Short:             "Edit steno dictionaries from the terminal",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&r.flags.configPath, "config", "", "path to config file (default "+config.DefaultPath()+")")
	pf.StringArrayVarP(&r.flags.dictionaries, "dictionary", "d", nil, "dictionary path, highest priority first (repeatable)")
	pf.StringVar(&r.flags.statePath, "state", "", "path to the undo history database")
	pf.StringVar(&r.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newListCmd(r),
		newAddCmd(r),
		newUpdateCmd(r),
		newDeleteCmd(r),
		newUndoCmd(r),
		newStatusCmd(r),
		newLookupCmd(r),
		newBuildCmd(r),
		newResetCmd(r),
		newVersionCmd(),
	)

	return root
}

func addViewFlags(cmd *cobra.Command, opts *cli.ViewOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.Strokes, "strokes", "", "show entries whose strokes contain this text")
	f.StringVar(&opts.Translation, "translation", "", "show entries whose translation contains this text")
	f.BoolVar(&opts.CaseSensitive, "case-sensitive", false, "match translation case")
	f.BoolVar(&opts.Regex, "regex", false, "treat --translation as a regular expression")
	f.StringVar(&opts.Sort, "sort", "", "sort column: strokes, translation, dictionary, strokes_count, words_count")
	f.BoolVar(&opts.Descending, "descending", false, "sort in descending order (with --sort)")
}

func newListCmd(r *runner) *cobra.Command {
	var (
		opts  cli.ViewOptions
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dictionary entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.cli.RunList(cmd.Context(), opts, limit)
		},
	}
	addViewFlags(cmd, &opts)
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of rows to print (0 - all)")
	return cmd
}

func newAddCmd(r *runner) *cobra.Command {
	var dictPath string

	cmd := &cobra.Command{
		Use:   "add <strokes> <translation>",
		Short: "Add an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.cli.RunAdd(cmd.Context(), args[0], args[1], dictPath)
		},
	}
	cmd.Flags().StringVar(&dictPath, "to", "", "target dictionary (default: highest priority)")
	return cmd
}

func newUpdateCmd(r *runner) *cobra.Command {
	var opts cli.ViewOptions

	cmd := &cobra.Command{
		Use:   "update <row> <column> <value>",
		Short: "Edit a cell of a listed row",
		Long:  "Edit a cell of a row. Row numbers refer to 'list' output with the same filter and sort flags.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row number %q: %w", args[0], err)
			}
			return r.cli.RunUpdate(cmd.Context(), opts, row, args[1], args[2])
		},
	}
	addViewFlags(cmd, &opts)
	return cmd
}

func newDeleteCmd(r *runner) *cobra.Command {
	var opts cli.ViewOptions

	cmd := &cobra.Command{
		Use:   "delete <row>...",
		Short: "Delete listed rows",
		Long:  "Delete rows. Row numbers refer to 'list' output with the same filter and sort flags.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]int, 0, len(args))
			for _, a := range args {
				row, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("invalid row number %q: %w", a, err)
				}
				rows = append(rows, row)
			}
			return r.cli.RunDelete(cmd.Context(), opts, rows)
		},
	}
	addViewFlags(cmd, &opts)
	return cmd
}

func newUndoCmd(r *runner) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the last edit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.cli.RunUndo(cmd.Context(), count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of operations to undo")
	return cmd
}

func newStatusCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show dictionaries and undo history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.cli.RunStatus(cmd.Context())
		},
	}
}

func newLookupCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Find strokes for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.cli.RunLookup(cmd.Context(), args[0])
		},
	}
}

func newBuildCmd(r *runner) *cobra.Command {
	var opts cli.BuildOptions

	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Define the words of a text interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.File = args[0]
			return r.cli.RunBuild(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.HTML, "html", false, "extract the article text from HTML")
	f.StringVar(&opts.URL, "url", "", "page address for HTML input")
	f.StringVar(&opts.Order, "order", "", "word order: frequency, appearance, alphabetical")
	f.BoolVar(&opts.IncludeDefined, "include-defined", false, "include words that already have a translation")
	f.StringVar(&opts.Dictionary, "to", "", "target dictionary (default: highest priority)")
	return cmd
}

func newResetCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the undo history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.cli.RunReset(cmd.Context())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// конфигурация для вывода версии не нужна
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stenodict %s\n", app.BuildVersion())
		},
	}
}
