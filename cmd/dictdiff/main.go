// Command dictdiff сравнивает два снимка словаря.
// Код возврата: 0 - различий нет, 1 - есть различия, 2 - ошибка.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/stenodict/internal/app"
	"github.com/iudanet/stenodict/internal/cli"
	"github.com/iudanet/stenodict/internal/iocli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		asJSON  bool
		changed bool
	)

	cmd := &cobra.Command{
		Use:           "dictdiff <old> <new>",
		Short:         "Compare two dictionary snapshots",
		Version:       app.BuildVersion(),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			changed, err = cli.RunDiff(cmd.Context(), iocli.NewStdio(), args[0], args[1], asJSON)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the diff as JSON")
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if changed {
		return 1
	}
	return 0
}
