package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/schedulers"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported scheduling disciplines",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, alg := range schedulers.Algorithms() {
				if _, err := fmt.Fprintf(w, "%-9s %s\n          %s\n", alg, alg.Name(), alg.Explanation()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
