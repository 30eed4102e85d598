package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(corkboard completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(corkboard completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerIDCompletion(cmd *cobra.Command, e *env) {
	_ = cmd.RegisterFlagCompletionFunc("id", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return idCompletions(e, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// idCompletions offers saved note ids with their first line as description.
func idCompletions(e *env, toComplete string) []string {
	p, err := e.persistence()
	if err != nil {
		return nil
	}
	notes, err := p.LoadNotes()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		id := strconv.FormatInt(n.ID, 10)
		if !strings.HasPrefix(id, toComplete) {
			continue
		}
		out = append(out, fmt.Sprintf("%s\t%s", id, n.Title()))
	}
	return out
}
