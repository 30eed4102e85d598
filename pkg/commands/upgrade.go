package commands

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

const installPath = "tableflip.dev/corkboard/cmd/corkboard@latest"

func addUpgrade(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade the corkboard cli.",
		Example: `
corkboard upgrade
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ex := exec.Command("go", "install", installPath)
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				return output.HandleError(fmt.Errorf("%s: %w\n%s", ex, err, out.String()))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ex)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
