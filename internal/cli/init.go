package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/promptloop/internal/infra/configinit"
	"github.com/aalvaropc/promptloop/internal/ports"
)

func initCmd() *cobra.Command {
	var initializer ports.ConfigInitializer = configinit.NewInitializer()
	var force bool
	var dir string

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default promptloop.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := dir
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}

			path, err := initializer.Init(root, force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\n", path)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite an existing promptloop.yaml")
	c.Flags().StringVarP(&dir, "dir", "d", "", "target directory (defaults to the working directory)")
	return c
}
