// Version command for the taskboard CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskboard/pkg/taskboard"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the taskboard version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("taskboard", taskboard.Version)
	},
}
