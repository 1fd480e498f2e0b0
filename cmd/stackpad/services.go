package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackpad-dev/stackpad/core/stack"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the infrastructure services",
	Run: func(cmd *cobra.Command, args []string) {
		for _, svc := range stack.TierInfra.Services() {
			fmt.Println(svc)
		}
	},
}
