// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package agents

import "github.com/spf13/cobra"

var AgentsCLI = &cobra.Command{
	Use:   "agents",
	Short: "utility commands that help to prepare the dispute agent list",
}

func init() {
	AgentsCLI.AddCommand(encryptAgentListCMD)
}
