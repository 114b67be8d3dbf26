// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/openp2ptrade/dispute-node/agent"
	"github.com/openp2ptrade/dispute-node/selection"
	"github.com/openp2ptrade/dispute-node/statistics"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type selectArgs struct {
	agentsPath     string
	statisticsPath string
	role           string
	strategy       string
	exclude        []string
	seed           uint64
}

var (
	selectCMD = &cobra.Command{
		Use:   "select",
		Short: "select a dispute agent from an agent list file",
		Long:  "Selects one dispute agent from the agent list file using the trade statistics snapshot file and prints it as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return selectDisputeAgent(selectFlags, cmd.OutOrStdout())
		},
	}
)

var selectFlags selectArgs

func init() {
	bindSelectFlags(selectCMD.Flags(), &selectFlags)
	_ = selectCMD.MarkFlagRequired("agents")
}

func bindSelectFlags(flagSet *pflag.FlagSet, args *selectArgs) {
	flagSet.StringVar(&args.agentsPath, "agents", "", "path to unencrypted JSON agent list")
	flagSet.StringVar(&args.statisticsPath, "statistics", "", "path to JSON trade statistics snapshot")
	flagSet.StringVar(&args.role, "role", string(agent.ArbitratorRole), "dispute agent role (arbitrator|mediator)")
	flagSet.StringVar(&args.strategy, "strategy", selection.LeastUsed.String(), "selection strategy (leastUsed|random)")
	flagSet.StringSliceVar(&args.exclude, "exclude", []string{}, "addresses of dispute agents that must not be selected")
	flagSet.Uint64Var(&args.seed, "seed", 0, "seed of the random strategy, current time if 0")
}

func selectDisputeAgent(args selectArgs, out io.Writer) error {
	role, err := agent.ParseRole(args.role)
	if err != nil {
		return err
	}
	strategy, err := selection.ParseStrategy(args.strategy)
	if err != nil {
		return err
	}

	excluded := make([]agent.NodeAddress, len(args.exclude))
	for i, e := range args.exclude {
		excluded[i], err = agent.ParseNodeAddress(e)
		if err != nil {
			return err
		}
	}

	agentList, err := readAgentList(args.agentsPath)
	if err != nil {
		return err
	}

	history := statistics.NewManager()
	if args.statisticsPath != "" {
		records, err := statistics.LoadSnapshot(args.statisticsPath)
		if err != nil {
			return err
		}
		err = history.Replace(records)
		if err != nil {
			return err
		}
	}

	rnd := selection.NewRandomSource()
	if args.seed != 0 {
		rnd = selection.NewSeededRandomSource(args.seed)
	}

	var selected agent.Agent
	var ok bool
	switch role {
	case agent.ArbitratorRole:
		arbitrators := agent.NewManager[*agent.Arbitrator]()
		arbitrators.Replace(agentList.Arbitrators)
		var arbitrator *agent.Arbitrator
		arbitrator, ok = selection.NewSelector[*agent.Arbitrator](strategy, history, arbitrators, rnd).Select(excluded)
		selected = arbitrator
	case agent.MediatorRole:
		mediators := agent.NewManager[*agent.Mediator]()
		mediators.Replace(agentList.Mediators)
		var mediator *agent.Mediator
		mediator, ok = selection.NewSelector[*agent.Mediator](strategy, history, mediators, rnd).Select(excluded)
		selected = mediator
	}
	if !ok {
		return fmt.Errorf("no %s available", role)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(selected)
}

func readAgentList(path string) (agent.AgentList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return agent.AgentList{}, err
	}

	rawList := &agent.RawAgentList{}
	err = json.Unmarshal(data, rawList)
	if err != nil {
		return agent.AgentList{}, fmt.Errorf("agent list was wrong formed %s", err.Error())
	}
	return agent.ProcessRawAgentList(rawList)
}
