// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package agents

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/openp2ptrade/dispute-node/agent"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"
	"golang.org/x/term"
)

var (
	encryptAgentListCMD = &cobra.Command{
		Use:   "encrypt",
		Short: "encrypt provided agent list with AES",
		Long:  "Algorithm used is AES CTR. IV and CT returned are in hex. Encryption key is prompted for if not provided.",
		RunE:  encryptAgentListCmd,
	}
)

var (
	path          string
	encryptionKey string
)

func init() {
	encryptAgentListCMD.PersistentFlags().StringVar(&path, "path", "", "path to json file with agent list")
	_ = encryptAgentListCMD.MarkPersistentFlagRequired("path")
	encryptAgentListCMD.PersistentFlags().StringVar(&encryptionKey, "encryptionKey", "", "key to encrypt agent list with")
}

func encryptAgentListCmd(cmd *cobra.Command, args []string) error {
	key := []byte(encryptionKey)
	if len(key) == 0 {
		fmt.Fprint(cmd.OutOrStdout(), "Encryption key: ")
		var err error
		key, err = term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return encryptAgentList(data, key, cmd.OutOrStdout())
}

func encryptAgentList(data, key []byte, out io.Writer) error {
	aesEncryption, err := agent.NewAESEncryption(key)
	if err != nil {
		return err
	}

	// Testing that agent list is well-formed
	rawList := &agent.RawAgentList{}
	err = json.Unmarshal(data, rawList)
	if err != nil {
		return fmt.Errorf("agent list was wrong formed %s", err.Error())
	}
	agentList, err := agent.ProcessRawAgentList(rawList)
	if err != nil {
		return err
	}

	ct, err := aesEncryption.Encrypt(data)
	if err != nil {
		return err
	}

	hash := sha3.Sum256([]byte(ct))
	fmt.Fprintf(out, "Agent list with %d arbitrators and %d mediators\n", len(agentList.Arbitrators), len(agentList.Mediators))
	fmt.Fprintf(out, "Encrypted agent list is: %s\n", ct)
	fmt.Fprintf(out, "Hash of the agent list %s\n", hex.EncodeToString(hash[:]))
	return nil
}
