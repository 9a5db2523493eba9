// Copyright © 2019 NAME HERE <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/nomasters/padlock"
	"github.com/spf13/cobra"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [message]",
	Short: "encrypt a message with a fresh one-time pad and save the bundle",
	Long: `encrypt encodes a message, generates a random pad of matching length,
XORs the two, and saves the resulting bundle. If no message argument is given,
it is read from stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		message := strings.Join(args, " ")
		if message == "" {
			fmt.Print("Enter the message: ")
			reader := bufio.NewReader(os.Stdin)
			text, err := reader.ReadString('\n')
			if err != nil {
				log.Fatal(err)
			}
			message = strings.TrimRight(text, "\r\n")
		}

		opts, err := sessionOptions()
		if err != nil {
			log.Fatal(err)
		}
		opts.StoreHint, _ = cmd.Flags().GetBool("hint")
		session, err := padlock.NewSession(opts)
		if err != nil {
			log.Fatal(err)
		}
		defer session.Close()

		out, _ := cmd.Flags().GetString("out")
		result, err := session.Encrypt(padlock.EncryptRequest{
			Message: message,
			Path:    out,
		})
		if err != nil {
			log.Fatal(err)
		}

		color.Green("cipher: %v", result.CipherHex)
		color.Yellow("pad:    %v", result.KeyHex)
		fmt.Printf("bundle %v saved to %v\n", result.Fingerprint, result.Location)

		config := Config{LastBundle: result.Location}
		if err := config.Save(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)

	encryptCmd.Flags().String("out", "bundle.json", "where to save the bundle")
	encryptCmd.Flags().Bool("hint", false, "store the plaintext in the bundle (demo only)")
}
