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
	"log"

	"github.com/fatih/color"
	"github.com/nomasters/padlock"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [path]",
	Short: "load a saved bundle and recover its message",
	Long: `decrypt loads the bundle at the given path (or the last saved bundle if
no path is given) and XORs the ciphertext with its stored pad to recover the
original message.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := viper.GetString("LastBundle")
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			log.Fatal("no bundle path given and no last bundle on record")
		}

		opts, err := sessionOptions()
		if err != nil {
			log.Fatal(err)
		}
		session, err := padlock.NewSession(opts)
		if err != nil {
			log.Fatal(err)
		}
		defer session.Close()

		result, err := session.Decrypt(padlock.DecryptRequest{Path: path})
		if err != nil {
			log.Fatal(err)
		}
		color.Green("message: %v", result.Message)
		if result.Hint != "" {
			color.Yellow("hint:    %v", result.Hint)
		}
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
}
