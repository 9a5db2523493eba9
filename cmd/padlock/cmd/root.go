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
	"fmt"
	"io/ioutil"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/nomasters/padlock"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "padlock",
	Short: "padlock is a one-time-pad cipher tool",
	Long: `padlock encrypts a message with a single-use random pad and stores the
ciphertext and pad together as a bundle, so the message can be recovered in a
later run:

	padlock encrypt "attack at dawn" --out bundle.json
	padlock decrypt bundle.json
	`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./padlock.yaml)")
	rootCmd.PersistentFlags().String("engine", "file", "storage engine: file, bolt, or ipfs")
	rootCmd.PersistentFlags().String("db", "", "bolt database file (bolt engine only)")
	rootCmd.PersistentFlags().String("node", "", "IPFS node API address (ipfs engine only)")
	rootCmd.PersistentFlags().Bool("strict", false, "reject pads shorter than the message")

	viper.BindPFlag("engine", rootCmd.PersistentFlags().Lookup("engine"))
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("node", rootCmd.PersistentFlags().Lookup("node"))
	viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in the working directory and home directory with
		// name "padlock" (without extension).
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("padlock")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		// fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// sessionOptions assembles padlock SessionOptions from flags and config.
func sessionOptions() (padlock.SessionOptions, error) {
	opts := padlock.SessionOptions{
		FilePath: viper.GetString("db"),
		NodeURL:  viper.GetString("node"),
		Strict:   viper.GetBool("strict"),
	}
	switch viper.GetString("engine") {
	case "file":
		opts.StorageEngine = padlock.FileEngine
	case "bolt":
		opts.StorageEngine = padlock.BoltEngine
	case "ipfs":
		opts.StorageEngine = padlock.IPFSEngine
	default:
		return opts, fmt.Errorf("invalid engine: %v", viper.GetString("engine"))
	}
	return opts, nil
}

// Config is used to save important settings
type Config struct {
	LastBundle string
}

// Save saves a config to disk as a yaml file in the existing directory
func (c Config) Save() error {
	d, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}
	os.Remove("padlock.yaml")
	return ioutil.WriteFile("padlock.yaml", d, 0644)
}
