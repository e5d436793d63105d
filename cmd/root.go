/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/codecomment/internal/config"
)

var version = "0.1.0"

var (
	cfgFile string
	v       = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "codecomment",
	Short: "Add comments to source code with a local LLM",
	Long: `A small web tool that sends a code snippet to a locally running Ollama
server and returns the same code with block and line comments added.

Use "codecomment serve" to start the web UI and JSON endpoint, or
"codecomment comment" to comment a single file from the command line.

Settings can also come from CODECOMMENT_* environment variables or a
codecomment.yaml config file.`,
	Version:       version,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.ReadFile(v, cfgFile)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default ./codecomment.yaml or ~/.config/codecomment/codecomment.yaml)")
	pf.String("ollama-url", "http://localhost:11434", "Ollama base URL")
	pf.String("model", "llama3:latest", "Ollama model name")
	pf.Duration("timeout", 0, "Deadline for one backend call (0 = none)")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", "json", "Log format (json, console)")

	v.BindPFlag("ollama.url", pf.Lookup("ollama-url"))
	v.BindPFlag("ollama.model", pf.Lookup("model"))
	v.BindPFlag("ollama.timeout", pf.Lookup("timeout"))
	v.BindPFlag("log.level", pf.Lookup("log-level"))
	v.BindPFlag("log.format", pf.Lookup("log-format"))
}
