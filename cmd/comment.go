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
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/codecomment/internal/generator"
	"github.com/valpere/codecomment/internal/language"
	"github.com/valpere/codecomment/internal/postprocess"
	"github.com/valpere/codecomment/internal/prompt"
)

var (
	inputFile   string
	outputFile  string
	langName    string
	extractCode bool
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Comment a single source file",
	Long: `Send one source file to the inference backend and write the commented
code to a file or to stdout.

The language is inferred from the file extension unless --language is given.
Supported languages are listed by "codecomment languages".

  --extract   keep only the code from the reply (drops chatter and fences)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFile != "" && filepath.Clean(inputFile) == filepath.Clean(outputFile) {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		lang, err := resolveLanguage(langName, inputFile)
		if err != nil {
			return err
		}

		src, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		if len(src) == 0 {
			return fmt.Errorf("input file %s is empty", inputFile)
		}

		_, logger, gen, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "Commenting %s as %s with %s...\n", inputFile, lang.Label, gen.Model())

		out, err := commentSource(ctx, gen, string(src), lang.Tag, extractCode)
		if err != nil {
			logger.Error("Comment generation failed", zap.String("file", inputFile), zap.Error(err))
			return fmt.Errorf("failed to generate comments: %w", err)
		}

		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Wrote commented code to %s\n", outputFile)
		return nil
	},
}

// resolveLanguage prefers an explicit name and falls back to the file
// extension.
func resolveLanguage(name, path string) (language.Language, error) {
	if name != "" {
		if l, ok := language.Lookup(name); ok {
			return l, nil
		}
		return language.Language{}, fmt.Errorf("unsupported language %q (supported: %s)", name, supportedTags())
	}
	if l, ok := language.FromExtension(path); ok {
		return l, nil
	}
	return language.Language{}, fmt.Errorf("cannot infer language of %s, use --language (supported: %s)", path, supportedTags())
}

func supportedTags() string {
	var tags []string
	for _, l := range language.All() {
		tags = append(tags, l.Tag)
	}
	return strings.Join(tags, ", ")
}

func commentSource(ctx context.Context, gen generator.Generator, code, lang string, extract bool) (string, error) {
	out, err := gen.Generate(ctx, prompt.Build(code, lang))
	if err != nil {
		return "", err
	}
	if extract {
		out = postprocess.ExtractCode(out)
	}
	if out == "" {
		return "", fmt.Errorf("%w: empty reply", generator.ErrBackend)
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(commentCmd)

	commentCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Source file to comment (required)")
	commentCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")
	commentCmd.Flags().StringVarP(&langName, "language", "l", "", "Language of the source (default: from file extension)")
	commentCmd.Flags().BoolVar(&extractCode, "extract", false, "Keep only the code from the model reply")

	commentCmd.MarkFlagRequired("input")
}
