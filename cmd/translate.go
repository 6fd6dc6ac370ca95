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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valpere/aztran/internal/flow"
	"github.com/valpere/aztran/internal/languages"
)

var (
	inputFile  string
	outputFile string
	sourceLang string
	targetLang string
	quiet      bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text with Azure AI Translator",
	Long: `Translate text into the target language.

The text is taken from the arguments, from --input, or from stdin.
With --source auto (the default) the language is detected first and
translation is not attempted if detection fails.

Examples:
  aztran translate --target fr "Good morning"
  aztran translate -s de -t en -i letter.txt -o letter.en.txt
  echo "こんにちは" | aztran translate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}
		if err := requireCredentials(); err != nil {
			return err
		}

		text, err := readText(args, inputFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		stderr := cmd.ErrOrStderr()
		f := flow.New(newService(), flow.Config{
			Observer: func(s flow.State) {
				if quiet {
					return
				}
				switch s {
				case flow.StateDetecting:
					fmt.Fprintln(stderr, "Detecting language...")
				case flow.StateTranslating:
					fmt.Fprintln(stderr, "Translating...")
				}
			},
		})

		out := f.Submit(cmd.Context(), flow.Submission{
			Text:   text,
			Source: sourceLang,
			Target: targetLang,
		})

		if msg := out.DetectedMessage(); msg != "" && !quiet {
			fmt.Fprintln(stderr, msg)
		}

		switch out.State {
		case flow.StatePrompt:
			fmt.Fprintln(stderr, out.Message)
			return nil
		case flow.StateResult:
		default:
			return errors.New(out.Message)
		}

		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outputFile, []byte(out.Text), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !quiet {
			fmt.Fprintf(stderr, "%s written to %s\n", out.ResultLabel(), outputFile)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (\"-\" for stdin)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for the translation (default stdout)")
	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", languages.DefaultSource, "Source language code, or auto to detect")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", languages.DefaultTarget, "Target language code")
	translateCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the translation")
}
