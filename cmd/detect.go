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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/aztran/internal/flow"
	"github.com/valpere/aztran/internal/languages"
)

var detectInput string

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Detect the language of text",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCredentials(); err != nil {
			return err
		}

		text, err := readText(args, detectInput, cmd.InOrStdin())
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), flow.MsgEnterText)
			return nil
		}

		code, err := newService().Detect(cmd.Context(), text)
		if err != nil {
			return fmt.Errorf("%s (%w)", flow.MsgDetectFailed, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", code, languages.Describe(code))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVarP(&detectInput, "input", "i", "", "Input file (\"-\" for stdin)")
}
