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
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/aztran/internal/languages"
)

var remoteLanguages bool

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long: `List the languages offered by the translate command and the web form.

With --remote, list every language the Azure service can translate
instead. That endpoint is public and needs no credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

		if !remoteLanguages {
			fmt.Fprintln(w, "CODE\tNAME\tNATIVE NAME")
			for _, l := range languages.Sources() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", l.Code, l.Name, l.NativeName())
			}
			return w.Flush()
		}

		langs, err := newService().Languages(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list languages: %w", err)
		}

		codes := make([]string, 0, len(langs))
		for code := range langs {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		fmt.Fprintln(w, "CODE\tNAME\tNATIVE NAME\tDIR")
		for _, code := range codes {
			l := langs[code]
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", code, l.Name, l.NativeName, l.Dir)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)

	languagesCmd.Flags().BoolVar(&remoteLanguages, "remote", false, "Query the service for all supported languages")
}
