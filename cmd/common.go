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
	"io"
	"os"
	"strings"

	"github.com/valpere/aztran/internal/flow"
	"github.com/valpere/aztran/internal/translator"
)

// newService builds the Azure client from the configuration loaded at startup.
func newService() *translator.AzureService {
	return translator.NewAzureService(&appConfig.Translator)
}

// requireCredentials is the command-line counterpart of the web setup notice.
func requireCredentials() error {
	if err := appConfig.Translator.Check(); err != nil {
		return fmt.Errorf("%s (%w)", flow.MsgSetup, err)
	}
	return nil
}

// readText takes the text from the arguments, then the input file, then
// stdin. "-" as the input file also means stdin.
func readText(args []string, inputFile string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if inputFile != "" && inputFile != "-" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
