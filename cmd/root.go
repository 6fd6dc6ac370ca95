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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/aztran/internal/config"
	"github.com/valpere/aztran/internal/logger"
)

var (
	cfgFile  string
	envFile  string
	logLevel string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "aztran",
	Short: "Azure AI Translator front-end",
	Long: `A small front-end for the Azure AI Translator service.

Text is translated into the target language; when the source language is
"auto" it is detected first. Credentials are read from SUBSCRIPTION_KEY and
SERVICE_REGION (environment, .env file or config file).

Use "aztran serve" for the web form, or "aztran translate --help" for the
command line.`,
	Version:      config.AppVersion,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.aztran.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file with SUBSCRIPTION_KEY and SERVICE_REGION")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() error {
	cfg, err := config.Load(viper.GetViper(), config.Options{
		ConfigFile: cfgFile,
		EnvFile:    envFile,
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(logger.ParseLevel(cfg.LogLevel), os.Stderr)
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "module", "config", "path", used)
	}
	cfg.ReportCredentials()

	appConfig = cfg
	return nil
}
