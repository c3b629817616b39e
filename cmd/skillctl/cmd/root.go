package cmd

import (
	"github.com/spf13/cobra"

	"github.com/artem13815/skillscan/pkg/config"
	"github.com/artem13815/skillscan/pkg/logger"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "skillctl",
	Short: "skillctl: skill keyword extraction toolbox",
	Long:  "Extract skill keywords from files or stdin, inspect the vocabulary and mint history API tokens.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		// stdout занят результатом, логи только в stderr
		logger.SetupWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("vocabulary", "", "YAML file with extra vocabulary entries (overrides VOCABULARY_FILE)")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(vocabularyCmd)
	rootCmd.AddCommand(tokenCmd)
}

// vocabularyPath prefers the --vocabulary flag over the environment.
func vocabularyPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("vocabulary"); p != "" {
		return p
	}
	return cfg.VocabularyFile
}
