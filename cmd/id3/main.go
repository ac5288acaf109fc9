package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	configFile string
	v          *viper.Viper
	logger     *zap.SugaredLogger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := cliParser().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{v: viper.New(), logger: zap.NewNop().Sugar()}
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "id3 is a tool to grow classification trees",
		Long:  `A tool to grow classification trees from tables of labeled examples with the ID3 algorithm, test them, and use them to classify queries`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a configuration file (defaults to id3.yaml or id3.toml on the working directory, if present)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress and every split taken while growing trees to STDERR")
	rootCmd.PersistentFlags().Bool("log-json", false, "log in JSON format")
	rootCmd.AddCommand(versionCmd(), growCmd(config), classifyCmd(config), testCmd(config), setCmd(config))
	return rootCmd
}
