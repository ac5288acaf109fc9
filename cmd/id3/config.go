package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/id3/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "ID3"

/*
load builds the configuration for the running command from, in
increasing precedence, the flag defaults, the configuration file,
ID3_-prefixed environment variables and the flags set on the command
line, and then sets up the logger.
*/
func (rc *rootCmdConfig) load(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if rc.configFile != "" {
		v.SetConfigFile(rc.configFile)
	} else {
		v.SetConfigName("id3")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if rc.configFile != "" || !errors.As(err, &notFound) {
			return errors.Wrapf(errors.ErrConfiguration, "reading configuration: %v", err)
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags to configuration")
	}
	rc.v = v
	logger, err := newLogger(v.GetBool("verbose"), v.GetBool("log-json"))
	if err != nil {
		return errors.Wrap(err, "setting up logger")
	}
	rc.logger = logger
	if f := v.ConfigFileUsed(); f != "" {
		rc.logger.Debugw("configuration file loaded", "file", f)
	}
	return nil
}

// exit reports err on STDERR, along with its hints, and exits with the given code.
func exit(code int, err error) {
	fmt.Fprintln(os.Stderr, err)
	if hints := errors.FlattenHints(err); hints != "" {
		fmt.Fprintln(os.Stderr, hints)
	}
	os.Exit(code)
}
