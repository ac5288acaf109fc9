package main

import (
	"github.com/pbanos/id3"
	"go.uber.org/zap"
)

/*
newLogger returns a logger writing to STDERR. Only warnings and errors are
logged unless verbose is set, which enables every level down to debug.
*/
func newLogger(verbose, jsonOutput bool) (*zap.SugaredLogger, error) {
	var config zap.Config
	if jsonOutput {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.DisableCaller = true
		config.DisableStacktrace = true
	}
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// newTracer returns a tracer that logs the growth of a tree at debug level.
func newTracer(logger *zap.SugaredLogger) id3.Tracer {
	return id3.TracerFuncs{
		Split: func(e id3.SplitEvent) {
			gains := make(map[string]float64, len(e.Candidates))
			for i, c := range e.Candidates {
				gains[c] = e.Gains[i]
			}
			logger.Debugw("splitting node",
				"depth", e.Depth,
				"path", e.Path,
				"rows", e.Rows,
				"entropy", e.Entropy,
				"gains", gains,
				"attribute", e.Attribute,
				"gain", e.Gain,
				"values", e.Values,
			)
		},
		Leaf: func(e id3.LeafEvent) {
			logger.Debugw("adding leaf", "depth", e.Depth, "path", e.Path, "rows", e.Rows, "label", e.Label)
		},
	}
}
