package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matsen/zotbib/internal/action"
	"github.com/matsen/zotbib/internal/config"
	"github.com/matsen/zotbib/internal/export"
	"github.com/matsen/zotbib/internal/pipeline"
	"github.com/matsen/zotbib/internal/zotero"
)

func runExport(cmd *cobra.Command, args []string) error {
	if err := config.ReadGlobalConfig(v, config.GlobalConfigPath()); err != nil {
		return configError(err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return configError(err)
	}

	types, err := export.LoadTypeMap(cfg.TypeMap)
	if err != nil {
		return configError(err)
	}

	// Annotations must not end up inside a bibliography written to stdout.
	if cfg.OutBibPath == pipeline.StdoutPath {
		gha = action.FromEnv(cmd.ErrOrStderr())
	}

	logger := newLogger()
	client := zotero.NewClient(
		zotero.Library{ID: cfg.LibraryID, IsGroup: cfg.IsGroup},
		zotero.WithAPIKey(cfg.APIKey),
		zotero.WithBaseURL(cfg.BaseURL),
		zotero.WithLogger(logger),
	)

	sum, err := pipeline.Run(cmd.Context(), client, pipeline.Options{
		CollKey: cfg.CollKey,
		OutPath: cfg.OutBibPath,
		TypeMap: types,
		Stdout:  cmd.OutOrStdout(),
		Logger:  logger,
		Warn:    gha.Warning,
	})
	if err != nil {
		return err
	}

	gha.SetOutputs(map[string]string{
		"entries": strconv.Itoa(sum.Entries),
		"pinned":  strconv.Itoa(sum.Pinned),
		"path":    sum.Path,
	})

	// Keep stdout clean when the bibliography itself goes there.
	out := cmd.OutOrStdout()
	if cfg.OutBibPath == pipeline.StdoutPath {
		out = cmd.ErrOrStderr()
	}
	return outputSummary(out, sum)
}
