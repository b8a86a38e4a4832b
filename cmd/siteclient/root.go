package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nextwave/siteclient/pkg/config"
	"github.com/nextwave/siteclient/pkg/prefs"
	"github.com/nextwave/siteclient/pkg/shared/stringutil"
	"github.com/nextwave/siteclient/pkg/sitesearch"
	"github.com/nextwave/siteclient/pkg/theme"
)

type globals struct {
	configPath string
	envFile    string
	baseURL    string
	verbose    bool

	cfg *config.Config
	log *zerolog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "siteclient",
		Short:         "Search and preferences client for the Nextwave website",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Tag, Commit, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.init()
		},
	}
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "path to the yaml config file")
	root.PersistentFlags().StringVar(&g.envFile, "env-file", ".env", "dotenv file with SITECLIENT_* overrides")
	root.PersistentFlags().StringVar(&g.baseURL, "base-url", "", "website base URL, overrides the config")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSearchCmd(g),
		newTUICmd(g),
		newThemeCmd(g),
		newFilterCmd(g),
	)
	return root
}

func (g *globals) init() error {
	if err := config.LoadDotEnv(g.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	cfg.Search.BaseURL = stringutil.EnvOr(cfg.Search.BaseURL, g.baseURL)
	cfg.WithDefaults()
	log, err := cfg.SetupLogger(g.verbose)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.log = log
	return nil
}

func (g *globals) searchClient() (*sitesearch.Client, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	return sitesearch.NewClient(g.cfg.Search, nil, *g.log)
}

func (g *globals) themeController() *theme.Controller {
	store := prefs.NewStore(g.cfg.PrefsPath)
	return theme.NewController(store, g.cfg.Search.BaseURL, g.cfg.Theme, nil, *g.log)
}

func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx
}
