// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-profile-guard/internal/config"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/spf13/cobra"
)

const appName = "profile-guard"

// errReported marks a failure whose message was already printed.
var errReported = errors.New("reported")

// appKey carries the *App built by the root command's PersistentPreRunE.
type appKey struct{}

// cleanup collects what the pre-run hook opened. Cobra skips post-run
// hooks after a failed RunE, so [Execute] runs it instead.
type cleanup struct {
	fns []func()
}

func (c *cleanup) run() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
	c.fns = nil
}

// newRootCommand builds the command tree. Without a subcommand the
// interactive terminal UI starts.
func newRootCommand(buildInfo models.AppBuildInfo, c *cleanup) *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Detecta información sensible en publicaciones y perfiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			app, closeFn, err := bootstrap(cmd, buildInfo)
			if err != nil {
				return err
			}
			c.fns = append(c.fns, closeFn)
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, app))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return appFrom(cmd).Run(cmd.Context())
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newHistoryCommand(),
		newAnalyzeCommand(),
		newVerifyProfileCommand(),
		newLogoutCommand(),
		newVersionCommand(buildInfo),
	)
	return root
}

// Execute runs the command tree with args and returns the process exit
// code.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo, args []string) int {
	var c cleanup
	defer c.run()

	root := newRootCommand(buildInfo, &c)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		}
		return 1
	}
	return 0
}

func bootstrap(cmd *cobra.Command, buildInfo models.AppBuildInfo) (*App, func(), error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	log, logFile, err := logger.NewClientLogger(appName, cfg.App.LogFile)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: logging disabled:", err)
	}
	log.Info().Str("version", buildInfo.BuildVersion()).Str("command", cmd.CommandPath()).Msg("client starting")

	app, err := NewApp(cmd.Context(), cfg, buildInfo, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		_ = logFile.Close()
		return nil, nil, err
	}

	closeFn := func() {
		if err := app.Close(); err != nil {
			log.Err(err).Msg("client shutdown error")
		}
		log.Info().Msg("client stopped")
		_ = logFile.Close()
	}
	return app, closeFn, nil
}

func appFrom(cmd *cobra.Command) *App {
	return cmd.Context().Value(appKey{}).(*App)
}

func commandContext(cmd *cobra.Command) context.Context {
	return appFrom(cmd).logger.WithContext(cmd.Context())
}

func newHistoryCommand() *cobra.Command {
	var opts historyOptions

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Muestra el historial de perfiles verificados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appFrom(cmd)
			opts.FetchLimit = app.cfg.Storage.Profiles.FetchLimit
			if opts.PageSize <= 0 {
				opts.PageSize = app.cfg.UI.PageSize
			}
			return runHistory(commandContext(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr(), app.sessions, app.services.HistoryService, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Filtra por usuario")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", 1, "Página a mostrar")
	cmd.Flags().IntVar(&opts.PageSize, "rows", 0, "Filas por página")
	return cmd
}

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [texto]",
		Short: "Clasifica un texto; sin argumentos lo lee de la entrada estándar",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("error reading stdin: %w", err)
				}
				text = string(b)
			}
			app := appFrom(cmd)
			return runAnalyze(commandContext(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr(), app.sessions, app.services.ClassificationService, text)
		},
	}
}

func newVerifyProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-profile <usuario>",
		Short: "Analiza un perfil público",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			return runVerifyProfile(commandContext(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr(), app.sessions, app.services.ClassificationService, args[0])
		},
	}
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión guardada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appFrom(cmd)
			return runLogout(commandContext(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr(), app.services.AuthService)
		},
	}
}

func newVersionCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd.OutOrStdout(), buildInfo)
		},
	}
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintln(w, info.String())
}

