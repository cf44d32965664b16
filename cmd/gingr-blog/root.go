package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gingr/blog"
	"github.com/gingr/blog/catalog"
	"github.com/gingr/blog/views"
)

func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "gingr-blog",
		Short: "Gingr blog server",
		Long: `gingr-blog serves the Gingr blog: a listing of posts at /blogs and one
page per post at /blogs/{id}. Configuration comes from BLOG_* environment
variables and an optional .env file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile)
		},
	}

	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "List the posts in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPosts(cmd.OutOrStdout(), catalog.Default())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gingr-blog %s\n", version)
		},
	}

	rootCmd.AddCommand(serveCmd, postsCmd, versionCmd)
	return rootCmd
}

func runServe(ctx context.Context, envFile string) error {
	cfg, err := blog.LoadConfig(envFile)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := blog.New(cfg, catalog.Default())
	app.Echo.Logger.Infof("gingr-blog %s listening on %s", version, cfg.Addr)
	return app.Start(ctx)
}

func printPosts(w io.Writer, c *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tTITLE\tPATH")
	for _, p := range c.All() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Date, p.Category, p.Title, views.PostPath(p.ID))
	}
	return tw.Flush()
}
