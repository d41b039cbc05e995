// Package main provides the ytcsv CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"ytcsv/internal/config"
	"ytcsv/internal/display"
	"ytcsv/internal/export"
	"ytcsv/internal/youtube"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the ytcsv CLI.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ytcsv",
		Short:   "Export a YouTube channel's videos to CSV",
		Long:    "ytcsv resolves a channel handle, fetches the channel's full video list from the YouTube Data API, and writes the results to a CSV file.",
		Version: version,
	}

	rootCmd.SetVersionTemplate("ytcsv version {{.Version}}\n")

	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newResolveCmd())

	return rootCmd
}

// splitArgs interprets the positional arguments. Both "<api-key> <handle>"
// and the bare "<handle>" forms are accepted.
func splitArgs(args []string) (apiKey, handle string) {
	if len(args) == 2 {
		return args[0], args[1]
	}
	return "", args[0]
}

// newSource builds the video source, honoring the base URL override and the
// --sdk switch.
func newSource(ctx context.Context, apiKey string, cfg *config.Config, useSDK bool) (youtube.Source, error) {
	client := youtube.NewClient(apiKey, clientOptions(cfg)...)

	if !useSDK {
		return client, nil
	}

	var svcOpts []option.ClientOption
	if cfg.BaseURL != "" {
		svcOpts = append(svcOpts, option.WithEndpoint(cfg.BaseURL))
	}
	return youtube.NewService(ctx, apiKey, client, svcOpts...)
}

// runContext applies the --timeout flag, 0 meaning no deadline.
func runContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

// newExportCmd creates the export subcommand: resolve the handle, fetch
// every video, write the CSV.
func newExportCmd() *cobra.Command {
	var apiKey, output string
	var maxPages int
	var timeout time.Duration
	var partial, useSDK bool

	cmd := &cobra.Command{
		Use:   "export [api-key] <handle>",
		Short: "Fetch all videos for a channel handle and write them to a CSV file",
		Long:  "Export resolves the handle to a channel ID, pages through the channel's videos newest first, and writes one CSV row per video.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			positionalKey, handle := splitArgs(args)
			key, err := cfg.ResolveAPIKey(positionalKey, apiKey)
			if err != nil {
				return err
			}

			ctx, cancel := runContext(timeout)
			defer cancel()

			source, err := newSource(ctx, key, cfg, useSDK)
			if err != nil {
				return err
			}

			channelID, err := source.ResolveHandle(ctx, handle)
			if err != nil {
				return fmt.Errorf("unable to resolve %s: %w", handle, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Channel ID: %s\n", channelID)

			videos, listErr := source.ListVideos(ctx, channelID, youtube.ListOptions{MaxPages: maxPages})
			if listErr != nil {
				if !partial || len(videos) == 0 {
					return fmt.Errorf("error fetching videos: %w", listErr)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: fetch failed after %d videos: %v\n", len(videos), listErr)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d videos\n", len(videos))

			if len(videos) == 0 && output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No videos found")
				return nil
			}

			path := output
			if path == "" {
				path = export.FileName(handle)
			}
			if err := export.WriteCSV(path, videos); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Videos written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "YouTube Data API key (defaults to YOUTUBE_API_KEY)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (defaults to <handle>.csv)")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "Maximum result pages to fetch (0 = all)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall deadline for the run (0 = none)")
	cmd.Flags().BoolVar(&partial, "partial", false, "Write the videos fetched so far if a later page fails")
	cmd.Flags().BoolVar(&useSDK, "sdk", false, "Use the Google API client library instead of the REST client")

	return cmd
}

// newListCmd creates the list subcommand: print the channel's videos as a
// table instead of writing a file.
func newListCmd() *cobra.Command {
	var apiKey string
	var limit, maxPages int
	var timeout time.Duration
	var useSDK bool

	cmd := &cobra.Command{
		Use:   "list [api-key] <handle>",
		Short: "Print a channel's videos to the terminal",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			positionalKey, handle := splitArgs(args)
			key, err := cfg.ResolveAPIKey(positionalKey, apiKey)
			if err != nil {
				return err
			}

			ctx, cancel := runContext(timeout)
			defer cancel()

			source, err := newSource(ctx, key, cfg, useSDK)
			if err != nil {
				return err
			}

			channelID, err := source.ResolveHandle(ctx, handle)
			if err != nil {
				return fmt.Errorf("unable to resolve %s: %w", handle, err)
			}

			videos, err := source.ListVideos(ctx, channelID, youtube.ListOptions{MaxPages: maxPages})
			if err != nil {
				return fmt.Errorf("error fetching videos: %w", err)
			}
			if limit > 0 && len(videos) > limit {
				videos = videos[:limit]
			}

			formatter := display.NewTerminalFormatter()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatVideos(videos))
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "YouTube Data API key (defaults to YOUTUBE_API_KEY)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of videos to display (0 = all)")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "Maximum result pages to fetch (0 = all)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall deadline for the run (0 = none)")
	cmd.Flags().BoolVar(&useSDK, "sdk", false, "Use the Google API client library instead of the REST client")

	return cmd
}

// newResolveCmd creates the resolve subcommand: print only the channel ID.
func newResolveCmd() *cobra.Command {
	var apiKey string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "resolve [api-key] <handle>",
		Short: "Resolve a channel handle to its channel ID",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			positionalKey, handle := splitArgs(args)
			key, err := cfg.ResolveAPIKey(positionalKey, apiKey)
			if err != nil {
				return err
			}

			ctx, cancel := runContext(timeout)
			defer cancel()

			client := youtube.NewClient(key, clientOptions(cfg)...)
			channelID, err := client.ResolveHandle(ctx, handle)
			if err != nil {
				return fmt.Errorf("unable to resolve %s: %w", handle, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), channelID)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "YouTube Data API key (defaults to YOUTUBE_API_KEY)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall deadline for the run (0 = none)")

	return cmd
}

// clientOptions returns REST client options derived from the config.
func clientOptions(cfg *config.Config) []youtube.ClientOption {
	var opts []youtube.ClientOption
	if cfg.BaseURL != "" {
		opts = append(opts, youtube.WithBaseURL(cfg.BaseURL))
	}
	return opts
}
