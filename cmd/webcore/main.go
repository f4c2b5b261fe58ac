package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jsvensson/webcore"
	"github.com/jsvensson/webcore/internal/format"
)

var (
	flagVerbose int
	flagCheck   bool
	version     = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "webcore",
	Short:   "Utilities for website content: color shading, slugs, HTML rewriting",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var shadeCmd = &cobra.Command{
	Use:   "shade COLOR PERCENT",
	Short: "Shift a color lighter or darker by a signed percentage",
	Long:  "Shift a color lighter or darker. COLOR may be hex (#rgb or #rrggbb), rgb(...) or rgba(...); the output keeps the input format.",
	Args:  cobra.ExactArgs(2),
	RunE:  runShade,
}

var slugCmd = &cobra.Command{
	Use:   "slug TITLE",
	Short: "Make a URL-safe page name from a title",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlug,
}

var scrubCmd = &cobra.Command{
	Use:   "scrub [FILE]",
	Short: "Prepend a slash to relative URLs in an HTML fragment",
	Long:  "Rewrite relative src/href attributes and CSS url() references in an HTML fragment read from FILE or stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScrub,
}

var imageCmd = &cobra.Command{
	Use:   "image [FILE]",
	Short: "Print the src of the first image in an HTML fragment",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runImage,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format site configuration files",
	Long:  "Format one or more HCL site configuration files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(shadeCmd)
	rootCmd.AddCommand(slugCmd)
	rootCmd.AddCommand(scrubCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runShade(cmd *cobra.Command, args []string) error {
	percent, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid percent %q: %w", args[1], err)
	}

	shaded, err := webcore.Shade(args[0], percent)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), shaded)
	return nil
}

func runSlug(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), webcore.CleanupPageName(args[0]))
	return nil
}

func runScrub(cmd *cobra.Command, args []string) error {
	html, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), webcore.ScrubRelativeURLs(html))
	return nil
}

func runImage(cmd *cobra.Command, args []string) error {
	html, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	src, ok := webcore.FindFirstImage(html)
	if !ok {
		return fmt.Errorf("no image found")
	}

	fmt.Fprintln(cmd.OutOrStdout(), src)
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	var failed, changed bool

	for _, path := range args {
		modified, err := formatFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			failed = true
			continue
		}
		if modified {
			fmt.Fprintln(cmd.OutOrStdout(), path)
			changed = true
		}
	}

	if failed || (flagCheck && changed) {
		os.Exit(1)
	}
	return nil
}

// formatFile formats one site config file in place and reports whether it
// differed from canonical form. With --check the file is left untouched.
func formatFile(path string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	formatted := format.Format(src)
	if bytes.Equal(formatted, src) {
		return false, nil
	}
	if flagCheck {
		return true, nil
	}

	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return true, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
