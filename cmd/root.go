package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/picterm-cli/internal/display"
	"github.com/AnyUserName/picterm-cli/internal/viewer"
	"github.com/AnyUserName/picterm-cli/internal/viewport"
)

var (
	version = "0.1.0"
	verbose bool

	showScale       int
	showBorder      int
	showExitUnfocus bool
)

var rootCmd = &cobra.Command{
	Use:   "picterm [flags] <file>",
	Short: "Preview an image in the terminal window",
	Long: `picterm — shows a single raster image in the terminal with
interactive zoom and pan.

Transparent images get a checkerboard backdrop. Oversized images are
scaled down to fit the window unless an explicit --scale is given.

Keys: arrows/hjkl pan, +/- zoom, Backspace fit to window,
1-9/0 absolute scale, r/R rotate, f flip, q/Esc/Enter quit.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runShow,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().IntVarP(&showScale, "scale", "s", 0, "initial image scale in percent (0 = fit window)")
	rootCmd.Flags().IntVarP(&showBorder, "border", "b", 0, "window border size in pixels")
	rootCmd.Flags().BoolVarP(&showExitUnfocus, "exit-unfocus", "e", false, "exit if the window loses focus")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"picterm %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

func runShow(_ *cobra.Command, args []string) error {
	path := args[0]

	if showScale != 0 && (showScale < viewport.MinScale || showScale > viewport.MaxScale) {
		return fmt.Errorf("scale must be 0 or within [%d, %d]", viewport.MinScale, viewport.MaxScale)
	}
	if showBorder < 0 {
		return fmt.Errorf("border must be non-negative")
	}

	logVerbose("file: %s", path)
	logVerbose("scale: %d, border: %d, exit-unfocus: %v", showScale, showBorder, showExitUnfocus)

	term, err := display.NewTerm()
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer term.Close()

	v := viewer.New(term, viewer.Config{
		Scale:       showScale,
		Border:      showBorder,
		ExitUnfocus: showExitUnfocus,
		Verbose:     verbose,
	})
	return v.Show(path)
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[picterm] "+format+"\n", args...)
	}
}
