package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AnyUserName/picterm-cli/internal/decoder"
	"github.com/AnyUserName/picterm-cli/internal/hasher"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print image metadata without opening a window",
	Long: `Decodes the file through the format registry and reports its
format, dimensions, transparency and xxHash64 content hash.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	hash, err := hasher.ContentHashReader(f, 16)
	if err != nil {
		return fmt.Errorf("hash %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %s: %w", path, err)
	}

	buf, format, err := decoder.NewRegistry().Decode(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	label := color.New(color.FgCyan).SprintfFunc()
	fmt.Printf("  %s %s\n", label("%-12s", "File:"), path)
	fmt.Printf("  %s %s\n", label("%-12s", "Format:"), format)
	fmt.Printf("  %s %dx%d\n", label("%-12s", "Dimensions:"), buf.Width, buf.Height)
	fmt.Printf("  %s %v\n", label("%-12s", "Alpha:"), buf.HasAlpha)
	fmt.Printf("  %s %s\n", label("%-12s", "Size:"), formatBytes(st.Size()))
	fmt.Printf("  %s %s\n", label("%-12s", "Hash:"), hash)
	return nil
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
