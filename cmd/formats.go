package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AnyUserName/picterm-cli/internal/decoder"
)

// codecOrigin maps each registered format to the codec behind it.
var codecOrigin = map[string]string{
	"jpeg": "image/jpeg (stdlib)",
	"png":  "image/png (stdlib)",
	"gif":  "image/gif (stdlib)",
	"webp": "golang.org/x/image/webp",
	"bmp":  "golang.org/x/image/bmp",
	"tiff": "golang.org/x/image/tiff",
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported image formats",
	Run:   runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(_ *cobra.Command, _ []string) {
	fmt.Println("Image format support:")
	for _, name := range decoder.NewRegistry().Names() {
		fmt.Printf("  %s %-5s %s\n", color.GreenString("✓"), name, codecOrigin[name])
	}
}
