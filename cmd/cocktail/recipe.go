// ABOUTME: CLI commands that hand a recipe off: copy to clipboard, share link, and print.
// ABOUTME: Copy falls back to printing the text when no clipboard is available.
package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/2389-research/cocktail/internal/logger"
	"github.com/2389-research/cocktail/internal/render"
)

const qrSize = 512

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a recipe to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runCopy,
}

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Print a share link for a drink",
	Long:  "Build a deep link to the drink from share.base_url and copy the share message to the clipboard.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShare,
}

var printCmd = &cobra.Command{
	Use:   "print <id>",
	Short: "Render a printable recipe page",
	Long:  "Write a printable recipe as HTML (default, to stdout) or PDF.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

// Flags
var (
	shareQROut   string
	printHTMLOut string
	printPDFOut  string
)

func init() {
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(printCmd)

	shareCmd.Flags().StringVar(&shareQROut, "qr", "", "Also write a QR code PNG of the link to this path")
	printCmd.Flags().StringVar(&printHTMLOut, "html", "", "Write an HTML page to this path")
	printCmd.Flags().StringVar(&printPDFOut, "pdf", "", "Write a PDF to this path")
	printCmd.MarkFlagsMutuallyExclusive("html", "pdf")
}

func runCopy(cmd *cobra.Command, args []string) error {
	d, err := resolveDrink(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	text := render.RecipeText(d)
	if err := clipboard.WriteAll(text); err != nil {
		logger.Logger.Debug().Err(err).Msg("clipboard unavailable")
		fmt.Fprintln(os.Stderr, "Clipboard unavailable; recipe below:")
		fmt.Println(text)
		return nil
	}
	fmt.Printf("Copied %s to clipboard.\n", d.Name)
	return nil
}

func runShare(cmd *cobra.Command, args []string) error {
	if globalConfig.Share.BaseURL == "" {
		return fmt.Errorf("share.base_url is not configured")
	}
	d, err := resolveDrink(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	link, err := render.ShareURL(globalConfig.Share.BaseURL, d.ID)
	if err != nil {
		return err
	}

	text := render.ShareText(d, link)
	fmt.Println(text)
	if err := clipboard.WriteAll(text); err == nil {
		fmt.Fprintln(os.Stderr, "Share text copied to clipboard.")
	}

	if shareQROut != "" {
		png, err := render.ShareQR(link, qrSize)
		if err != nil {
			return err
		}
		if err := os.WriteFile(shareQROut, png, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", shareQROut, err)
		}
		fmt.Fprintf(os.Stderr, "QR code written to %s\n", shareQROut)
	}
	return nil
}

func runPrint(cmd *cobra.Command, args []string) error {
	d, err := resolveDrink(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	switch {
	case printPDFOut != "":
		var link string
		if globalConfig.Share.BaseURL != "" {
			if link, err = render.ShareURL(globalConfig.Share.BaseURL, d.ID); err != nil {
				return err
			}
		}
		return writeFile(printPDFOut, func(f *os.File) error {
			return render.PrintPDF(f, d, link)
		})
	case printHTMLOut != "":
		return writeFile(printHTMLOut, func(f *os.File) error {
			return render.PrintHTML(f, d, true)
		})
	default:
		return render.PrintHTML(os.Stdout, d, false)
	}
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}
