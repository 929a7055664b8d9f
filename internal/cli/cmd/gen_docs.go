package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/bmb/internal/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:    "gen-docs",
	Short:  "Generate man pages or markdown from the command tree",
	Hidden: true,
	Long: `Generate documentation from the command definitions.

Man pages go to $XDG_DATA_HOME/man/man1 by default so 'man bmb' works right
away (run 'mandb' if it does not). Markdown goes to ./docs.`,
	Example: `  bmb gen-docs
  bmb gen-docs --format markdown
  bmb gen-docs --output ./man`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	var (
		generate func(string) error
		ext      string
		outDir   = genDocsOutputDir
	)

	switch genDocsFormat {
	case "man":
		generate, ext = generateManPages, ".1"
		if outDir == "" {
			dir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outDir = dir
		}
	case "markdown":
		generate, ext = generateMarkdown, ".md"
		if outDir == "" {
			outDir = "./docs"
		}
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output: no "Auto generated by" footer.
	rootCmd.DisableAutoGenTag = true
	if err := generate(outDir); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s docs in %s\n", genDocsFormat, outDir)
	listGenerated(out, outDir, ext)
	return nil
}

func generateManPages(outDir string) error {
	now := time.Now()
	header := &doc.GenManHeader{
		Title:   "BMB",
		Section: "1",
		Source:  buildInfo.Short(),
		Manual:  "bmb Manual",
		Date:    &now,
	}
	if err := doc.GenManTree(rootCmd, header, outDir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}
	return nil
}

func generateMarkdown(outDir string) error {
	if err := doc.GenMarkdownTree(rootCmd, outDir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}
	return nil
}

func listGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
}
