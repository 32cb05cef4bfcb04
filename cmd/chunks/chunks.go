// Package chunks implements the chunks command, a dry run of the catalog
// and partitioner that prints chunking statistics without any API calls.
package chunks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/internal/catalog"
	"github.com/repolens/repolens/internal/chunker"
	"github.com/repolens/repolens/internal/config"
)

// Flag variables for the chunks command.
var (
	chunksTargetSize int
	chunksVerbose    bool
)

// ChunksCmd previews how a repository would be partitioned for analysis.
var ChunksCmd = &cobra.Command{
	Use:   "chunks <path>",
	Short: "Preview how a repository would be split into analysis chunks",
	Long: "Catalog a repository and partition it into analysis-sized chunks, then " +
		"print chunk statistics. No analysis API calls are made.",
	Example: `  # Preview chunking for the current directory
  repolens chunks .

  # Use a smaller chunk budget and list the files in each chunk
  repolens chunks /path/to/repo --target-size 50000 --verbose`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateChunks,
	RunE:    runChunks,
}

func init() {
	ChunksCmd.Flags().IntVarP(&chunksTargetSize, "target-size", "t", 0,
		"Chunk byte budget (default from config)")
	ChunksCmd.Flags().BoolVarP(&chunksVerbose, "verbose", "v", false,
		"List the files in each chunk")
}

func validateChunks(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("target-size") && chunksTargetSize <= 0 {
		return fmt.Errorf("invalid target size %d; must be positive", chunksTargetSize)
	}

	cmd.SilenceUsage = true
	return nil
}

func runChunks(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := config.Get()

	targetSize := chunksTargetSize
	if targetSize <= 0 {
		targetSize = cfg.Chunking.TargetSize
	}

	filter := catalog.NewFilter(catalog.Options{
		MaxFileSize:     cfg.Catalog.MaxFileSize,
		SkipExtensions:  cfg.Catalog.SkipExtensions,
		SkipDirectories: cfg.Catalog.SkipDirectories,
		SkipFiles:       cfg.Catalog.SkipFiles,
	})

	files, err := catalog.Load(args[0], filter)
	if err != nil {
		return fmt.Errorf("failed to load repository; %w", err)
	}

	if len(files) == 0 {
		fmt.Fprintln(out, "No files found to analyze.")
		return nil
	}

	chunks, err := chunker.Partition(files, targetSize)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, chunker.Summarize(chunks))

	if chunksVerbose {
		fmt.Fprintln(out)
		for i, c := range chunks {
			fmt.Fprintf(out, "Chunk %d:\n", i+1)
			for _, f := range c.Files() {
				fmt.Fprintf(out, "  %s (%d bytes)\n", f.Path, len(f.Content))
			}
		}
	}

	return nil
}
