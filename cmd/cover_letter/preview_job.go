package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cover-letter-generator/internal/posting"
	"github.com/spf13/cobra"
)

var previewJobCmd = &cobra.Command{
	Use:   "preview-job",
	Short: "Fetch a job posting and print the extracted metadata",
	Long:  "Preview-job fetches a posting URL and prints the structured metadata the generator would use, so you can check extraction quality before generating.",
	RunE:  runPreviewJob,
}

var (
	previewURL     string
	previewVerbose bool
)

func init() {
	previewJobCmd.Flags().StringVarP(&previewURL, "job-url", "j", "", "Link to the job posting (required)")
	previewJobCmd.Flags().BoolVarP(&previewVerbose, "verbose", "v", false, "Print detailed progress information")

	_ = previewJobCmd.MarkFlagRequired("job-url")

	rootCmd.AddCommand(previewJobCmd)
}

func runPreviewJob(cmd *cobra.Command, args []string) error {
	metadata, err := posting.Extract(cmd.Context(), previewURL, nil, previewVerbose)
	if err != nil {
		return err
	}

	if !metadata.Found() {
		fmt.Fprintln(os.Stdout, "No structured metadata found; generation would rely on overrides and profile defaults.")
	}

	jsonBytes, err := metadata.ToJSON()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	return nil
}
