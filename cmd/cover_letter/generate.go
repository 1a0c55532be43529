package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cover-letter-generator/internal/generator"
	"github.com/jonathan/cover-letter-generator/internal/rendering"
	"github.com/jonathan/cover-letter-generator/internal/resolve"
	"github.com/jonathan/cover-letter-generator/internal/sections"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored cover letter from a job posting",
	Long:  "Generate fetches the job posting, extracts structured metadata, merges it with your profile and overrides, and renders the enabled lego sections into a single letter.",
	RunE:  runGenerate,
}

var (
	jobURL        string
	profilePath   string
	sectionsPath  string
	templatesDir  string
	outputPath    string
	overridesPath string
	outputFormat  string

	companyFeatures []string
	skillsOverride  []string

	companyFeatureCount int
	degreesCount        int
	certCount           int
	skillsCount         int
	stakeholderCount    int
	presentedCount      int
	teamCount           int

	verbose bool
)

func init() {
	generateCmd.Flags().StringVarP(&jobURL, "job-url", "j", "", "Link to the job posting (required)")
	generateCmd.Flags().StringVar(&profilePath, "profile", "config/profile.json", "Path to your profile configuration file")
	generateCmd.Flags().StringVar(&sectionsPath, "sections", "config/sections.json", "JSON file that defines which template sections (lego pieces) are used")
	generateCmd.Flags().StringVar(&templatesDir, "templates", "templates", "Directory that stores section templates")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "output/cover_letter.md", "Where to save the generated letter")
	generateCmd.Flags().StringVar(&overridesPath, "overrides", "", "Optional JSON file with manual overrides for job metadata")
	generateCmd.Flags().StringVar(&outputFormat, "format", rendering.FormatMarkdown, "Output format: markdown or text")

	generateCmd.Flags().StringArrayVar(&companyFeatures, "company-feature", nil, "Company-specific talking point to highlight (repeatable)")
	generateCmd.Flags().StringArrayVar(&skillsOverride, "skill", nil, "Skill to emphasize for this job (repeatable)")

	defaults := sections.DefaultCounts()
	generateCmd.Flags().IntVar(&companyFeatureCount, "company-feature-count", defaults.CompanyFeatures, "How many company features to keep")
	generateCmd.Flags().IntVar(&degreesCount, "degrees-count", defaults.Degrees, "How many degrees/qualifications to include")
	generateCmd.Flags().IntVar(&certCount, "cert-count", defaults.Certifications, "Number of certifications to include")
	generateCmd.Flags().IntVar(&skillsCount, "skills-count", defaults.Skills, "Number of skills to include")
	generateCmd.Flags().IntVar(&stakeholderCount, "stakeholder-count", defaults.Stakeholders, "Number of stakeholder audiences to include")
	generateCmd.Flags().IntVar(&presentedCount, "presented-count", defaults.PresentedTo, "Number of presentation audiences to include")
	generateCmd.Flags().IntVar(&teamCount, "team-count", defaults.Teams, "Number of teams to include")

	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed progress information")

	_ = generateCmd.MarkFlagRequired("job-url")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if !rendering.ValidFormat(outputFormat) {
		return fmt.Errorf("unknown format %q: choose markdown or text", outputFormat)
	}

	// Env vars (possibly from .env) act as defaults for unset path flags.
	if !cmd.Flags().Changed("profile") {
		profilePath = envOr("COVER_LETTER_PROFILE", profilePath)
	}
	if !cmd.Flags().Changed("sections") {
		sectionsPath = envOr("COVER_LETTER_SECTIONS", sectionsPath)
	}
	if !cmd.Flags().Changed("templates") {
		templatesDir = envOr("COVER_LETTER_TEMPLATES", templatesDir)
	}
	if !cmd.Flags().Changed("output") {
		outputPath = envOr("COVER_LETTER_OUTPUT", outputPath)
	}

	params := generator.Params{
		JobURL:        jobURL,
		ProfilePath:   profilePath,
		SectionsPath:  sectionsPath,
		TemplatesDir:  templatesDir,
		OutputPath:    outputPath,
		OverridesPath: overridesPath,
		Format:        outputFormat,
		Runtime: resolve.RuntimeArgs{
			CompanyFeatures: companyFeatures,
			Skills:          skillsOverride,
		},
		Counts: sections.Counts{
			CompanyFeatures: companyFeatureCount,
			Degrees:         degreesCount,
			Certifications:  certCount,
			Skills:          skillsCount,
			Stakeholders:    stakeholderCount,
			PresentedTo:     presentedCount,
			Teams:           teamCount,
		},
		Verbose: verbose,
	}

	written, err := generator.Generate(cmd.Context(), params)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Cover letter created at %s\n", written)
	return nil
}
