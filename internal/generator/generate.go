// Package generator orchestrates the cover letter pipeline: load
// configuration, fetch the posting, resolve fields, assemble sections,
// render and write. Execution is strictly sequential; each stage produces an
// immutable artifact consumed by the next.
package generator

import (
	"context"
	"log"

	"github.com/jonathan/cover-letter-generator/internal/posting"
	"github.com/jonathan/cover-letter-generator/internal/profile"
	"github.com/jonathan/cover-letter-generator/internal/rendering"
	"github.com/jonathan/cover-letter-generator/internal/resolve"
	"github.com/jonathan/cover-letter-generator/internal/sections"
)

// Params collects everything one invocation needs.
type Params struct {
	JobURL        string
	ProfilePath   string
	SectionsPath  string
	TemplatesDir  string
	OutputPath    string
	OverridesPath string
	Format        string
	Runtime       resolve.RuntimeArgs
	Counts        sections.Counts
	FetchOptions  *posting.Options
	Verbose       bool
}

// Generate runs the full pipeline and returns the output path.
func Generate(ctx context.Context, params Params) (string, error) {
	p, err := profile.Load(params.ProfilePath)
	if err != nil {
		return "", err
	}
	if params.Verbose {
		log.Printf("[VERBOSE] Loaded profile for %s", p.Applicant.Name)
	}

	specs, err := sections.LoadSections(params.SectionsPath)
	if err != nil {
		return "", err
	}
	if params.Verbose {
		log.Printf("[VERBOSE] Loaded %d section specs", len(specs))
	}

	overrides, err := resolve.LoadOverrides(params.OverridesPath)
	if err != nil {
		return "", err
	}

	metadata, err := posting.Extract(ctx, params.JobURL, params.FetchOptions, params.Verbose)
	if err != nil {
		return "", err
	}
	if params.Verbose {
		log.Printf("[VERBOSE] Posting metadata: company=%q title=%q", metadata.Company, metadata.Title)
	}

	fields := resolve.Resolve(p, metadata, overrides, &params.Runtime)

	assembled := sections.Assemble(specs, fields, params.Counts)
	if params.Verbose {
		log.Printf("[VERBOSE] Assembled %d enabled sections", len(assembled))
	}

	rendered, err := rendering.RenderSections(params.TemplatesDir, assembled)
	if err != nil {
		return "", err
	}

	document := rendering.JoinDocument(rendered, params.Format)
	if err := rendering.Write(document, params.OutputPath); err != nil {
		return "", err
	}

	return params.OutputPath, nil
}
