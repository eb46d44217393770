// Package analysis combines the deterministic review rules with an optional
// LLM-written narrative. The rule-based review is the source of truth; the
// narrative is advisory and the analysis degrades to rules-only when the
// model is unavailable or fails.
package analysis

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/scoring"
	"github.com/jonathan/resume-studio/internal/types"
)

// Result is the outcome of a full analysis run.
type Result struct {
	Review    types.Review `json:"review"`
	Narrative string       `json:"narrative,omitempty"`
}

// Analyzer runs resume analysis. A nil LLM client is valid and produces
// rule-based results only.
type Analyzer struct {
	llm llm.Client
}

// New creates an analyzer. Pass a nil client for rules-only analysis.
func New(client llm.Client) *Analyzer {
	return &Analyzer{llm: client}
}

// Analyze produces a review and, when a model is configured, a narrative
// assessment. The two branches run in parallel; cancelling the context
// aborts the run. A model failure is logged and never fails the analysis.
func (a *Analyzer) Analyze(ctx context.Context, r *types.Resume) (*Result, error) {
	result := &Result{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		result.Review = scoring.Review(r)
		return nil
	})

	g.Go(func() error {
		if a.llm == nil {
			return nil
		}
		narrative, err := a.llm.GenerateContent(ctx, buildPrompt(r))
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("[WARN] narrative generation failed, continuing with rule-based review only: %v", err)
			return nil
		}
		result.Narrative = narrative
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
