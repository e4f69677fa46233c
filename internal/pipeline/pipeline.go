// Package pipeline runs posted resources through the three-stage moderation
// flow: normalize, safety screen, recommend. The stages are inherently
// serial; each consumes the previous stage's output. The pipeline never
// retries a failed stage, and its result is advisory: the resource row is
// persisted before the pipeline runs.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"campusshare/internal/metrics"
)

// Stage names, used for error wrapping and metrics labels.
const (
	StageNormalize = "normalize"
	StageScreen    = "screen"
	StageRecommend = "recommend"
)

// Completer is the model endpoint contract: one prompt in, generated text out.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Submission is the raw text payload derived from a resource's fields at
// posting time. It is ephemeral; only the persisted resource survives.
type Submission struct {
	Title       string
	Description string
	Category    string
	Owner       string
}

// String serializes the submission for the normalize stage.
func (s Submission) String() string {
	return fmt.Sprintf("title: %s\ndescription: %s\ncategory: %s\nowner: %s",
		s.Title, s.Description, s.Category, s.Owner)
}

// Outcome is the terminal pipeline result for an approved or rejected
// submission. Stage failures surface as errors from Run instead.
type Outcome struct {
	Verdict         Verdict
	CleanedText     string
	Recommendations string // empty when rejected
}

// Approved returns true if the submission passed the safety screen.
func (o *Outcome) Approved() bool {
	return !o.Verdict.IsRejected()
}

// Message renders the single user-facing result string.
func (o *Outcome) Message() string {
	if o.Verdict.IsRejected() {
		return "Rejected: " + o.Verdict.Reason
	}
	return "Approved!\n\nRecommended for you:\n" + o.Recommendations
}

// Pipeline sequences the three moderation stages.
type Pipeline struct {
	model   Completer
	prompts Prompts
}

// New creates a pipeline backed by the given model endpoint.
func New(model Completer, prompts Prompts) *Pipeline {
	return &Pipeline{model: model, prompts: prompts}
}

// Run processes one submission to a terminal state. Rejection short-circuits
// before the recommend stage. Any stage failure aborts the run with a
// wrapped error; earlier results are discarded and nothing is retried.
func (p *Pipeline) Run(ctx context.Context, sub Submission) (*Outcome, error) {
	cleaned, err := p.callStage(ctx, StageNormalize, p.prompts.Normalize, sub.String())
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", StageNormalize, err)
	}

	screened, err := p.callStage(ctx, StageScreen, p.prompts.Screen, cleaned)
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", StageScreen, err)
	}

	verdict := ParseVerdict(screened)
	if verdict.IsRejected() {
		return &Outcome{Verdict: verdict, CleanedText: cleaned}, nil
	}

	recommendations, err := p.callStage(ctx, StageRecommend, p.prompts.Recommend, cleaned)
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", StageRecommend, err)
	}

	return &Outcome{
		Verdict:         verdict,
		CleanedText:     cleaned,
		Recommendations: recommendations,
	}, nil
}

// callStage renders the stage prompt and makes the single model call.
func (p *Pipeline) callStage(ctx context.Context, stage, tmpl, data string) (string, error) {
	prompt, err := render(stage, tmpl, data)
	if err != nil {
		return "", err
	}

	start := time.Now()
	out, err := p.model.Complete(ctx, prompt)
	metrics.ObserveModelCall(stage, time.Since(start))
	if err != nil {
		return "", err
	}
	return out, nil
}
