package converter

import (
	"fmt"

	iso "github.com/auscope/iso19115"
)

// Converter runs one profile. Configure it (Override) before sharing; once
// conversions start it is read-only and safe for concurrent use.
type Converter struct {
	profile Profile
	stages  map[StageID]StageFunc
	opts    options
}

// New validates the profile and checks the resolver registry against the
// document model. A registry that cannot construct every codelist the model
// declares is a *iso19115.ResolverError.
func New(profile Profile, opts ...Option) (*Converter, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	if err := o.registry.VerifyModel(); err != nil {
		return nil, err
	}
	for _, id := range profile.Settings.Thesauri {
		if _, ok := o.thesauri.Get(id); !ok {
			return nil, fmt.Errorf("profile %q: unknown thesaurus %q", profile.Name, id)
		}
	}
	stages := make(map[StageID]StageFunc, len(builtinStages))
	for id, fn := range builtinStages {
		stages[id] = fn
	}
	return &Converter{profile: profile.clone(), stages: stages, opts: o}, nil
}

// Profile returns a copy of the converter's profile.
func (c *Converter) Profile() Profile { return c.profile.clone() }

// Override replaces the implementation of one stage.
func (c *Converter) Override(id StageID, fn StageFunc) error {
	if !KnownStage(id) {
		return fmt.Errorf("converter: unknown stage %q", id)
	}
	if fn == nil {
		return fmt.Errorf("converter: nil stage func for %q", id)
	}
	c.stages[id] = fn
	return nil
}

// Stage returns the implementation currently bound to id.
func (c *Converter) Stage(id StageID) (StageFunc, bool) {
	fn, ok := c.stages[id]
	return fn, ok
}

// NewController starts a conversion.
func (c *Converter) NewController() *Controller {
	ctl := &Controller{conv: c, logger: c.opts.logger.With("profile", c.profile.Name)}
	ctl.issues = iso.NewCollector(func(is iso.Issue) {
		c.opts.metrics.IncrementSoftIssue(is.Code)
		ctl.logger.Warn("soft issue",
			"path", is.Path,
			"code", is.Code,
			"stage", is.Stage,
			"message", is.Message,
		)
	})
	return ctl
}
