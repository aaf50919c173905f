package resolver

import (
	"context"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/store"
	"github.com/MKhiriev/go-toml-selector/models"
)

// NoSourceToken is the change token reported while the source is missing.
const NoSourceToken = "0"

// Result is the outcome of resolving one section.
type Result struct {
	// Section is the name that was asked for.
	Section string

	// Found reports whether the section exists in the current source.
	Found bool

	// Record is the section's fields in source order, empty when not found.
	Record models.Record

	// Serialized is Record as indented JSON, "{}" when not found.
	Serialized string

	// Projection always has exactly the policy's arity.
	Projection models.Projection
}

// Output converts the result into the host tuple form.
func (r Result) Output() models.NodeOutput {
	return models.NodeOutput{Record: r.Serialized, Outputs: r.Projection}
}

// Resolver resolves sections of a source through a projection policy.
type Resolver struct {
	loader store.SourceLoader
	policy Policy
	logger *logger.Logger
}

// New builds a resolver.
func New(loader store.SourceLoader, policy Policy, log *logger.Logger) *Resolver {
	return &Resolver{
		loader: loader,
		policy: policy,
		logger: log,
	}
}

// Policy returns the projection policy as configured.
func (r *Resolver) Policy() Policy { return r.policy }

// CurrentPolicy returns the policy in effect for the current source. Only
// a [SourceSized] policy causes a load.
func (r *Resolver) CurrentPolicy(ctx context.Context) Policy {
	if _, sized := r.policy.(SourceSized); !sized {
		return r.policy
	}
	src, ok := r.Source(ctx)
	return r.policyFor(src, ok)
}

func (r *Resolver) policyFor(src models.Source, ok bool) Policy {
	if sized, isSized := r.policy.(SourceSized); isSized {
		return sized.ForSource(src, ok)
	}
	return r.policy
}

// Loader returns the underlying source loader.
func (r *Resolver) Loader() store.SourceLoader { return r.loader }

type resolveOptions struct {
	diagnostics bool
}

// Option tunes a single Resolve call.
type Option func(*resolveOptions)

// WithDiagnostics toggles per-field diagnostic logging. It is on by default
// and never changes the result.
func WithDiagnostics(enabled bool) Option {
	return func(o *resolveOptions) {
		o.diagnostics = enabled
	}
}

// Source loads a fresh snapshot. Load failures are logged and reported as
// an empty source with ok set to false.
func (r *Resolver) Source(ctx context.Context) (models.Source, bool) {
	src, err := r.loader.Load(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Str("source", r.loader.Name()).Msg("config source unavailable")
		return models.Source{}, false
	}
	return src, true
}

// ListSections returns the section names in source order, or ["default"]
// when the source is unavailable or empty.
func (r *Resolver) ListSections(ctx context.Context) []string {
	src, ok := r.Source(ctx)
	if !ok || src.IsEmpty() {
		return []string{models.DefaultSectionName}
	}
	return src.Names()
}

// Resolve loads the source and projects the selected section. An absent
// section, or an unavailable source, yields "{}" and the empty projection.
func (r *Resolver) Resolve(ctx context.Context, section string, opts ...Option) Result {
	o := resolveOptions{diagnostics: true}
	for _, opt := range opts {
		opt(&o)
	}

	src, ok := r.Source(ctx)
	policy := r.policyFor(src, ok)

	res := Result{
		Section:    section,
		Serialized: models.Record{}.Serialize(),
		Projection: policy.Empty(),
	}
	if !ok {
		return res
	}

	rec, found := src.Lookup(section)
	if !found {
		if o.diagnostics {
			r.logger.Info().Str("section", section).Msg("section not found, returning empty outputs")
		}
		return res
	}

	res.Found = true
	res.Record = rec
	res.Serialized = rec.Serialize()
	res.Projection = policy.Project(section, rec)

	if o.diagnostics {
		r.logDiagnostics(res, policy.SlotTypes())
	}

	return res
}

func (r *Resolver) logDiagnostics(res Result, types []models.SlotType) {
	log := r.logger.ForSection(res.Section)
	log.Info().Int("fields", res.Record.Len()).Int("slots", len(res.Projection)).Msg("resolved section")

	for _, f := range res.Record.Fields() {
		log.Debug().
			Str("key", f.Key).
			Str("value", f.Value.String()).
			Str("type", f.Value.TypeName()).
			Msg("field")
	}

	for i, v := range res.Projection {
		log.Debug().
			Int("slot", i).
			Str("slot_type", string(types[i])).
			Str("value", v.String()).
			Str("type", v.TypeName()).
			Msg("slot")
	}
}

// ChangeToken returns "<version>_<section>" while the source exists and
// NoSourceToken otherwise. The token changes exactly when the source
// version or the selection changes.
func (r *Resolver) ChangeToken(ctx context.Context, section string) string {
	version, ok := r.loader.Version(ctx)
	if !ok {
		return NoSourceToken
	}
	return version + "_" + section
}
