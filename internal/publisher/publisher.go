// Package publisher sequences a PRD publish: validation, naming, registry
// upsert, branch creation, file writes, and pull-request creation.
// All decision logic lives in the leaf packages; this package owns the
// ordering contract and converts every failure into a Result.
package publisher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/prdhub/prdhub/internal/config"
	"github.com/prdhub/prdhub/internal/git"
	"github.com/prdhub/prdhub/internal/github"
	"github.com/prdhub/prdhub/internal/log"
	"github.com/prdhub/prdhub/internal/naming"
	"github.com/prdhub/prdhub/internal/prd"
	"github.com/prdhub/prdhub/internal/pubsub"
	"github.com/prdhub/prdhub/internal/registry"
	"github.com/prdhub/prdhub/internal/repoident"
	"github.com/prdhub/prdhub/internal/tracing"
)

// ErrNameExtraction indicates neither the request nor the document yields
// a product name.
var ErrNameExtraction = errors.New("could not determine product name: pass --name or add a '# PRD:' heading")

// ErrDomainRequired indicates the request carries no domain.
var ErrDomainRequired = errors.New("domain is required")

// Request describes one publish.
type Request struct {
	FilePath    string
	Domain      string
	ProductName string   // optional; extracted from the document when empty
	OwnerTeam   string   // optional
	SourceRepo  string   // optional; auto-detected from the local git remote when empty
	Tags        []string // optional
	TargetRepo  string   // optional; config default when empty
	BaseBranch  string   // optional; config default when empty
	DryRun      bool
}

// Result reports the outcome of a publish. On failure only Error is set;
// every error is flattened to a single message here, never raised further.
type Result struct {
	Success   bool
	DryRun    bool
	Operation string // "insert" or "update"
	Branch    string
	PRDPath   string
	PRNumber  int
	PRURL     string
	Error     string

	// RegistryBefore/After carry the index content for dry-run diffing.
	RegistryBefore string
	RegistryAfter  string
}

// ClientFactory builds a remote client for the resolved target repository.
type ClientFactory func(repo repoident.Ref) github.Client

// Options configures a Publisher.
type Options struct {
	Config    config.Config
	NewClient ClientFactory
	Git       git.Executor           // optional; nil disables source-repo auto-detection
	Tracer    trace.Tracer           // optional; no-op when nil
	Events    *pubsub.Broker[string] // optional; publish step progress
	Now       func() time.Time       // optional; defaults to time.Now
	ReadFile  func(string) ([]byte, error) // optional; defaults to os.ReadFile
}

// Publisher drives the publish pipeline.
type Publisher struct {
	cfg       config.Config
	newClient ClientFactory
	git       git.Executor
	tracer    trace.Tracer
	events    *pubsub.Broker[string]
	now       func() time.Time
	readFile  func(string) ([]byte, error)
}

// New creates a Publisher.
func New(opts Options) *Publisher {
	p := &Publisher{
		cfg:       opts.Config,
		newClient: opts.NewClient,
		git:       opts.Git,
		tracer:    opts.Tracer,
		events:    opts.Events,
		now:       opts.Now,
		readFile:  opts.ReadFile,
	}
	if p.tracer == nil {
		p.tracer = noop.NewTracerProvider().Tracer("noop")
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.readFile == nil {
		p.readFile = os.ReadFile
	}
	return p
}

// Publish runs the full pipeline. Any failure past the dry-run gate can
// leave the remote partially mutated (branch without PR, files without
// PR); no compensation is attempted - the error reports the failing step
// so a human can clean up.
func (p *Publisher) Publish(ctx context.Context, req Request) Result {
	invocationID := uuid.NewString()

	ctx, span := p.tracer.Start(ctx, tracing.SpanPublish, trace.WithAttributes(
		attribute.String(tracing.AttrInvocationID, invocationID),
		attribute.String(tracing.AttrDomain, req.Domain),
		attribute.Bool(tracing.AttrDryRun, req.DryRun),
	))
	defer span.End()

	res := p.publish(ctx, req, invocationID)
	if !res.Success {
		span.SetStatus(codes.Error, res.Error)
		log.ErrorErr(log.CatPublish, "publish failed", errors.New(res.Error), "invocation", invocationID)
	} else {
		span.SetAttributes(attribute.String(tracing.AttrOperation, res.Operation))
		span.SetStatus(codes.Ok, "")
	}
	return res
}

func (p *Publisher) publish(ctx context.Context, req Request, invocationID string) Result {
	if strings.TrimSpace(req.Domain) == "" {
		return fail(ErrDomainRequired)
	}

	// Step 1: validate document
	var content []byte
	if err := p.step(ctx, tracing.SpanValidate, "validating document", func(context.Context) error {
		raw, err := p.readFile(req.FilePath)
		if err != nil {
			return fmt.Errorf("reading PRD file: %w", err)
		}
		if vres := prd.Validate(string(raw)); !vres.Valid {
			return fmt.Errorf("validation failed: %w", vres.Err())
		}
		content = raw
		return nil
	}); err != nil {
		return fail(err)
	}

	// Step 2: resolve product name (explicit wins)
	name := strings.TrimSpace(req.ProductName)
	if err := p.step(ctx, tracing.SpanResolveName, "resolving product name", func(context.Context) error {
		if name == "" {
			extracted, ok := prd.ExtractProductName(string(content))
			if !ok {
				return ErrNameExtraction
			}
			name = extracted
		}
		return nil
	}); err != nil {
		return fail(err)
	}

	// Step 3: resolve source repo, best effort, never blocking
	sourceRepo := req.SourceRepo
	if sourceRepo == "" {
		sourceRepo = p.detectSourceRepo()
	}

	// Step 4: resolve target repository
	targetRepo := req.TargetRepo
	if targetRepo == "" {
		targetRepo = p.cfg.DefaultRepo
	}
	ref, refErr := repoident.Parse(targetRepo)
	if refErr != nil {
		return fail(refErr)
	}

	// Step 5: destination path
	slug := naming.Sanitize(name)
	prdPath := fmt.Sprintf("prds/%s/%s.md", req.Domain, slug)

	baseBranch := req.BaseBranch
	if baseBranch == "" {
		baseBranch = p.cfg.BaseBranch
	}

	client := p.newClient(ref)

	if baseBranch == "" {
		resolved, err := client.GetDefaultBranch(ctx)
		if err != nil {
			return fail(fmt.Errorf("resolving default branch: %w", err))
		}
		baseBranch = resolved
	}

	// Step 6: fetch registry and compute the upsert
	var rawRegistry []byte
	if err := p.step(ctx, tracing.SpanFetchRegistry, "fetching registry", func(ctx context.Context) error {
		raw, _, err := client.GetFileContent(ctx, p.cfg.RegistryPath, baseBranch)
		if err != nil {
			return fmt.Errorf("reading registry: %w", err)
		}
		rawRegistry = raw
		return nil
	}); err != nil {
		return fail(err)
	}

	reg, recovered := registry.Load(rawRegistry)
	if recovered {
		// Deliberate policy: a corrupt index is replaced, not surfaced as
		// an error. Warn loudly so the data loss is detectable.
		log.Warn(log.CatRegistry, "registry content was corrupt, reinitializing",
			"repo", ref.String(), "path", p.cfg.RegistryPath, "invocation", invocationID)
		p.emit(pubsub.WarningEvent, "registry.json was unparseable and will be rewritten from scratch")
	}

	now := p.now().UTC()

	var op registry.Op
	var updatedRaw []byte
	if err := p.step(ctx, tracing.SpanRegistryUpsert, "computing registry upsert", func(context.Context) error {
		candidate := registry.Entry{
			ProductName: name,
			Domain:      req.Domain,
			OwnerTeam:   req.OwnerTeam,
			SourceRepo:  sourceRepo,
			PRDPath:     prdPath,
			Tags:        req.Tags,
		}
		var updated registry.Registry
		updated, op = registry.Upsert(reg, candidate, now)

		raw, err := registry.Marshal(updated)
		if err != nil {
			return fmt.Errorf("encoding registry: %w", err)
		}
		updatedRaw = raw
		return nil
	}); err != nil {
		return fail(err)
	}

	// Step 7: branch name. The timestamp is generated once and reused so
	// the displayed branch always matches the created one.
	ts := strings.NewReplacer(":", "-", ".", "-").Replace(now.Format(time.RFC3339))
	branch := fmt.Sprintf("prd/%s/%s-%s", req.Domain, slug, ts)

	// Step 8: PR title and body derive from the same Op as the upsert
	title, body := composePullRequest(op, name, req.Domain, req.OwnerTeam, sourceRepo, req.Tags, prdPath)

	log.Info(log.CatPublish, "publish computed",
		"invocation", invocationID, "operation", op, "path", prdPath, "branch", branch, "dry_run", req.DryRun)

	// Step 9: dry run stops before any remote mutation
	if req.DryRun {
		return Result{
			Success:        true,
			DryRun:         true,
			Operation:      op.String(),
			Branch:         branch,
			PRDPath:        prdPath,
			RegistryBefore: string(rawRegistry),
			RegistryAfter:  string(updatedRaw),
		}
	}

	// Step 10: mutate the remote. PRD file first, registry second - the
	// ordering only matters for diagnosing partial failures.
	if err := p.step(ctx, tracing.SpanCreateBranch, "creating branch "+branch, func(ctx context.Context) error {
		if err := client.CreateBranch(ctx, branch, baseBranch); err != nil {
			return fmt.Errorf("creating branch: %w", err)
		}
		return nil
	}); err != nil {
		return fail(err)
	}

	if err := p.step(ctx, tracing.SpanWriteFiles, "writing files", func(ctx context.Context) error {
		prdMsg := fmt.Sprintf("Add PRD for %s", name)
		if op == registry.OpUpdate {
			prdMsg = fmt.Sprintf("Update PRD for %s", name)
		}
		if err := client.CreateOrUpdateFile(ctx, prdPath, content, prdMsg, branch); err != nil {
			return fmt.Errorf("writing PRD file: %w", err)
		}
		if err := client.CreateOrUpdateFile(ctx, p.cfg.RegistryPath, updatedRaw, "Update PRD registry index", branch); err != nil {
			return fmt.Errorf("writing registry: %w", err)
		}
		return nil
	}); err != nil {
		return fail(err)
	}

	var pr github.PullRequest
	if err := p.step(ctx, tracing.SpanCreatePR, "opening pull request", func(ctx context.Context) error {
		created, err := client.CreatePullRequest(ctx, title, body, branch, baseBranch)
		if err != nil {
			return fmt.Errorf("creating pull request: %w", err)
		}
		pr = created
		return nil
	}); err != nil {
		return fail(err)
	}

	return Result{
		Success:   true,
		Operation: op.String(),
		Branch:    branch,
		PRDPath:   prdPath,
		PRNumber:  pr.Number,
		PRURL:     pr.URL,
	}
}

// detectSourceRepo reads the origin remote of the local repository.
// Best effort: any failure yields an empty source repo.
func (p *Publisher) detectSourceRepo() string {
	if p.git == nil || !p.git.IsGitRepo() {
		return ""
	}
	raw, err := p.git.GetRemoteURL("origin")
	if err != nil || raw == "" {
		return ""
	}
	normalized, ok := repoident.NormalizeRemoteURL(raw)
	if !ok {
		return ""
	}
	return normalized
}

// step wraps one pipeline step in a child span and bracketing progress
// events. The finished event fires only on success; on failure the span
// records the error and the pipeline aborts.
func (p *Publisher) step(ctx context.Context, spanName, msg string, fn func(context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, spanName)
	defer span.End()

	p.emit(pubsub.StepStartedEvent, msg)
	if err := fn(ctx); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	p.emit(pubsub.StepFinishedEvent, msg)
	return nil
}

func (p *Publisher) emit(eventType pubsub.EventType, msg string) {
	if p.events != nil {
		p.events.Publish(eventType, msg)
	}
}

func fail(err error) Result {
	return Result{Error: err.Error()}
}

// composePullRequest builds the deterministic PR title and body.
func composePullRequest(op registry.Op, name, domain, owner, sourceRepo string, tags []string, prdPath string) (string, string) {
	var title string
	if op == registry.OpUpdate {
		title = fmt.Sprintf("Update PRD: %s", name)
	} else {
		title = fmt.Sprintf("Add PRD: %s", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	fmt.Fprintf(&b, "- **Product**: %s\n", name)
	fmt.Fprintf(&b, "- **Domain**: %s\n", domain)
	fmt.Fprintf(&b, "- **Path**: `%s`\n", prdPath)
	if owner != "" {
		fmt.Fprintf(&b, "- **Owner team**: %s\n", owner)
	}
	if sourceRepo != "" {
		fmt.Fprintf(&b, "- **Source repo**: %s\n", sourceRepo)
	}
	if len(tags) > 0 {
		fmt.Fprintf(&b, "- **Tags**: %s\n", strings.Join(tags, ", "))
	}
	b.WriteString("\nThis pull request was opened by prdhub. It adds the PRD document and updates `registry.json` in a single change set.\n")

	return title, b.String()
}
