package tracing

// Span attribute keys for publish tracing.
const (
	// Publish attributes
	AttrInvocationID = "publish.invocation_id"
	AttrProductName  = "publish.product_name"
	AttrDomain       = "publish.domain"
	AttrPRDPath      = "publish.prd_path"
	AttrBranch       = "publish.branch"
	AttrDryRun       = "publish.dry_run"
	AttrOperation    = "publish.operation" // insert or update

	// Target repository attributes
	AttrRepoOwner = "repo.owner"
	AttrRepoName  = "repo.name"
	AttrBaseRef   = "repo.base_ref"

	// Error attributes
	AttrErrorMessage = "error.message"
	AttrErrorType    = "error.type"
)

// Span names for the publish pipeline steps.
const (
	SpanPublish        = "publish"
	SpanValidate       = "publish.validate"
	SpanResolveName    = "publish.resolve_name"
	SpanFetchRegistry  = "publish.fetch_registry"
	SpanRegistryUpsert = "publish.registry_upsert"
	SpanCreateBranch   = "publish.create_branch"
	SpanWriteFiles     = "publish.write_files"
	SpanCreatePR       = "publish.create_pr"
)
