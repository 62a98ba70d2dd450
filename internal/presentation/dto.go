package presentation

import (
	"github.com/prdhub/prdhub/internal/publisher"
	"github.com/prdhub/prdhub/internal/registry"
)

// PublishResultDTO is the JSON shape printed after a publish.
type PublishResultDTO struct {
	Success   bool   `json:"success"`
	DryRun    bool   `json:"dry_run,omitempty"`
	Operation string `json:"operation,omitempty"`
	Branch    string `json:"branch,omitempty"`
	PRDPath   string `json:"prd_path,omitempty"`
	PRNumber  int    `json:"pr_number,omitempty"`
	PRURL     string `json:"pr_url,omitempty"`
	Error     string `json:"error,omitempty"`
}

// FromPublishResult converts a publisher result for output.
func FromPublishResult(res publisher.Result) PublishResultDTO {
	return PublishResultDTO{
		Success:   res.Success,
		DryRun:    res.DryRun,
		Operation: res.Operation,
		Branch:    res.Branch,
		PRDPath:   res.PRDPath,
		PRNumber:  res.PRNumber,
		PRURL:     res.PRURL,
		Error:     res.Error,
	}
}

// EntryDTO is the JSON shape for registry listings.
type EntryDTO struct {
	ProductName string   `json:"product_name"`
	Domain      string   `json:"domain"`
	OwnerTeam   string   `json:"owner_team,omitempty"`
	SourceRepo  string   `json:"source_repo,omitempty"`
	PRDPath     string   `json:"prd_path"`
	Tags        []string `json:"tags,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// FromEntries converts registry entries for output.
func FromEntries(items []registry.Entry) []EntryDTO {
	dtos := make([]EntryDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, EntryDTO{
			ProductName: item.ProductName,
			Domain:      item.Domain,
			OwnerTeam:   item.OwnerTeam,
			SourceRepo:  item.SourceRepo,
			PRDPath:     item.PRDPath,
			Tags:        item.Tags,
			CreatedAt:   item.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt:   item.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return dtos
}
