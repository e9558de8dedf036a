// Package query turns the full asset collection plus search, filter, sort
// and page parameters into a deterministic page of results. Everything here
// is pure: no store access, no errors for well-typed input.
package query

import (
	"sort"
	"strings"

	"enstracker/pkg/metadata"
	"enstracker/pkg/models"
)

const DefaultPageSize = 10

type SortSpec struct {
	Field     string
	Ascending bool
}

type PageSpec struct {
	Number int // 1-based
	Size   int
}

type Query struct {
	Search       string
	StatusFilter string
	Sort         *SortSpec
	Page         PageSpec
}

type Result struct {
	Items      []models.Asset `json:"items"`
	TotalCount int            `json:"totalCount"`

	// PageStart and PageEnd are the 1-based display bounds of the page
	// within the filtered collection ("Showing X - Y of Z").
	PageStart int `json:"pageStart"`
	PageEnd   int `json:"pageEnd"`

	HasPrev bool `json:"hasPrev"`
	HasNext bool `json:"hasNext"`
}

// Execute applies filter, then stable sort, then pagination.
func Execute(assets []models.Asset, q Query) Result {
	filtered := filter(assets, q.Search, q.StatusFilter)

	if q.Sort != nil {
		sortAssets(filtered, *q.Sort)
	}

	number := q.Page.Number
	if number < 1 {
		number = 1
	}
	size := q.Page.Size
	if size < 1 {
		size = DefaultPageSize
	}

	total := len(filtered)
	start := (number - 1) * size
	end := start + size

	items := []models.Asset{}
	if start < total {
		if end > total {
			end = total
		}
		items = filtered[start:end]
	}

	return Result{
		Items:      items,
		TotalCount: total,
		PageStart:  min(start+1, total),
		PageEnd:    min(start+size, total),
		HasPrev:    number > 1,
		HasNext:    start+size < total,
	}
}

func filter(assets []models.Asset, search, statusFilter string) []models.Asset {
	search = strings.ToLower(search)
	all := statusFilter == "" || statusFilter == metadata.FilterAll

	out := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if !all && a.Status != statusFilter {
			continue
		}
		if search != "" && !matchesSearch(a, search) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesSearch(a models.Asset, loweredSearch string) bool {
	for _, field := range models.AssetFields {
		if strings.Contains(strings.ToLower(a.FieldValue(field)), loweredSearch) {
			return true
		}
	}
	return false
}

// sortAssets is stable: ties keep their prior relative order.
func sortAssets(assets []models.Asset, spec SortSpec) {
	sort.SliceStable(assets, func(i, j int) bool {
		cmp := Compare(assets[i].FieldValue(spec.Field), assets[j].FieldValue(spec.Field))
		if spec.Ascending {
			return cmp < 0
		}
		return cmp > 0
	})
}
