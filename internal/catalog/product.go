package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ColorOption is one selectable color variant of a product.
type ColorOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"` // CSS color value, display-only
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Category    string          `json:"category"`
	Colors      []ColorOption   `json:"colors"`
	Sizes       []string        `json:"sizes"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	IsNew       bool            `json:"is_new,omitempty"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

// Filter narrows a catalog listing. Zero value matches everything.
type Filter struct {
	Categories []string
	Colors     []string
	Sizes      []string
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
}

// Matches reports whether p passes every populated filter dimension.
// Price bounds are inclusive; MaxPrice of zero means unbounded.
func (f Filter) Matches(p *Product) bool {
	if len(f.Categories) > 0 && !containsFold(f.Categories, p.Category) {
		return false
	}
	if len(f.Colors) > 0 {
		found := false
		for _, c := range p.Colors {
			if containsFold(f.Colors, c.ID) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Sizes) > 0 {
		found := false
		for _, s := range p.Sizes {
			if containsFold(f.Sizes, s) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinPrice.IsPositive() && p.Price.LessThan(f.MinPrice) {
		return false
	}
	if f.MaxPrice.IsPositive() && p.Price.GreaterThan(f.MaxPrice) {
		return false
	}
	return true
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}
