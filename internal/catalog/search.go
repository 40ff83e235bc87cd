package catalog

import (
	"context"
	"strings"
	"time"
)

// Searcher runs text queries against the catalog. The artificial delay
// stands in for a remote search backend; tests set it to zero.
type Searcher struct {
	repo  Repository
	delay time.Duration
}

func NewSearcher(repo Repository, delay time.Duration) *Searcher {
	return &Searcher{repo: repo, delay: delay}
}

// Search matches the query against name, category, description and tags.
// An empty query returns no results.
func (s *Searcher) Search(ctx context.Context, query string) ([]*Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil, nil
	}

	products, err := s.repo.ListProducts(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	var result []*Product
	for _, p := range products {
		if matchesQuery(p, query) {
			result = append(result, p)
		}
	}
	return result, nil
}

func matchesQuery(p *Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

type keywordSuggestions struct {
	keyword string
	values  []string
}

// keyword suggestions matched in order, first hit wins
var suggestionTable = []keywordSuggestions{
	{"head", []string{"Quantum Neural Headset", "Wireless Headphones", "VR Headset"}},
	{"smart", []string{"Smart Home Hub", "Smart Lighting", "Smart Watch", "Smart Glasses"}},
	{"wireless", []string{"Wireless Earbuds", "Wireless Charging", "Wireless Keyboard"}},
	{"vr", []string{"VR Headset", "AR/VR Glasses", "Virtual Reality Games"}},
	{"power", []string{"Power Bank", "Portable Charger", "Solar Power Devices"}},
	{"gaming", []string{"Gaming Mouse", "Gaming Keyboard", "Gaming Headset", "Gaming Console"}},
	{"fitness", []string{"Fitness Tracker", "Smart Watch", "Health Monitoring Devices"}},
	{"audio", []string{"Wireless Earbuds", "Bluetooth Speakers", "Noise Cancelling Headphones"}},
	{"phone", []string{"Nexus Smartphone", "Phone Accessories", "Smartphone Camera Lens"}},
	{"home", []string{"Smart Home Hub", "Home Automation", "Smart Lighting", "Security Camera"}},
}

var fallbackSuggestions = []string{
	"Latest Tech Gadgets",
	"Trending Electronics",
	"New Arrivals",
	"Top Rated Products",
	"Tech Accessories",
}

// Suggestions returns canned search suggestions for the query.
func (s *Searcher) Suggestions(ctx context.Context, query string) ([]string, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil, nil
	}

	for _, entry := range suggestionTable {
		if strings.Contains(query, entry.keyword) {
			return entry.values, nil
		}
	}
	return fallbackSuggestions, nil
}

func (s *Searcher) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
