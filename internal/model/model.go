// Package model defines the domain types used across the application.
package model

// Listing is a raw deal entry as it arrives from the RSS feed, before
// classification. PubDate is ISO-8601 with a Z suffix, or empty when the
// feed entry carries no date.
type Listing struct {
	Title   string
	Link    string
	PubDate string
}

// Deal is a classified deal as persisted in the collection. Every field is
// serialized, empty strings included, so downstream consumers never see
// missing keys or nulls.
type Deal struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Link          string `json:"link"`
	MainCategory  string `json:"mainCategory"`
	SubCategory   string `json:"subCategory"`
	SalePrice     string `json:"salePrice"`
	OriginalPrice string `json:"originalPrice"`
	Store         string `json:"store"`
	SalePeriod    string `json:"salePeriod"`
	Notes         string `json:"notes"`
	PubDate       string `json:"pubDate"`
}

// MainUncategorized is the sentinel main category for deals no rule matched.
const MainUncategorized = "Uncategorized"

// Collection is the persisted aggregate of deals, unique by ID.
type Collection struct {
	LastUpdated string `json:"lastUpdated"`
	Deals       []Deal `json:"deals"`
}

// SyncRun is one recorded pass of the sync pipeline.
type SyncRun struct {
	ID         int64  `json:"id"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt"`
	Fetched    int    `json:"fetched"`
	Added      int    `json:"added"`
	Total      int    `json:"total"`
	Trigger    string `json:"trigger"`
}
