// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/pdiddy/litreview/internal/httputil"
	"github.com/pdiddy/litreview/pkg/types"
)

const defaultBaseURL = "https://api.openalex.org"

// OpenAlex queries the OpenAlex Works API.
type OpenAlex struct {
	client     *http.Client
	baseURL    string
	userAgent  string
	mailto     string
	maxRetries int
}

// NewOpenAlex builds a client from config, filling defaults for anything
// unset.
func NewOpenAlex(cfg types.IndexConfig) *OpenAlex {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OpenAlex{
		client:     &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  cfg.UserAgent,
		mailto:     cfg.Mailto,
		maxRetries: cfg.MaxRetries,
	}
}

// Search queries the works endpoint, most-cited first.
func (o *OpenAlex) Search(ctx context.Context, query string, maxResults, yearFrom int) ([]types.Paper, error) {
	if maxResults <= 0 {
		maxResults = 5
	}
	if maxResults > 200 {
		maxResults = 200
	}

	params := url.Values{
		"search":   {query},
		"per_page": {fmt.Sprintf("%d", maxResults)},
		"page":     {"1"},
		"sort":     {"cited_by_count:desc"},
	}
	if yearFrom > 0 {
		// The index filter is exclusive, so shift by one year.
		params.Set("filter", fmt.Sprintf("publication_year:>%d", yearFrom-1))
	}

	var resp openAlexListResponse
	if err := o.getJSON(ctx, "/works?"+o.polite(params), &resp); err != nil {
		return nil, err
	}

	papers := make([]types.Paper, 0, len(resp.Results))
	for _, work := range resp.Results {
		papers = append(papers, parseWork(work))
	}
	return papers, nil
}

// GetByID resolves a single work. Accepts bare ids ("W123") or full
// OpenAlex URLs.
func (o *OpenAlex) GetByID(ctx context.Context, paperID string) (types.Paper, error) {
	id := NormalizeWorkID(paperID)
	if id == "" {
		return types.Paper{}, fmt.Errorf("empty paper id: %w", types.ErrInvalidInput)
	}

	var work openAlexWork
	if err := o.getJSON(ctx, "/works/"+url.PathEscape(id)+"?"+o.polite(url.Values{}), &work); err != nil {
		return types.Paper{}, err
	}
	return parseWork(work), nil
}

// GetCitations returns work identifiers for one citation direction. For
// references the identifiers come from the work's stored reference list;
// for cited_by a reverse filter query is issued.
func (o *OpenAlex) GetCitations(ctx context.Context, paperID string, direction types.CitationDirection, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	switch direction {
	case types.DirectionReferences:
		paper, err := o.GetByID(ctx, paperID)
		if err != nil {
			return nil, err
		}
		refs := paper.ReferencedWorks
		if len(refs) > maxResults {
			refs = refs[:maxResults]
		}
		return refs, nil

	case types.DirectionCitedBy:
		id := NormalizeWorkID(paperID)
		params := url.Values{
			"filter":   {"cites:" + id},
			"per_page": {fmt.Sprintf("%d", maxResults)},
			"select":   {"id"},
		}
		var resp openAlexListResponse
		if err := o.getJSON(ctx, "/works?"+o.polite(params), &resp); err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(resp.Results))
		for _, work := range resp.Results {
			ids = append(ids, NormalizeWorkID(work.ID))
		}
		return ids, nil

	default:
		return nil, fmt.Errorf("citation direction %q: %w", direction, types.ErrInvalidInput)
	}
}

// getJSON performs a retried GET against the API and decodes the body.
func (o *OpenAlex) getJSON(ctx context.Context, pathAndQuery string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+pathAndQuery, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", o.userAgent)

	resp, err := httputil.DoWithRetry(ctx, o.client, req, o.maxRetries)
	if err != nil {
		return fmt.Errorf("index request: %v: %w", err, types.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("index returned HTTP 404: %w", types.ErrPaperNotFound)
	case httputil.Retriable(resp.StatusCode):
		return fmt.Errorf("index returned HTTP %d after retries: %w", resp.StatusCode, types.ErrUpstreamUnavailable)
	default:
		return fmt.Errorf("index returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing index response: %w", err)
	}
	return nil
}

// polite appends the mailto parameter when configured.
func (o *OpenAlex) polite(params url.Values) string {
	if o.mailto != "" {
		params.Set("mailto", o.mailto)
	}
	return params.Encode()
}

// NormalizeWorkID strips any OpenAlex URL prefix, returning the bare work
// identifier (the last path segment). Already-bare ids pass through
// unchanged.
func NormalizeWorkID(id string) string {
	id = strings.TrimSpace(id)
	if strings.Contains(id, "openalex.org/") {
		id = strings.TrimSuffix(id, "/")
		id = id[strings.LastIndex(id, "/")+1:]
	}
	return id
}

// parseWork converts an API work record into a Paper.
func parseWork(work openAlexWork) types.Paper {
	p := types.Paper{
		ID:           NormalizeWorkID(work.ID),
		Title:        work.Title,
		Abstract:     reconstructAbstract(work.AbstractInvertedIndex),
		Year:         work.PublicationYear,
		CitedByCount: work.CitedByCount,
		DOI:          strings.TrimPrefix(work.DOI, "https://doi.org/"),
	}

	for _, authorship := range work.Authorships {
		if authorship.Author.DisplayName != "" {
			p.Authors = append(p.Authors, authorship.Author.DisplayName)
		}
	}

	for _, ref := range work.ReferencedWorks {
		p.ReferencedWorks = append(p.ReferencedWorks, NormalizeWorkID(ref))
	}

	return p
}

// reconstructAbstract converts the index's abstract_inverted_index back to
// plain text. The inverted index maps each word to a list of positions
// where that word appears.
func reconstructAbstract(invertedIndex map[string][]int) string {
	if len(invertedIndex) == 0 {
		return ""
	}

	type posWord struct {
		pos  int
		word string
	}
	var pairs []posWord
	for word, positions := range invertedIndex {
		for _, pos := range positions {
			pairs = append(pairs, posWord{pos: pos, word: word})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].pos < pairs[j].pos
	})

	words := make([]string, len(pairs))
	for i, p := range pairs {
		words[i] = p.word
	}
	return strings.Join(words, " ")
}

// OpenAlex API JSON structures.
type openAlexListResponse struct {
	Meta    openAlexMeta   `json:"meta"`
	Results []openAlexWork `json:"results"`
}

type openAlexMeta struct {
	Count   int `json:"count"`
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

type openAlexWork struct {
	ID                    string               `json:"id"`
	Title                 string               `json:"title"`
	DOI                   string               `json:"doi"`
	PublicationYear       int                  `json:"publication_year"`
	CitedByCount          int                  `json:"cited_by_count"`
	Authorships           []openAlexAuthorship `json:"authorships"`
	AbstractInvertedIndex map[string][]int     `json:"abstract_inverted_index"`
	ReferencedWorks       []string             `json:"referenced_works"`
}

type openAlexAuthorship struct {
	Author openAlexAuthor `json:"author"`
}

type openAlexAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
