package duckduckgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

func TestParseResults(t *testing.T) {
	tests := []struct {
		name string
		page string
		want []domain.SearchResult
	}{
		{
			name: "no results",
			page: `<html><body><p>No results.</p></body></html>`,
			want: []domain.SearchResult{},
		},
		{
			name: "entities decoded and tags stripped",
			page: `<a class="result__a">Tom &amp; Jerry&#39;s <b>Tale</b></a>
<div class="result__snippet">  A <em>cat</em> and &lt;mouse&gt;  </div>`,
			want: []domain.SearchResult{
				{Title: "Tom & Jerry's Tale", Snippet: "A cat and <mouse>"},
			},
		},
		{
			name: "extra classes on the element",
			page: `<a class="result__a js-result-title" href="#">Title</a><a class="snippet result__snippet">Body</a>`,
			want: []domain.SearchResult{{Title: "Title", Snippet: "Body"}},
		},
		{
			name: "unpaired titles are dropped",
			page: `<a class="result__a">One</a><a class="result__snippet">S1</a><a class="result__a">Two</a>`,
			want: []domain.SearchResult{{Title: "One", Snippet: "S1"}},
		},
		{
			name: "empty pairs are dropped",
			page: `<a class="result__a"> </a><a class="result__snippet"></a>
<a class="result__a">Kept</a><a class="result__snippet"></a>`,
			want: []domain.SearchResult{{Title: "Kept", Snippet: ""}},
		},
		{
			name: "class name prefix does not match",
			page: `<a class="result__about">x</a><a class="result__snippet-extra">y</a>`,
			want: []domain.SearchResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResults(strings.NewReader(tt.page))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseResults_MalformedMarkup(t *testing.T) {
	got, err := ParseResults(strings.NewReader(`<a class="result__a">Open<div class="result__snippet">Snip`))

	require.NoError(t, err)
	assert.NotNil(t, got)
}
