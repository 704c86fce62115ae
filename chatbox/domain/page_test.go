package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageContext_PageTypes(t *testing.T) {
	cases := map[string]PageContext{
		"page":   {},
		"post":   {IsBlogPage: true},
		"SEARCH": {IsSearchPage: true},
		"404":    {Is404: true},
		" shop ": {IsWooCommercePage: true},
		"other":  {},
	}
	for pageType, want := range cases {
		t.Run(pageType, func(t *testing.T) {
			want.PageID = "42"
			assert.Equal(t, want, NewPageContext("42", pageType, false, false, false, ""))
		})
	}
}

func TestNewPageContext_Flags(t *testing.T) {
	page := NewPageContext("7", PageTypePage, true, true, true, " pe ")

	assert.True(t, page.IsMobile)
	assert.True(t, page.IsLoggedIn)
	assert.True(t, page.IsWooCommerceActive)
	assert.Equal(t, "PE", page.CountryCode)
}
