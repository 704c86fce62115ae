package domain

import "strings"

// PageContext describes the page view being rendered. It is built once at the
// transport boundary and never mutated afterwards.
type PageContext struct {
	PageID              string `json:"page_id"`
	IsMobile            bool   `json:"is_mobile"`
	IsBlogPage          bool   `json:"is_blog_page"`
	IsSearchPage        bool   `json:"is_search_page"`
	Is404               bool   `json:"is_404"`
	IsLoggedIn          bool   `json:"is_logged_in"`
	IsWooCommercePage   bool   `json:"is_woocommerce_page"`
	IsWooCommerceActive bool   `json:"is_woocommerce_active"`
	CountryCode         string `json:"country_code"`
}

// Page types accepted by the widget endpoints.
const (
	PageTypePage     = "page"
	PageTypePost     = "post"
	PageTypeSearch   = "search"
	PageTypeNotFound = "404"
	PageTypeShop     = "shop"
)

// NewPageContext builds a page view from raw transport values. pageType is
// matched case-insensitively; unknown types read as a plain page. The country
// is normalized to upper case.
func NewPageContext(pageID, pageType string, mobile, loggedIn, wooCommerceActive bool, country string) PageContext {
	pageType = strings.ToLower(strings.TrimSpace(pageType))
	return PageContext{
		PageID:              pageID,
		IsMobile:            mobile,
		IsBlogPage:          pageType == PageTypePost,
		IsSearchPage:        pageType == PageTypeSearch,
		Is404:               pageType == PageTypeNotFound,
		IsLoggedIn:          loggedIn,
		IsWooCommercePage:   pageType == PageTypeShop,
		IsWooCommerceActive: wooCommerceActive,
		CountryCode:         strings.ToUpper(strings.TrimSpace(country)),
	}
}
