package application

import (
	"slices"

	"github.com/AzielCF/az-chatbox/chatbox/domain"
)

type accessRule struct {
	name  string
	allow func(s domain.Settings, page domain.PageContext, blocker domain.AccessBlocker) bool
}

// Device flags must be exactly "on"; page-type flags only exclude when exactly "off".
var accessRules = []accessRule{
	{"device", func(s domain.Settings, page domain.PageContext, _ domain.AccessBlocker) bool {
		if page.IsMobile {
			return s.ShowOnMobile.IsOn()
		}
		return s.ShowOnDesktop.IsOn()
	}},
	{"excluded_page", func(s domain.Settings, page domain.PageContext, _ domain.AccessBlocker) bool {
		return page.PageID == "" || !slices.Contains(s.ExcludedPages, page.PageID)
	}},
	{"post", func(s domain.Settings, page domain.PageContext, _ domain.AccessBlocker) bool {
		return !(page.IsBlogPage && s.ShowOnPost.IsOff())
	}},
	{"woocommerce", func(s domain.Settings, page domain.PageContext, _ domain.AccessBlocker) bool {
		return !(page.IsWooCommerceActive && page.IsWooCommercePage && s.ShowOnWooCommerce.IsOff())
	}},
	{"search", func(s domain.Settings, page domain.PageContext, _ domain.AccessBlocker) bool {
		return !(page.IsSearchPage && s.ShowOnSearch.IsOff())
	}},
	{"not_found", func(s domain.Settings, page domain.PageContext, _ domain.AccessBlocker) bool {
		return !(page.Is404 && s.ShowOn404.IsOff())
	}},
	{"user_visibility", func(s domain.Settings, page domain.PageContext, _ domain.AccessBlocker) bool {
		return page.IsLoggedIn || s.UserVisibility != domain.VisibilityLoggedIn
	}},
	{"country_block", func(s domain.Settings, page domain.PageContext, blocker domain.AccessBlocker) bool {
		if !s.ActivateCountryBlock.IsOn() || blocker == nil {
			return true
		}
		return !blocker.IsBlocked(s, page)
	}},
}

// IsWidgetEligible is the conjunction of every access rule.
func IsWidgetEligible(s domain.Settings, page domain.PageContext, blocker domain.AccessBlocker) bool {
	_, ok := firstDenyingRule(s, page, blocker)
	return ok
}

func firstDenyingRule(s domain.Settings, page domain.PageContext, blocker domain.AccessBlocker) (string, bool) {
	for _, rule := range accessRules {
		if !rule.allow(s, page, blocker) {
			return rule.name, false
		}
	}
	return "", true
}
