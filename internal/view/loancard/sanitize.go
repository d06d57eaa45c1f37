package loancard

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	actionsPolicyOnce sync.Once
	actionsPolicy     *bluemonday.Policy
)

// ActionsPolicy allows the markup loan actions are built from: links,
// buttons and small forms posting back to the site.
func ActionsPolicy() *bluemonday.Policy {
	actionsPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("div", "span", "ul", "li", "a", "form", "button", "input", "label")
		policy.AllowAttrs("class", "id", "title").Globally()

		policy.RequireParseableURLs(true)
		policy.AllowRelativeURLs(true)
		policy.AllowURLSchemes("http", "https")
		policy.AllowAttrs("href", "target").OnElements("a")
		policy.AllowAttrs("action", "method").OnElements("form")
		policy.AllowAttrs("type", "name", "value").OnElements("input", "button")
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowNoAttrs().OnElements("a", "label")

		actionsPolicy = policy
	})
	return actionsPolicy
}
