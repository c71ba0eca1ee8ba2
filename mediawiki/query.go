// Package mediawiki implements wikistat.PageService against the MediaWiki
// action API (api.php) with extracts enabled.
package mediawiki

import (
	"net/url"
	"strings"

	"github.com/fwojciec/wikistat"
)

// DefaultEndpoint is the English Wikipedia action API.
const DefaultEndpoint = "https://en.wikipedia.org/w/api.php"

// Param is a single query string key/value pair.
type Param struct {
	Key   string
	Value string
}

// Query describes one outbound API request: the endpoint and its
// parameters in the order they are sent.
type Query struct {
	Endpoint *url.URL
	Params   []Param
}

// BuildQuery returns the request for title against endpoint.
// When extracts is false the prop parameter is omitted and the API only
// reports page identity. Title is bound as given; empty titles are not
// rejected here.
func BuildQuery(endpoint, title string, extracts bool) (*Query, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, wikistat.WrapError(wikistat.EINVALIDURL, err, "invalid endpoint %q", endpoint)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, wikistat.Errorf(wikistat.EINVALIDURL, "endpoint %q must be an absolute http(s) URL", endpoint)
	}

	params := []Param{
		{Key: "action", Value: "query"},
		{Key: "format", Value: "json"},
	}
	if extracts {
		params = append(params, Param{Key: "prop", Value: "extracts"})
	}
	params = append(params,
		Param{Key: "formatversion", Value: "2"},
		Param{Key: "titles", Value: title},
	)

	return &Query{Endpoint: u, Params: params}, nil
}

// Get returns the value of the first parameter named key.
func (q *Query) Get(key string) string {
	for _, p := range q.Params {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// URL renders the request URL. Parameters are form-encoded in order and
// appended after any query already present on the endpoint.
func (q *Query) URL() string {
	var sb strings.Builder
	sb.WriteString(q.Endpoint.RawQuery)
	for _, p := range q.Params {
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}

	u := *q.Endpoint
	u.RawQuery = sb.String()
	return u.String()
}
