package mediawiki

import (
	"bytes"
	"encoding/json"

	"github.com/fwojciec/wikistat"
)

// object is one decoded JSON object level. Keys are looked up exactly;
// encoding/json struct tags would also match keys of different case.
type object map[string]json.RawMessage

// decodeOptions controls which elements are turned into pages.
type decodeOptions struct {
	extracts bool // require an extract for every kept element
	strict   bool // fail on incomplete elements instead of skipping them
}

// decodePages parses body and returns a page for every complete element of
// query.pages, in response order. Only invalid JSON is an error in lenient
// mode; a missing or mistyped query.pages yields no pages.
func decodePages(body string, opts decodeOptions) ([]*wikistat.Page, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, wikistat.WrapError(wikistat.EDECODE, err, "invalid JSON response")
	}

	var root, query object
	if !decodeField(raw, &root) || !decodeField(root["query"], &query) {
		return nil, nil
	}

	var elems []json.RawMessage
	if !decodeField(query["pages"], &elems) {
		return nil, nil
	}

	var pages []*wikistat.Page
	for i, elem := range elems {
		page, ok := decodePage(elem, opts.extracts)
		if !ok {
			if opts.strict {
				return nil, wikistat.Errorf(wikistat.EDECODE, "incomplete page record at index %d", i)
			}
			continue
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// decodePage converts one element into a page. It reports false when the
// element is not an object, a required field is absent or mistyped, or
// the title is empty.
func decodePage(elem json.RawMessage, extracts bool) (*wikistat.Page, bool) {
	var rec object
	if !decodeField(elem, &rec) {
		return nil, false
	}

	var page wikistat.Page
	if !decodeField(rec["pageid"], &page.ID) {
		return nil, false
	}
	if !decodeField(rec["title"], &page.Title) || page.Title == "" {
		return nil, false
	}
	if extracts && !decodeField(rec["extract"], &page.Contents) {
		return nil, false
	}
	return &page, true
}

// decodeField unmarshals a present, non-null value into v.
// Numbers that do not fit v, such as fractions or values beyond the
// int64 range, are reported as absent.
func decodeField(raw json.RawMessage, v any) bool {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}
