package mediawiki_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/wikistat"
	"github.com/fwojciec/wikistat/mediawiki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	t.Run("sets fixed parameters in order", func(t *testing.T) {
		t.Parallel()

		q, err := mediawiki.BuildQuery(mediawiki.DefaultEndpoint, "Go", true)
		require.NoError(t, err)

		assert.Equal(t, []mediawiki.Param{
			{Key: "action", Value: "query"},
			{Key: "format", Value: "json"},
			{Key: "prop", Value: "extracts"},
			{Key: "formatversion", Value: "2"},
			{Key: "titles", Value: "Go"},
		}, q.Params)
		assert.Equal(t,
			"https://en.wikipedia.org/w/api.php?action=query&format=json&prop=extracts&formatversion=2&titles=Go",
			q.URL())
	})

	t.Run("omits prop for identity-only queries", func(t *testing.T) {
		t.Parallel()

		q, err := mediawiki.BuildQuery(mediawiki.DefaultEndpoint, "Go", false)
		require.NoError(t, err)

		assert.Empty(t, q.Get("prop"))
		assert.NotContains(t, q.URL(), "prop=")
		assert.Equal(t, "2", q.Get("formatversion"))
	})

	t.Run("titles round-trips through encoding", func(t *testing.T) {
		t.Parallel()

		titles := []string{
			"Rust (programming language)",
			"AT&T",
			"C++",
			"100% = 1",
			"Zürich",
			"東京",
			"a=b&titles=evil",
			"#fragment?",
			"",
		}
		for _, title := range titles {
			q, err := mediawiki.BuildQuery(mediawiki.DefaultEndpoint, title, true)
			require.NoError(t, err)

			u, err := url.Parse(q.URL())
			require.NoError(t, err)
			values, err := url.ParseQuery(u.RawQuery)
			require.NoError(t, err)

			assert.Equal(t, title, values.Get("titles"), "title %q", title)
			assert.Len(t, values["titles"], 1, "title %q", title)
		}
	})

	t.Run("encodes spaces and non-ASCII", func(t *testing.T) {
		t.Parallel()

		q, err := mediawiki.BuildQuery(mediawiki.DefaultEndpoint, "New York Zürich", true)
		require.NoError(t, err)

		assert.Contains(t, q.URL(), "titles=New+York+Z%C3%BCrich")
	})

	t.Run("keeps existing endpoint query", func(t *testing.T) {
		t.Parallel()

		q, err := mediawiki.BuildQuery("https://example.org/w/api.php?origin=*", "Go", true)
		require.NoError(t, err)

		u, err := url.Parse(q.URL())
		require.NoError(t, err)
		assert.Equal(t, "*", u.Query().Get("origin"))
		assert.Equal(t, "Go", u.Query().Get("titles"))
	})

	t.Run("returns EINVALIDURL for unparsable endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := mediawiki.BuildQuery("http://[::1", "Go", true)

		require.Error(t, err)
		assert.Equal(t, wikistat.EINVALIDURL, wikistat.ErrorCode(err))
	})

	t.Run("returns EINVALIDURL for relative endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := mediawiki.BuildQuery("/w/api.php", "Go", true)

		require.Error(t, err)
		assert.Equal(t, wikistat.EINVALIDURL, wikistat.ErrorCode(err))
	})

	t.Run("builds a fresh query per call", func(t *testing.T) {
		t.Parallel()

		a, err := mediawiki.BuildQuery(mediawiki.DefaultEndpoint, "A", true)
		require.NoError(t, err)
		b, err := mediawiki.BuildQuery(mediawiki.DefaultEndpoint, "B", true)
		require.NoError(t, err)

		assert.Equal(t, "A", a.Get("titles"))
		assert.Equal(t, "B", b.Get("titles"))
		assert.NotSame(t, a.Endpoint, b.Endpoint)
	})
}
