package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Day Trading":                   "day-trading",
		"  Options 101: The Basics!  ":  "options-101-the-basics",
		"RSI & MACD — Momentum Signals": "rsi-macd-momentum-signals",
		"already-a-slug":                "already-a-slug",
		"!!!":                           "post",
		"":                              "post",
	}
	for title, want := range cases {
		require.Equal(t, want, Slugify(title), "title %q", title)
	}
}

func TestReadingTime(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1 MIN READ", ReadingTime(""))
	require.Equal(t, "1 MIN READ", ReadingTime("a few words only"))
	require.Equal(t, "1 MIN READ", ReadingTime(strings.Repeat("word ", 200)))
	require.Equal(t, "2 MIN READ", ReadingTime(strings.Repeat("word ", 201)))
	require.Equal(t, "5 MIN READ", ReadingTime(strings.Repeat("word ", 900)))
}

func TestParseMarkdown2HTML(t *testing.T) {
	t.Parallel()

	got := ParseMarkdown2HTML([]byte("# Heading\n\nsome *emphasis*\n\n```python\na = 2\n```\n"))
	require.Contains(t, got, "Heading</h1>")
	require.Contains(t, got, "<em>emphasis</em>")
	require.Contains(t, got, `<pre><code class="language-python">a = 2`)

	got = ParseMarkdown2HTML([]byte("[link](https://example.com)"))
	require.Contains(t, got, `target="_blank"`)
}

func TestNormalizeCategory(t *testing.T) {
	t.Parallel()

	require.Equal(t, "TRADING STRATEGIES", normalizeCategory(" trading strategies "))
	require.Equal(t, "", normalizeCategory("   "))
}
