package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevelFiltering(t *testing.T) {
	l := New(zapcore.InfoLevel)

	l.Debug("[test] hidden")
	l.Info("[test] shown", zap.Int("n", 3))

	out := l.Text()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "n")
	assert.False(t, l.Enabled(zapcore.DebugLevel))
	assert.True(t, l.Enabled(zapcore.WarnLevel))
}

func TestClearLogs(t *testing.T) {
	l := New(zapcore.DebugLevel)
	l.Warn("[test] something")
	require.NotEmpty(t, l.Text())

	l.ClearLogs()
	assert.Empty(t, l.Text())
	assert.Equal(t, "<pre></pre>", l.HTML())
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Error("[test] dropped")
	assert.Empty(t, l.Text())
	assert.False(t, l.Enabled(zapcore.ErrorLevel))
}

func TestAnsiToHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Plain", "hello", "<pre>hello</pre>"},
		{"Colored", "\033[32minfo\033[0m msg", `<pre><span style="color: green;">info</span> msg</pre>`},
		{"Unclosed", "\033[31merr", `<pre><span style="color: red;">err</span></pre>`},
		{"Switch", "\033[36ma\033[33mb\033[0m", `<pre><span style="color: cyan;">a</span><span style="color: yellow;">b</span></pre>`},
		{"UnknownCode", "\033[35mx", "<pre>x</pre>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ansiToHTML(tc.in))
		})
	}
}

func TestHTMLWrapsLevels(t *testing.T) {
	l := New(zapcore.DebugLevel)
	l.Debug("[test] one")
	l.Error("[test] two")

	html := l.HTML()
	assert.True(t, strings.HasPrefix(html, "<pre>"))
	assert.Contains(t, html, `<span style="color: cyan;">debug</span>`)
	assert.Contains(t, html, `<span style="color: red;">error</span>`)
}
