package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLog(t *testing.T) {
	t.Run("empty output", func(t *testing.T) {
		summary := ParseLog("")
		require.Equal(t, 0, summary.Total)
		require.Nil(t, summary.Latest)
		require.Empty(t, summary.All)
	})

	t.Run("splits records and fields", func(t *testing.T) {
		output := "\x1ea@example.com\x1fAlice\x1f2024-01-02 10:00:00 +0100\x1faaaa\x1fSecond\n\nbody line\n\n" +
			"\x1eb@example.com\x1fBob\x1f2024-01-01 10:00:00 +0100\x1fbbbb\x1fFirst\n"

		summary := ParseLog(output)
		require.Equal(t, 2, summary.Total)
		require.Equal(t, LogEntry{
			AuthorEmail: "a@example.com",
			AuthorName:  "Alice",
			Date:        "2024-01-02 10:00:00 +0100",
			Hash:        "aaaa",
			Message:     "Second\n\nbody line",
		}, summary.All[0])
		require.Equal(t, "First", summary.All[1].Message)
		require.Same(t, &summary.All[0], summary.Latest)
	})

	t.Run("message may contain separators of other formats", func(t *testing.T) {
		output := "\x1ea@example.com\x1fAlice\x1fdate\x1fcccc\x1fuses | and ; and __split__\n"

		summary := ParseLog(output)
		require.Equal(t, "uses | and ; and __split__", summary.Latest.Message)
	})

	t.Run("short records are padded", func(t *testing.T) {
		summary := ParseLog("\x1ea@example.com\x1fAlice")
		require.Equal(t, 1, summary.Total)
		require.Equal(t, "Alice", summary.Latest.AuthorName)
		require.Empty(t, summary.Latest.Hash)
	})
}

func TestLogOptionsArgs(t *testing.T) {
	format := "--pretty=format:" + logFormat

	tests := []struct {
		name string
		opts LogOptions
		want []string
	}{
		{name: "full history", opts: LogOptions{}, want: []string{"log", format, "--"}},
		{name: "range", opts: LogOptions{From: "a", To: "b"}, want: []string{"log", format, "a..b", "--"}},
		{name: "from only", opts: LogOptions{From: "a"}, want: []string{"log", format, "a..", "--"}},
		{name: "to only", opts: LogOptions{To: "b"}, want: []string{"log", format, "..b", "--"}},
		{name: "last n", opts: Last(5), want: []string{"log", format, "-n", "5", "--"}},
		{name: "last zero", opts: Last(0), want: []string{"log", format, "-n", "0", "--"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.opts.Args())
		})
	}
}
