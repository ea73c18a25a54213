package monitor

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sabir1919/Hednet-node/internal/engine/enginetest"
)

func TestParsePoints(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      int
		wantFound bool
	}{
		{
			name:      "plain points",
			text:      "1234 points",
			want:      1234,
			wantFound: true,
		},
		{
			name:      "zero with capital P",
			text:      "0 Points",
			want:      0,
			wantFound: true,
		},
		{
			name:      "singular point",
			text:      "1 point",
			want:      1,
			wantFound: true,
		},
		{
			name:      "no whitespace",
			text:      "42points",
			want:      42,
			wantFound: true,
		},
		{
			name:      "embedded in sentence",
			text:      "You have earned 567 points today!",
			want:      567,
			wantFound: true,
		},
		{
			name:      "digits without the word",
			text:      "1234 credits",
			wantFound: false,
		},
		{
			name:      "word without digits",
			text:      "points pending",
			wantFound: false,
		},
		{
			name:      "empty text",
			text:      "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ParsePoints(tt.text)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertPoints(t *testing.T) {
	tests := []struct {
		name      string
		result    any
		want      int
		wantFound bool
	}{
		{name: "digit string", result: "1234", want: 1234, wantFound: true},
		{name: "json number", result: float64(88), want: 88, wantFound: true},
		{name: "int", result: 7, want: 7, wantFound: true},
		{name: "raw text falls through the pattern", result: "321 points", want: 321, wantFound: true},
		{name: "null", result: nil, wantFound: false},
		{name: "non-numeric artifact", result: "n/a", wantFound: false},
		{name: "unexpected type", result: []string{"x"}, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := convertPoints(tt.result)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		eng := &enginetest.FakeEngine{EvaluateResult: "1234"}
		page := newFakePage(t, eng)

		got, found := ExtractPoints(ctx, page, time.Second)
		assert.True(t, found)
		assert.Equal(t, 1234, got)
	})

	t.Run("not found on null result", func(t *testing.T) {
		eng := &enginetest.FakeEngine{EvaluateResult: nil}
		page := newFakePage(t, eng)

		got, found := ExtractPoints(ctx, page, time.Second)
		assert.False(t, found)
		assert.Equal(t, 0, got)
	})

	t.Run("not found on evaluate error", func(t *testing.T) {
		eng := &enginetest.FakeEngine{EvaluateErr: fmt.Errorf("target closed")}
		page := newFakePage(t, eng)

		_, found := ExtractPoints(ctx, page, time.Second)
		assert.False(t, found)
	})

	t.Run("not found on nil page", func(t *testing.T) {
		_, found := ExtractPoints(ctx, nil, time.Second)
		assert.False(t, found)
	})

	t.Run("not found on cancelled context", func(t *testing.T) {
		eng := &enginetest.FakeEngine{EvaluateResult: "1234"}
		page := newFakePage(t, eng)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, found := ExtractPoints(cancelled, page, time.Second)
		assert.False(t, found)
	})
}

func newFakePage(t *testing.T, eng *enginetest.FakeEngine) *enginetest.FakePage {
	t.Helper()
	browser, err := eng.Launch(context.Background(), engineLaunchDefaults())
	if err != nil {
		t.Fatalf("launch: %v", err)
	}
	page, err := browser.NewContext(context.Background(), nil)
	if err != nil {
		t.Fatalf("new context: %v", err)
	}
	return page.(*enginetest.FakePage)
}
