package llm

import (
	"Sheetcast/internal/api/config"
	"Sheetcast/internal/model"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	mu       sync.Mutex
	reply    string
	err      error
	calls    int
	messages [][]llms.MessageContent
	options  []llms.CallOptions
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.messages = append(f.messages, messages)
	var opts llms.CallOptions
	for _, o := range options {
		o(&opts)
	}
	f.options = append(f.options, opts)
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func textOf(m llms.MessageContent) string {
	var sb strings.Builder
	for _, p := range m.Parts {
		if t, ok := p.(llms.TextContent); ok {
			sb.WriteString(t.Text)
		}
	}
	return sb.String()
}

func newTestClient(m ChatModel) *Client {
	return NewClientWithModel(m, config.LLMConfig{TextModel: "gpt-4o", MaxConcurrency: 2})
}

func TestSummarizeRejectsEmptyInput(t *testing.T) {
	fm := &fakeModel{reply: "unused"}
	_, err := newTestClient(fm).Summarize(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrGeneration)
	assert.Equal(t, 0, fm.calls)
}

func TestSummarizeBuildsFlatPrompt(t *testing.T) {
	fm := &fakeModel{reply: "AI adoption is rising"}
	records := []Record{
		{"topic": "AI", "notes": "growing"},
		{"topic": "Cloud", "notes": ""},
	}

	summary, err := newTestClient(fm).Summarize(context.Background(), records, "gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, "AI adoption is rising", summary)

	require.Len(t, fm.messages, 1)
	require.Len(t, fm.messages[0], 1)
	assert.Equal(t, llms.ChatMessageTypeHuman, fm.messages[0][0].Role)
	prompt := textOf(fm.messages[0][0])
	assert.Contains(t, prompt, "notes: growing, topic: AI\nnotes: , topic: Cloud")
	assert.Equal(t, "gpt-4o-mini", fm.options[0].Model)
	assert.Equal(t, 500, fm.options[0].MaxTokens)
}

func TestSummarizeEmptyReplyFallsBack(t *testing.T) {
	fm := &fakeModel{reply: "  "}
	summary, err := newTestClient(fm).Summarize(context.Background(), []Record{{"a": "b"}}, "")
	require.NoError(t, err)
	assert.Equal(t, summaryFallback, summary)
	assert.Equal(t, "gpt-4o", fm.options[0].Model)
}

func TestSummarizeModelError(t *testing.T) {
	fm := &fakeModel{err: errors.New("rate limited")}
	_, err := newTestClient(fm).Summarize(context.Background(), []Record{{"a": "b"}}, "")
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestSpecFor(t *testing.T) {
	cases := []struct {
		platform model.Platform
		limit    int
		hashtags string
	}{
		{model.PlatformLinkedIn, 3000, "3-5 relevant professional hashtags"},
		{model.PlatformTwitter, 280, "2-3 trending hashtags"},
		{model.PlatformInstagram, 2200, "8-15 hashtags including niche and broad ones"},
		{model.Platform("mastodon"), 3000, "3-5 relevant professional hashtags"},
		{model.Platform(""), 3000, "3-5 relevant professional hashtags"},
	}
	for _, tc := range cases {
		spec := SpecFor(tc.platform)
		assert.Equal(t, tc.limit, spec.CharLimit, tc.platform)
		assert.Equal(t, tc.hashtags, spec.HashtagCount, tc.platform)
	}
}

func TestGeneratePost(t *testing.T) {
	fm := &fakeModel{reply: "```json\n{\"title\":\"Launch\",\"content\":\"We shipped!\",\"hashtags\":\"#ai #launch\"}\n```"}
	post, err := newTestClient(fm).GeneratePost(context.Background(), "summary text", model.PlatformTwitter)
	require.NoError(t, err)
	assert.Equal(t, &GeneratedPost{Title: "Launch", Content: "We shipped!", Hashtags: "#ai #launch"}, post)

	require.Len(t, fm.messages[0], 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, fm.messages[0][0].Role)
	prompt := textOf(fm.messages[0][1])
	assert.Contains(t, prompt, "Character limit: 280")
	assert.Contains(t, prompt, "Summary: summary text")
	assert.True(t, fm.options[0].JSONMode)
	assert.Equal(t, 800, fm.options[0].MaxTokens)
}

func TestGeneratePostUnknownPlatformUsesLinkedInSpec(t *testing.T) {
	fm := &fakeModel{reply: `{"title":"t","content":"c","hashtags":""}`}
	_, err := newTestClient(fm).GeneratePost(context.Background(), "s", model.Platform("myspace"))
	require.NoError(t, err)
	assert.Contains(t, textOf(fm.messages[0][1]), "Character limit: 3000")
}

func TestGeneratePostMissingFields(t *testing.T) {
	fm := &fakeModel{reply: `{}`}
	post, err := newTestClient(fm).GeneratePost(context.Background(), "s", model.PlatformInstagram)
	require.NoError(t, err)
	assert.Equal(t, fallbackTitle, post.Title)
	assert.Equal(t, fallbackContent, post.Content)
	assert.Equal(t, "", post.Hashtags)
}

func TestGeneratePostUnparseable(t *testing.T) {
	fm := &fakeModel{reply: "sure, here is your post"}
	_, err := newTestClient(fm).GeneratePost(context.Background(), "s", model.PlatformLinkedIn)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGeneratePostModelError(t *testing.T) {
	fm := &fakeModel{err: errors.New("boom")}
	_, err := newTestClient(fm).GeneratePost(context.Background(), "s", model.PlatformLinkedIn)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestParseGeneratedPostHashtagArray(t *testing.T) {
	post, err := ParseGeneratedPost(`{"title":"x","content":"y","hashtags":["#a","#b"]}`)
	require.NoError(t, err)
	assert.Equal(t, "#a #b", post.Hashtags)
}
