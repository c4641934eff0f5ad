package llm

import (
	"Sheetcast/internal/api/config"
	log "log/slog"
	"os"
	"strings"

	"github.com/tmc/langchaingo/prompts"
)

const defaultSummarizePrompt = `Please summarize the following content from a Google Sheet. Focus on key themes, topics, and important information that would be useful for creating social media posts:

{{.content}}

Provide a concise summary that captures the main points and themes.`

const defaultPostSystemPrompt = "You are a social media expert who creates engaging, platform-specific content. Always respond with valid JSON."

const defaultGeneratePostPrompt = `Based on the following content summary, create an engaging social media post for {{.platform}}:

Summary: {{.summary}}

Requirements for {{.platform}}:
- Character limit: {{.char_limit}}
- Style: {{.style}}
- Hashtag count: {{.hashtag_count}}

Please respond with JSON in this exact format:
{
  "title": "Brief engaging title (max 60 characters)",
  "content": "The main post content",
  "hashtags": "Relevant hashtags separated by spaces"
}`

type promptSet struct {
	summarize    prompts.PromptTemplate
	generatePost prompts.PromptTemplate
	postSystem   string
}

func loadPrompts(paths config.PromptPathConfig) promptSet {
	return promptSet{
		summarize:    prompts.NewPromptTemplate(readPrompt(paths.Summarize, defaultSummarizePrompt), []string{"content"}),
		generatePost: prompts.NewPromptTemplate(readPrompt(paths.GeneratePost, defaultGeneratePostPrompt), []string{"platform", "summary", "char_limit", "style", "hashtag_count"}),
		postSystem:   readPrompt(paths.PostSystem, defaultPostSystemPrompt),
	}
}

// readPrompt 从 prompt 文件读取模板，文件缺失时使用内置模板
func readPrompt(file, fallback string) string {
	if file == "" {
		return fallback
	}
	data, err := os.ReadFile(file)
	if err != nil {
		log.Warn("读取prompt文件失败，使用内置模板", "file", file, "err", err)
		return fallback
	}
	if s := strings.TrimSpace(string(data)); s != "" {
		return s
	}
	return fallback
}
