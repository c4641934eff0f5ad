package llm

import (
	"Sheetcast/internal/model"
	"context"
	log "log/slog"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	fallbackTitle   = "Generated Post"
	fallbackContent = "Content generation failed"
)

// PlatformSpec 平台发帖约束
type PlatformSpec struct {
	Platform     model.Platform
	CharLimit    int
	Style        string
	HashtagCount string
}

var (
	linkedInSpec = PlatformSpec{
		Platform:     model.PlatformLinkedIn,
		CharLimit:    3000,
		Style:        "Professional, thought-leadership focused, industry insights",
		HashtagCount: "3-5 relevant professional hashtags",
	}
	twitterSpec = PlatformSpec{
		Platform:     model.PlatformTwitter,
		CharLimit:    280,
		Style:        "Concise, engaging, conversation-starter with emojis",
		HashtagCount: "2-3 trending hashtags",
	}
	instagramSpec = PlatformSpec{
		Platform:     model.PlatformInstagram,
		CharLimit:    2200,
		Style:        "Visual-first, storytelling, inspiring with emojis",
		HashtagCount: "8-15 hashtags including niche and broad ones",
	}
)

// SpecFor 返回平台约束。未知平台统一按 LinkedIn 处理，生成阶段不因平台标签报错
func SpecFor(p model.Platform) PlatformSpec {
	switch p {
	case model.PlatformTwitter:
		return twitterSpec
	case model.PlatformInstagram:
		return instagramSpec
	case model.PlatformLinkedIn:
		return linkedInSpec
	default:
		return linkedInSpec
	}
}

// GeneratedPost 模型生成的帖子
type GeneratedPost struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Hashtags string `json:"hashtags"`
}

// GeneratePost 根据摘要为指定平台生成一条帖子
func (c *Client) GeneratePost(ctx context.Context, summary string, platform model.Platform) (*GeneratedPost, error) {
	spec := SpecFor(platform)
	name := platform.String()
	if name == "" {
		name = spec.Platform.String()
	}

	prompt, err := c.prompts.generatePost.Format(map[string]any{
		"platform":      name,
		"summary":       summary,
		"char_limit":    strconv.Itoa(spec.CharLimit),
		"style":         spec.Style,
		"hashtag_count": spec.HashtagCount,
	})
	if err != nil {
		return nil, errors.Wrapf(ErrGeneration, "render post prompt: %v", err)
	}

	resp, err := c.fetchModel(ctx, c.prompts.postSystem, prompt, fetchOptions{maxTokens: 800, jsonMode: true})
	if err != nil {
		log.ErrorContext(ctx, "帖子生成-AI大模型请求失败", "platform", name, "err", err)
		return nil, errors.Wrapf(ErrGeneration, "generate %s post: %v", name, err)
	}

	post, err := ParseGeneratedPost(resp)
	if err != nil {
		log.ErrorContext(ctx, "帖子生成-AI大模型返回数据解析失败", "platform", name, "err", err)
		return nil, errors.Wrapf(ErrGeneration, "parse %s post: %v", name, err)
	}
	return post, nil
}

// ParseGeneratedPost 解析模型返回的 JSON，缺失字段使用占位值；空响应视为 "{}"
func ParseGeneratedPost(s string) (*GeneratedPost, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		cleaned = "{}"
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, err
	}

	return &GeneratedPost{
		Title:    stringField(raw, "title", fallbackTitle),
		Content:  stringField(raw, "content", fallbackContent),
		Hashtags: stringField(raw, "hashtags", ""),
	}, nil
}

func stringField(raw map[string]any, key, fallback string) string {
	switch v := raw[key].(type) {
	case string:
		if v != "" {
			return v
		}
	case []any:
		// 部分模型会把 hashtags 返回成数组
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}
	return fallback
}
