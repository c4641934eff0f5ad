package llm

import (
	"Sheetcast/internal/api/config"
	"context"
	log "log/slog"
	"net/http"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/sync/semaphore"
)

// ErrGeneration 模型调用失败或返回内容无法解析
var ErrGeneration = errors.New("content generation failed")

// ChatModel 对话补全接口，*openai.LLM 即满足
type ChatModel interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// Client 摘要与帖子生成共用的模型客户端，启动时构造一次后注入
type Client struct {
	model   ChatModel
	cfg     config.LLMConfig
	sem     *semaphore.Weighted
	prompts promptSet
}

// NewClient 按配置创建 OpenAI 兼容客户端
func NewClient(cfg config.LLMConfig) (*Client, error) {
	model, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
		openai.WithHTTPClient(&http.Client{Transport: &loggingTransport{base: http.DefaultTransport}}),
	)
	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return nil, err
	}
	return NewClientWithModel(model, cfg), nil
}

// NewClientWithModel 使用指定模型实现构造客户端
func NewClientWithModel(model ChatModel, cfg config.LLMConfig) *Client {
	weight := cfg.MaxConcurrency
	if weight <= 0 {
		weight = 5
	}
	if cfg.TextModel == "" {
		cfg.TextModel = "gpt-4o"
	}
	return &Client{
		model:   model,
		cfg:     cfg,
		sem:     semaphore.NewWeighted(weight),
		prompts: loadPrompts(cfg.PromptsPath),
	}
}

type fetchOptions struct {
	model     string
	maxTokens int
	jsonMode  bool
}

func (c *Client) fetchModel(ctx context.Context, systemPrompt, userPrompt string, opts fetchOptions) (string, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer c.sem.Release(1)

	messages := make([]llms.MessageContent, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, userPrompt))

	model := opts.model
	if model == "" {
		model = c.cfg.TextModel
	}
	callOpts := []llms.CallOption{
		llms.WithModel(model),
		llms.WithTemperature(c.cfg.Temperature),
		llms.WithMaxTokens(opts.maxTokens),
	}
	if opts.jsonMode {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	log.InfoContext(ctx, "正在请求AI大模型", "model", model)
	resp, err := c.model.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Content, nil
}
