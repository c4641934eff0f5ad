package llm

import (
	"context"
	log "log/slog"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const summaryFallback = "Unable to generate summary"

// Record 表格中的一行，表头 -> 单元格
type Record = map[string]string

// Summarize 将若干行数据交给模型做主题摘要；model 为空时使用默认文本模型
func (c *Client) Summarize(ctx context.Context, records []Record, model string) (string, error) {
	if len(records) == 0 {
		return "", errors.Wrap(ErrGeneration, "no data provided for summarization")
	}

	prompt, err := c.prompts.summarize.Format(map[string]any{
		"content": FlattenRecords(records),
	})
	if err != nil {
		return "", errors.Wrapf(ErrGeneration, "render summarize prompt: %v", err)
	}

	resp, err := c.fetchModel(ctx, "", prompt, fetchOptions{model: model, maxTokens: 500})
	if err != nil {
		log.ErrorContext(ctx, "内容摘要-AI大模型请求失败", "err", err)
		return "", errors.Wrapf(ErrGeneration, "summarize content: %v", err)
	}

	if strings.TrimSpace(resp) == "" {
		log.WarnContext(ctx, "内容摘要-AI大模型返回为空")
		return summaryFallback, nil
	}
	return resp, nil
}

// FlattenRecords 每行拼成 "key: value, key: value"，行之间换行；列按表头排序保证输出稳定
func FlattenRecords(records []Record) string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+": "+rec[k])
		}
		lines = append(lines, strings.Join(pairs, ", "))
	}
	return strings.Join(lines, "\n")
}
