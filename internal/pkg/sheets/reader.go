package sheets

import (
	"Sheetcast/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// ErrIntegration Google Sheets 接口调用失败（凭据无效、表格不可达等）
var ErrIntegration = errors.New("spreadsheet integration failed")

const defaultRange = "A:Z"

// Record 表格中的一行，表头 -> 单元格
type Record = map[string]string

// Metadata 表格展示信息
type Metadata struct {
	Title      string `json:"title"`
	SheetCount int    `json:"sheetCount"`
}

// Reader 读取用户表格内容
type Reader interface {
	Read(ctx context.Context, sheetID, accessToken string) ([]Record, error)
	ValidateAccess(ctx context.Context, sheetID, accessToken string) bool
	Metadata(ctx context.Context, sheetID, accessToken string) (*Metadata, error)
}

type googleReader struct {
	cfg       config.SheetsConfig
	transport http.RoundTripper
}

// NewGoogleReader 基于 Sheets v4 API 的实现，每个请求使用连接自带的 access token
func NewGoogleReader(cfg config.SheetsConfig) Reader {
	return &googleReader{cfg: cfg, transport: http.DefaultTransport}
}

func (s *googleReader) service(ctx context.Context, accessToken string) (*gsheets.Service, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	client := &http.Client{
		Transport: &oauth2.Transport{Source: src, Base: s.transport},
	}
	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if s.cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(s.cfg.Endpoint))
	}
	return gsheets.NewService(ctx, opts...)
}

// Read 首行作为表头，其余每行转成 Record；空表返回空切片而不是错误
func (s *googleReader) Read(ctx context.Context, sheetID, accessToken string) ([]Record, error) {
	srv, err := s.service(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrapf(ErrIntegration, "init sheets client: %v", err)
	}

	rng := s.cfg.Range
	if rng == "" {
		rng = defaultRange
	}
	resp, err := srv.Spreadsheets.Values.Get(sheetID, rng).Context(ctx).Do()
	if err != nil {
		log.ErrorContext(ctx, "Google Sheets 读取失败", "sheet_id", sheetID, "err", err)
		return nil, errors.Wrapf(ErrIntegration, "fetch sheet %s: %v", sheetID, err)
	}

	return RowsToRecords(resp.Values), nil
}

// ValidateAccess 凭据能否访问该表格
func (s *googleReader) ValidateAccess(ctx context.Context, sheetID, accessToken string) bool {
	srv, err := s.service(ctx, accessToken)
	if err != nil {
		return false
	}
	if _, err = srv.Spreadsheets.Get(sheetID).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		log.WarnContext(ctx, "Google Sheets 访问校验失败", "sheet_id", sheetID, "err", err)
		return false
	}
	return true
}

func (s *googleReader) Metadata(ctx context.Context, sheetID, accessToken string) (*Metadata, error) {
	srv, err := s.service(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrapf(ErrIntegration, "init sheets client: %v", err)
	}
	resp, err := srv.Spreadsheets.Get(sheetID).Context(ctx).Do()
	if err != nil {
		log.ErrorContext(ctx, "Google Sheets 元数据获取失败", "sheet_id", sheetID, "err", err)
		return nil, errors.Wrapf(ErrIntegration, "fetch sheet metadata %s: %v", sheetID, err)
	}

	meta := &Metadata{Title: "Untitled", SheetCount: len(resp.Sheets)}
	if resp.Properties != nil && resp.Properties.Title != "" {
		meta.Title = resp.Properties.Title
	}
	return meta, nil
}

// RowsToRecords 把 API 返回的二维数组转换为以表头为键的记录
func RowsToRecords(rows [][]interface{}) []Record {
	if len(rows) == 0 {
		return []Record{}
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = cellString(h)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = cellString(row[i])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

func cellString(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}

// SourceURL 表格在浏览器中的地址
func SourceURL(sheetID string) string {
	return "https://docs.google.com/spreadsheets/d/" + sheetID
}
