package service

import (
	"Sheetcast/internal/model"
	"Sheetcast/internal/pkg/database/dbtest"
	"Sheetcast/internal/pkg/llm"
	"Sheetcast/internal/pkg/sheets"
	"Sheetcast/internal/repository"
	"context"
	"errors"
	"sync"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReader struct {
	mu    sync.Mutex
	data  map[string][]sheets.Record
	errs  map[string]error
	calls []string
}

func (f *fakeReader) Read(_ context.Context, sheetID, _ string) ([]sheets.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, sheetID)
	if err := f.errs[sheetID]; err != nil {
		return nil, err
	}
	return f.data[sheetID], nil
}

func (f *fakeReader) ValidateAccess(_ context.Context, sheetID, _ string) bool {
	return f.errs[sheetID] == nil
}

func (f *fakeReader) Metadata(_ context.Context, sheetID, _ string) (*sheets.Metadata, error) {
	if err := f.errs[sheetID]; err != nil {
		return nil, err
	}
	return &sheets.Metadata{Title: "Title " + sheetID, SheetCount: 1}, nil
}

// fakeGenerator 摘要为 "summary:<topic>"，正文取 contents 或默认值
type fakeGenerator struct {
	mu             sync.Mutex
	contents       map[model.Platform]string
	failSummaryFor string
	failPostFor    string
	failPlatform   model.Platform
	models         []string
}

func (f *fakeGenerator) Summarize(_ context.Context, records []llm.Record, summaryModel string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.models = append(f.models, summaryModel)
	topic := records[0]["topic"]
	if topic == f.failSummaryFor {
		return "", pkgerrors.Wrap(llm.ErrGeneration, "summarize")
	}
	return "summary:" + topic, nil
}

func (f *fakeGenerator) GeneratePost(_ context.Context, summary string, platform model.Platform) (*llm.GeneratedPost, error) {
	if summary == "summary:"+f.failPostFor && platform == f.failPlatform {
		return nil, pkgerrors.Wrap(llm.ErrGeneration, "generate")
	}
	content := f.contents[platform]
	if content == "" {
		content = "post for " + platform.String() + " from " + summary
	}
	return &llm.GeneratedPost{Title: "Title " + platform.String(), Content: content, Hashtags: "#go"}, nil
}

// metadataInt JSON 列读回的数字是 json.Number
func metadataInt(t *testing.T, v any) int64 {
	t.Helper()
	n, ok := v.(interface{ Int64() (int64, error) })
	require.Truef(t, ok, "metadata value %v (%T) is not a number", v, v)
	i, err := n.Int64()
	require.NoError(t, err)
	return i
}

// failingPostRepo 第 failOn 次批量写入时返回错误
type failingPostRepo struct {
	repository.PostRepo
	calls  int
	failOn int
}

func (f *failingPostRepo) CreatePosts(ctx context.Context, posts []*model.Post) error {
	f.calls++
	if f.calls == f.failOn {
		return errors.New("disk full")
	}
	return f.PostRepo.CreatePosts(ctx, posts)
}

type fixture struct {
	db        *gorm.DB
	reader    *fakeReader
	generator *fakeGenerator

	sheetRepo    repository.GoogleSheetRepo
	postRepo     repository.PostRepo
	workflowRepo repository.WorkflowRepo
	activityRepo repository.ActivityRepo

	activitySvc  ActivityService
	dashboardSvc DashboardService
	workflowSvc  WorkflowService
	postSvc      PostService
	sheetSvc     GoogleSheetService
	connSvc      PlatformConnectionService
	userSvc      UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)

	f := &fixture{
		db:           db,
		reader:       &fakeReader{data: map[string][]sheets.Record{}, errs: map[string]error{}},
		generator:    &fakeGenerator{},
		sheetRepo:    repository.NewGoogleSheetRepo(db),
		postRepo:     repository.NewPostRepo(db),
		workflowRepo: repository.NewWorkflowRepo(db),
		activityRepo: repository.NewActivityRepo(db),
	}
	f.activitySvc = NewActivityService(f.activityRepo)
	f.dashboardSvc = NewDashboardService(repository.NewDashboardRepo(db))
	f.userSvc = NewUserService(repository.NewUserRepo(db))
	f.sheetSvc = NewGoogleSheetService(f.sheetRepo, f.reader, f.activitySvc, false)
	f.connSvc = NewPlatformConnectionService(repository.NewPlatformConnectionRepo(db), f.activitySvc, f.dashboardSvc)
	f.postSvc = NewPostService(f.postRepo, f.activitySvc, f.dashboardSvc)
	f.workflowSvc = f.workflowService(f.postRepo)
	return f
}

func (f *fixture) workflowService(postRepo repository.PostRepo) WorkflowService {
	return NewWorkflowService(f.workflowRepo, f.sheetRepo, postRepo, f.reader, f.generator, f.activitySvc, f.dashboardSvc)
}

func (f *fixture) user(t *testing.T, id string) string {
	t.Helper()
	require.NoError(t, repository.NewUserRepo(f.db).UpsertUser(context.Background(), &model.User{Base: model.Base{ID: id}}))
	return id
}

func (f *fixture) sheet(t *testing.T, userID, sheetID string, active bool) *model.GoogleSheet {
	t.Helper()
	sheet := &model.GoogleSheet{UserID: userID, Name: "Sheet " + sheetID, SheetID: sheetID, AccessToken: "token", IsActive: active}
	require.NoError(t, f.sheetRepo.CreateSheet(context.Background(), sheet))
	return sheet
}

func (f *fixture) workflow(t *testing.T, userID string) *model.Workflow {
	t.Helper()
	wf := &model.Workflow{UserID: userID, Name: "Daily", SummaryModel: model.DefaultSummaryModel, IsActive: true}
	require.NoError(t, f.workflowRepo.CreateWorkflow(context.Background(), wf))
	return wf
}

func sheetRows(topic string, n int) []sheets.Record {
	out := make([]sheets.Record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, sheets.Record{"topic": topic, "note": "row"})
	}
	return out
}
