package service

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/model"
	"Sheetcast/internal/pkg/sheets"
	"context"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectListAndSyncSheet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uid := f.user(t, "u1")

	created, err := f.sheetSvc.ConnectSheet(ctx, uid, &dto.CreateGoogleSheetDTO{Name: "Leads", SheetID: "abc", AccessToken: "tok"})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	list, err := f.sheetSvc.ListSheets(ctx, uid)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 0, list[0].EntryCount)
	assert.Nil(t, list[0].LastSynced)

	f.reader.data["abc"] = sheetRows("x", 4)
	synced, err := f.sheetSvc.SyncSheet(ctx, uid, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, synced.EntryCount)
	require.NotNil(t, synced.LastSynced)

	list, err = f.sheetSvc.ListSheets(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 4, list[0].EntryCount)
	assert.NotNil(t, list[0].LastSynced)

	activities, err := f.activitySvc.ListActivities(ctx, uid, 0)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	types := []string{activities[0].Type, activities[1].Type}
	assert.ElementsMatch(t, []string{model.ActivityGoogleSheetConnected, model.ActivityGoogleSheetSynced}, types)
}

func TestSyncSheetIntegrationFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uid := f.user(t, "u1")
	sheet := f.sheet(t, uid, "abc", true)
	f.reader.errs["abc"] = pkgerrors.Wrap(sheets.ErrIntegration, "403")

	_, err := f.sheetSvc.SyncSheet(ctx, uid, sheet.ID)
	assert.ErrorIs(t, err, sheets.ErrIntegration)

	_, err = f.sheetSvc.SyncSheet(ctx, "u2", sheet.ID)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestConnectSheetValidatesAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uid := f.user(t, "u1")
	f.reader.errs["locked"] = sheets.ErrIntegration
	svc := NewGoogleSheetService(f.sheetRepo, f.reader, f.activitySvc, true)

	_, err := svc.ConnectSheet(ctx, uid, &dto.CreateGoogleSheetDTO{Name: "Locked", SheetID: "locked", AccessToken: "tok"})
	assert.ErrorIs(t, err, ErrSheetAccessDenied)

	_, err = svc.ConnectSheet(ctx, uid, &dto.CreateGoogleSheetDTO{Name: "Open", SheetID: "open", AccessToken: "tok"})
	require.NoError(t, err)
}

func TestToggleDeleteAndMetadata(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uid := f.user(t, "u1")
	sheet := f.sheet(t, uid, "abc", true)

	off := false
	updated, err := f.sheetSvc.UpdateSheet(ctx, uid, sheet.ID, &dto.UpdateGoogleSheetDTO{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	meta, err := f.sheetSvc.GetSheetMetadata(ctx, uid, sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Title abc", meta.Title)

	require.NoError(t, f.sheetSvc.DeleteSheet(ctx, uid, sheet.ID))
	assert.ErrorIs(t, f.sheetSvc.DeleteSheet(ctx, uid, sheet.ID), ErrSheetNotFound)
}

func TestSyncActiveSheets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.user(t, "u1")
	f.user(t, "u2")
	f.sheet(t, "u1", "a", true)
	f.sheet(t, "u2", "b", true)
	f.sheet(t, "u2", "c", false)
	f.reader.data["a"] = sheetRows("a", 2)
	f.reader.errs["b"] = sheets.ErrIntegration

	synced, failed, err := f.sheetSvc.SyncActiveSheets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, synced)
	assert.Equal(t, 1, failed)
	assert.ElementsMatch(t, []string{"a", "b"}, f.reader.calls)
}
