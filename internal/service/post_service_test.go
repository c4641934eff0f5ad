package service

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/model"
	"Sheetcast/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPost(t *testing.T, f *fixture, userID string) *model.Post {
	t.Helper()
	post := &model.Post{UserID: userID, Platform: model.PlatformLinkedIn, Title: "Launch", Content: "hello", CharacterCount: 5}
	require.NoError(t, f.postRepo.CreatePosts(context.Background(), []*model.Post{post}))
	return post
}

func TestApprovePostAppendsActivityEachTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uid := f.user(t, "u1")
	post := seedPost(t, f, uid)

	approved := true
	for i := 0; i < 2; i++ {
		updated, err := f.postSvc.UpdatePost(ctx, uid, post.ID, &dto.UpdatePostDTO{IsApproved: &approved})
		require.NoError(t, err)
		assert.True(t, updated.IsApproved)
	}

	activities, err := f.activitySvc.ListActivities(ctx, uid, 0)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	for _, a := range activities {
		assert.Equal(t, model.ActivityPostApproved, a.Type)
		assert.Equal(t, "Post approved for linkedin: Launch", a.Description)
		assert.Equal(t, post.ID, a.Metadata["postId"])
	}

	posts, err := f.postSvc.ListPosts(ctx, uid, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestUnapproveDoesNotRecordActivity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uid := f.user(t, "u1")
	post := seedPost(t, f, uid)

	rejected := false
	_, err := f.postSvc.UpdatePost(ctx, uid, post.ID, &dto.UpdatePostDTO{IsApproved: &rejected})
	require.NoError(t, err)

	activities, err := f.activitySvc.ListActivities(ctx, uid, 0)
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestEditPostRecomputesCharacterCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uid := f.user(t, "u1")
	post := seedPost(t, f, uid)

	content := "naïve résumé"
	hashtags := "#cv"
	updated, err := f.postSvc.UpdatePost(ctx, uid, post.ID, &dto.UpdatePostDTO{Content: &content, Hashtags: &hashtags})
	require.NoError(t, err)
	assert.Equal(t, content, updated.Content)
	assert.Equal(t, 12, updated.CharacterCount)
	assert.Equal(t, "#cv", updated.Hashtags)
	assert.Equal(t, "Launch", updated.Title)
}

func TestPostOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "u1")
	other := f.user(t, "u2")
	post := seedPost(t, f, owner)

	approved := true
	_, err := f.postSvc.UpdatePost(ctx, other, post.ID, &dto.UpdatePostDTO{IsApproved: &approved})
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, f.postSvc.DeletePost(ctx, other, post.ID), ErrPostNotFound)

	_, err = f.postSvc.UpdatePost(ctx, owner, post.ID, &dto.UpdatePostDTO{})
	assert.ErrorIs(t, err, ErrParamInvalid)

	require.NoError(t, f.postSvc.DeletePost(ctx, owner, post.ID))
	posts, err := f.postSvc.ListPosts(ctx, owner, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

// unchangedRowsPostRepo 模拟 MySQL：内容未变时 RowsAffected 为 0
type unchangedRowsPostRepo struct {
	repository.PostRepo
}

func (r *unchangedRowsPostRepo) UpdatePost(ctx context.Context, userID string, id string, updates map[string]any) (int64, error) {
	_, err := r.PostRepo.UpdatePost(ctx, userID, id, updates)
	return 0, err
}

type unchangedRowsSheetRepo struct {
	repository.GoogleSheetRepo
}

func (r *unchangedRowsSheetRepo) UpdateSheet(ctx context.Context, userID string, id string, updates map[string]any) (int64, error) {
	_, err := r.GoogleSheetRepo.UpdateSheet(ctx, userID, id, updates)
	return 0, err
}

func TestUpdateWithUnchangedRowsIsNotNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uid := f.user(t, "u1")
	post := seedPost(t, f, uid)

	postSvc := NewPostService(&unchangedRowsPostRepo{f.postRepo}, f.activitySvc, f.dashboardSvc)
	approved := true
	for i := 0; i < 2; i++ {
		updated, err := postSvc.UpdatePost(ctx, uid, post.ID, &dto.UpdatePostDTO{IsApproved: &approved})
		require.NoError(t, err)
		assert.True(t, updated.IsApproved)
	}
	_, err := postSvc.UpdatePost(ctx, uid, "missing", &dto.UpdatePostDTO{IsApproved: &approved})
	assert.ErrorIs(t, err, ErrPostNotFound)

	sheet := f.sheet(t, uid, "s1", true)
	sheetSvc := NewGoogleSheetService(&unchangedRowsSheetRepo{f.sheetRepo}, f.reader, f.activitySvc, false)
	active := true
	updatedSheet, err := sheetSvc.UpdateSheet(ctx, uid, sheet.ID, &dto.UpdateGoogleSheetDTO{IsActive: &active})
	require.NoError(t, err)
	assert.True(t, updatedSheet.IsActive)
	_, err = sheetSvc.UpdateSheet(ctx, uid, "missing", &dto.UpdateGoogleSheetDTO{IsActive: &active})
	assert.ErrorIs(t, err, ErrSheetNotFound)
}
