package service

import (
	"Revu/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLinkFiles_UnknownURLFails(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "uploader")
	post := seedPublishedPost(t, env.db, user.ID, "글")

	err := env.db.Transaction(func(tx *gorm.DB) error {
		return env.uploadSvc.LinkFiles(context.Background(), tx, post.ID, []string{"1/nope.jpg"})
	})
	assert.ErrorIs(t, err, ErrFileNotExist)
}

func TestLinkFiles_CrossPostConflictFailsHard(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "uploader")
	postA := seedPublishedPost(t, env.db, user.ID, "글 A")
	postB := seedPublishedPost(t, env.db, user.ID, "글 B")
	file := seedFile(t, env.db, user.ID, "1/shared.jpg")

	err := env.db.Transaction(func(tx *gorm.DB) error {
		return env.uploadSvc.LinkFiles(context.Background(), tx, postA.ID, []string{file.URL})
	})
	require.NoError(t, err)

	err = env.db.Transaction(func(tx *gorm.DB) error {
		return env.uploadSvc.LinkFiles(context.Background(), tx, postB.ID, []string{file.URL})
	})
	assert.ErrorIs(t, err, ErrFileConflict)

	// the original link is untouched
	var got model.UploadedFile
	require.NoError(t, env.db.First(&got, file.ID).Error)
	require.NotNil(t, got.PostID)
	assert.Equal(t, postA.ID, *got.PostID)
}

func TestLinkFiles_AlreadyLinkedToSamePostIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "uploader")
	post := seedPublishedPost(t, env.db, user.ID, "글")
	file := seedFile(t, env.db, user.ID, "1/once.jpg")

	for i := 0; i < 2; i++ {
		err := env.db.Transaction(func(tx *gorm.DB) error {
			return env.uploadSvc.LinkFiles(context.Background(), tx, post.ID, []string{file.URL})
		})
		require.NoError(t, err)
	}

	var got model.UploadedFile
	require.NoError(t, env.db.First(&got, file.ID).Error)
	require.NotNil(t, got.PostID)
	assert.Equal(t, post.ID, *got.PostID)
}

func TestComputeDeletionSet(t *testing.T) {
	env := newTestEnv(t)
	existing := []model.UploadedFile{
		{ID: 1, URL: "a.jpg"},
		{ID: 2, URL: "b.jpg"},
		{ID: 3, URL: "c.jpg"},
	}

	doomed := env.uploadSvc.ComputeDeletionSet(existing, []string{"b.jpg"})
	require.Len(t, doomed, 2)
	assert.Equal(t, "a.jpg", doomed[0].URL)
	assert.Equal(t, "c.jpg", doomed[1].URL)

	// empty submission drops everything
	doomed = env.uploadSvc.ComputeDeletionSet(existing, nil)
	assert.Len(t, doomed, 3)

	// full resubmission keeps everything
	doomed = env.uploadSvc.ComputeDeletionSet(existing, []string{"a.jpg", "b.jpg", "c.jpg"})
	assert.Empty(t, doomed)
}

func TestPurge_OrphansHardDeletedDetachedSoftDeleted(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "uploader")
	post := seedPublishedPost(t, env.db, user.ID, "글")

	orphan := seedFile(t, env.db, user.ID, "1/orphan.jpg")
	attached := seedFile(t, env.db, user.ID, "1/attached.jpg")
	require.NoError(t, env.db.Model(attached).Update("post_id", post.ID).Error)
	require.NoError(t, env.db.First(attached, attached.ID).Error)

	err := env.db.Transaction(func(tx *gorm.DB) error {
		return env.uploadSvc.Purge(context.Background(), tx, []model.UploadedFile{*orphan, *attached})
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{orphan.URL, attached.URL}, env.store.deleted)

	// orphan row is gone entirely
	err = env.db.Unscoped().First(&model.UploadedFile{}, orphan.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// detached row survives soft-deleted
	err = env.db.First(&model.UploadedFile{}, attached.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	err = env.db.Unscoped().First(&model.UploadedFile{}, attached.ID).Error
	assert.NoError(t, err)
}

func TestSweepExpiredOrphans(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "uploader")

	stale := seedFile(t, env.db, user.ID, "1/stale.jpg")
	require.NoError(t, env.db.Model(stale).
		UpdateColumn("created_at", time.Now().Add(-48*time.Hour)).Error)
	fresh := seedFile(t, env.db, user.ID, "1/fresh.jpg")

	count, err := env.uploadSvc.SweepExpiredOrphans(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Contains(t, env.store.deleted, stale.URL)
	assert.NotContains(t, env.store.deleted, fresh.URL)
	assert.NoError(t, env.db.First(&model.UploadedFile{}, fresh.ID).Error)
}
