package service

import (
	"Revu/internal/model"
	"Revu/internal/pkg/consts"
	"Revu/internal/pkg/storage"
	"Revu/internal/repository"
	"context"
	"io"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema and seeded
// catalogs.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Reaction{},
		&model.UploadedFile{},
		&model.Category{},
		&model.Estimation{},
		&model.Symbol{},
	)
	require.NoError(t, err)

	require.NoError(t, db.Create(&model.Category{ID: 1, Name: "맛집"}).Error)
	require.NoError(t, db.Create(&model.Estimation{ID: 1, Name: "good"}).Error)
	require.NoError(t, db.Create(&model.Estimation{ID: 2, Name: "bad"}).Error)
	require.NoError(t, db.Create(&model.Symbol{ID: 1, Name: "like"}).Error)
	require.NoError(t, db.Create(&model.Symbol{ID: 2, Name: "cool"}).Error)

	return db
}

// fakeStore is an in-memory storage.Store recording what was deleted.
type fakeStore struct {
	deleted []string
}

func (s *fakeStore) Put(_ context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
	return key, nil
}

func (s *fakeStore) DeleteMany(_ context.Context, keys []string) error {
	s.deleted = append(s.deleted, keys...)
	return nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "http://localhost:9000/revu-media/" + key
}

var _ storage.Store = (*fakeStore)(nil)

type testEnv struct {
	db        *gorm.DB
	store     *fakeStore
	postSvc   PostService
	uploadSvc UploadService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	store := &fakeStore{}
	uploadSvc := NewUploadService(db, repository.NewFileRepository(db), store)
	postSvc := NewPostService(
		db,
		repository.NewPostRepository(db),
		repository.NewReactionRepository(db),
		repository.NewCatalogRepository(db),
		uploadSvc,
	)
	return &testEnv{db: db, store: store, postSvc: postSvc, uploadSvc: uploadSvc}
}

func seedUser(t *testing.T, db *gorm.DB, nickname string) *model.User {
	t.Helper()

	user := &model.User{
		Nickname: nickname,
		Email:    nickname + "@test.com",
		Password: "$2a$10$abcdefghijklmnopqrstuv",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedFile(t *testing.T, db *gorm.DB, userID uint64, url string) *model.UploadedFile {
	t.Helper()

	file := &model.UploadedFile{
		UserID:   userID,
		URL:      url,
		IsImage:  true,
		FileName: "photo.jpg",
		FileSize: "1.2 MB",
	}
	require.NoError(t, db.Create(file).Error)
	return file
}

func seedPublishedPost(t *testing.T, db *gorm.DB, userID uint64, title string) *model.Post {
	t.Helper()

	catID, estID := uint64(1), uint64(1)
	now := time.Now()
	post := &model.Post{
		UserID:       userID,
		Title:        &title,
		Content:      "content of " + title,
		Status:       consts.PostStatusPublished,
		CategoryID:   &catID,
		EstimationID: &estID,
		PostedAt:     &now,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
