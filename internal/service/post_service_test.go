package service

import (
	"Revu/internal/api/dto"
	"Revu/internal/model"
	"Revu/internal/pkg/consts"
	"Revu/internal/repository"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreatePost_Publishes(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "author")

	out, err := env.postSvc.CreatePost(context.Background(), user.ID, &dto.FeedPublishDTO{
		Title:        "첫 리뷰",
		Content:      "괜찮은 집이었다",
		CategoryID:   1,
		EstimationID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, consts.PostStatusPublished, out.Status)
	assert.Equal(t, "첫 리뷰", out.Title)
	require.NotNil(t, out.PostedAt)
	assert.WithinDuration(t, time.Now(), *out.PostedAt, 5*time.Second)
}

func TestCreatePost_UnknownCatalogRejected(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "author")

	_, err := env.postSvc.CreatePost(context.Background(), user.ID, &dto.FeedPublishDTO{
		Title:        "제목",
		Content:      "내용",
		CategoryID:   99,
		EstimationID: 1,
	})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestCreateDraft_NoPostedAt(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "author")

	out, err := env.postSvc.CreateDraft(context.Background(), user.ID, &dto.FeedDraftDTO{
		Content: "쓰다 만 글",
	})
	require.NoError(t, err)

	assert.Equal(t, consts.PostStatusDraft, out.Status)
	assert.Nil(t, out.PostedAt)
}

func TestCreateDraft_UntitledGetsPlaceholderTitle(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "author")

	_, err := env.postSvc.CreateDraft(context.Background(), user.ID, &dto.FeedDraftDTO{
		Content: "제목 없는 글",
	})
	require.NoError(t, err)

	drafts, err := env.postSvc.ListDrafts(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Contains(t, drafts[0].Title, consts.TempTitleSuffix)
}

func TestCreatePost_LinksFilesAndPurgesOrphans(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "author")
	linked := seedFile(t, env.db, user.ID, "1/linked.jpg")
	orphan := seedFile(t, env.db, user.ID, "1/orphan.jpg")

	out, err := env.postSvc.CreatePost(context.Background(), user.ID, &dto.FeedPublishDTO{
		Title:        "사진 달린 글",
		Content:      "내용",
		CategoryID:   1,
		EstimationID: 1,
		FileLinks:    []string{linked.URL},
	})
	require.NoError(t, err)
	require.Len(t, out.Files, 1)

	// the referenced file is now attached
	var got model.UploadedFile
	require.NoError(t, env.db.First(&got, linked.ID).Error)
	require.NotNil(t, got.PostID)
	assert.Equal(t, out.ID, *got.PostID)

	// the unreferenced upload is gone, blob included
	err = env.db.Unscoped().First(&model.UploadedFile{}, orphan.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Contains(t, env.store.deleted, orphan.URL)
}

// flakyPostRepo fails Create with a lock wait timeout a fixed number of
// times before delegating to the real repo.
type flakyPostRepo struct {
	repository.PostRepo
	failures int
	calls    int
}

func (s *flakyPostRepo) Create(ctx context.Context, tx *gorm.DB, post *model.Post) error {
	s.calls++
	if s.calls <= s.failures {
		return errors.New("Error 1205: Lock wait timeout exceeded; try restarting transaction")
	}
	return s.PostRepo.Create(ctx, tx, post)
}

func newRetryEnv(t *testing.T, failures int) (*testEnv, *flakyPostRepo) {
	t.Helper()

	env := newTestEnv(t)
	flaky := &flakyPostRepo{PostRepo: repository.NewPostRepository(env.db), failures: failures}
	env.postSvc = NewPostService(
		env.db,
		flaky,
		repository.NewReactionRepository(env.db),
		repository.NewCatalogRepository(env.db),
		env.uploadSvc,
	)
	return env, flaky
}

func TestCreatePost_RetriesLockWaitTimeout(t *testing.T) {
	env, flaky := newRetryEnv(t, 2)
	user := seedUser(t, env.db, "author")

	out, err := env.postSvc.CreatePost(context.Background(), user.ID, &dto.FeedPublishDTO{
		Title:        "재시도 글",
		Content:      "내용",
		CategoryID:   1,
		EstimationID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, flaky.calls)

	// exactly one row despite the retries
	var count int64
	require.NoError(t, env.db.Model(&model.Post{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.NotZero(t, out.ID)
}

func TestCreatePost_RetriesExhausted(t *testing.T) {
	env, flaky := newRetryEnv(t, 3)
	user := seedUser(t, env.db, "author")

	_, err := env.postSvc.CreatePost(context.Background(), user.ID, &dto.FeedPublishDTO{
		Title:        "실패하는 글",
		Content:      "내용",
		CategoryID:   1,
		EstimationID: 1,
	})
	assert.ErrorIs(t, err, ErrTransaction)
	assert.Equal(t, 3, flaky.calls)

	var count int64
	require.NoError(t, env.db.Model(&model.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdatePost_OtherErrorsDoNotRetry(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "author")

	_, err := env.postSvc.UpdatePost(context.Background(), user.ID, &dto.FeedPublishUpdateDTO{
		PostID: 12345,
		FeedPublishDTO: dto.FeedPublishDTO{
			Title: "없는 글", Content: "내용", CategoryID: 1, EstimationID: 1,
		},
	})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdatePost_DraftToPublishedSetsPostedAt(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "author")

	draft, err := env.postSvc.CreateDraft(context.Background(), user.ID, &dto.FeedDraftDTO{
		Content: "초안",
	})
	require.NoError(t, err)
	require.Nil(t, draft.PostedAt)

	out, err := env.postSvc.UpdatePost(context.Background(), user.ID, &dto.FeedPublishUpdateDTO{
		PostID: draft.ID,
		FeedPublishDTO: dto.FeedPublishDTO{
			Title: "완성", Content: "완성된 글", CategoryID: 1, EstimationID: 1,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, consts.PostStatusPublished, out.Status)
	require.NotNil(t, out.PostedAt)
}

func TestUpdatePost_PublishedKeepsOriginalPostedAt(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "author")
	post := seedPublishedPost(t, env.db, user.ID, "원본")
	original := *post.PostedAt

	out, err := env.postSvc.UpdatePost(context.Background(), user.ID, &dto.FeedPublishUpdateDTO{
		PostID: post.ID,
		FeedPublishDTO: dto.FeedPublishDTO{
			Title: "수정본", Content: "수정된 내용", CategoryID: 1, EstimationID: 2,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out.PostedAt)
	assert.WithinDuration(t, original, *out.PostedAt, time.Second)
	assert.Equal(t, "수정본", out.Title)
}

func TestUpdateDraft_PublishedCannotRevert(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "author")
	post := seedPublishedPost(t, env.db, user.ID, "공개글")

	_, err := env.postSvc.UpdateDraft(context.Background(), user.ID, &dto.FeedDraftUpdateDTO{
		PostID:       post.ID,
		FeedDraftDTO: dto.FeedDraftDTO{Content: "되돌리기 시도"},
	})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestUpdatePost_NotOwnerForbidden(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	other := seedUser(t, env.db, "other")
	post := seedPublishedPost(t, env.db, owner.ID, "남의 글")

	_, err := env.postSvc.UpdatePost(context.Background(), other.ID, &dto.FeedPublishUpdateDTO{
		PostID: post.ID,
		FeedPublishDTO: dto.FeedPublishDTO{
			Title: "탈취", Content: "내용", CategoryID: 1, EstimationID: 1,
		},
	})
	assert.ErrorIs(t, err, UnauthorizedError)
}

func TestUpdatePost_ReconcilesFileLinks(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "author")
	keep := seedFile(t, env.db, user.ID, "1/keep.jpg")
	drop := seedFile(t, env.db, user.ID, "1/drop.jpg")

	created, err := env.postSvc.CreatePost(context.Background(), user.ID, &dto.FeedPublishDTO{
		Title:        "사진 글",
		Content:      "내용",
		CategoryID:   1,
		EstimationID: 1,
		FileLinks:    []string{keep.URL, drop.URL},
	})
	require.NoError(t, err)
	require.Len(t, created.Files, 2)

	out, err := env.postSvc.UpdatePost(context.Background(), user.ID, &dto.FeedPublishUpdateDTO{
		PostID: created.ID,
		FeedPublishDTO: dto.FeedPublishDTO{
			Title: "사진 글", Content: "내용", CategoryID: 1, EstimationID: 1,
			FileLinks: []string{keep.URL},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Files, 1)

	// the dropped file is detached and its blob removed
	assert.Contains(t, env.store.deleted, drop.URL)
	err = env.db.First(&model.UploadedFile{}, drop.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetPost_VisibilityRules(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	other := seedUser(t, env.db, "other")

	draft, err := env.postSvc.CreateDraft(context.Background(), owner.ID, &dto.FeedDraftDTO{
		Content: "비공개 초안",
	})
	require.NoError(t, err)

	// owner sees the draft, others get not-found
	_, err = env.postSvc.GetPost(context.Background(), owner.ID, draft.ID)
	assert.NoError(t, err)
	_, err = env.postSvc.GetPost(context.Background(), other.ID, draft.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = env.postSvc.GetPost(context.Background(), 0, draft.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetPost_PublishedIncrementsViewCount(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	post := seedPublishedPost(t, env.db, owner.ID, "조회수 글")

	for i := 0; i < 3; i++ {
		_, err := env.postSvc.GetPost(context.Background(), 0, post.ID)
		require.NoError(t, err)
	}

	var got model.Post
	require.NoError(t, env.db.First(&got, post.ID).Error)
	assert.EqualValues(t, 3, got.ViewCount)
}

func TestDeletePost_Cascades(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	other := seedUser(t, env.db, "other")
	file := seedFile(t, env.db, owner.ID, "1/attached.jpg")

	created, err := env.postSvc.CreatePost(context.Background(), owner.ID, &dto.FeedPublishDTO{
		Title:        "지울 글",
		Content:      "내용",
		CategoryID:   1,
		EstimationID: 1,
		FileLinks:    []string{file.URL},
	})
	require.NoError(t, err)

	require.NoError(t, env.db.Create(&model.Reaction{
		UserID: other.ID, PostID: created.ID, SymbolID: 1,
	}).Error)

	require.NoError(t, env.postSvc.DeletePost(context.Background(), owner.ID, created.ID))

	// post invisible to everyone afterwards, owner included
	_, err = env.postSvc.GetPost(context.Background(), owner.ID, created.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	// attachment blob purged, row soft-deleted
	assert.Contains(t, env.store.deleted, file.URL)
	err = env.db.First(&model.UploadedFile{}, file.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// reactions soft-deleted
	var count int64
	require.NoError(t, env.db.Model(&model.Reaction{}).Where("post_id = ?", created.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeletePost_RepeatNotFound(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	post := seedPublishedPost(t, env.db, owner.ID, "한 번만 지워짐")

	require.NoError(t, env.postSvc.DeletePost(context.Background(), owner.ID, post.ID))
	err := env.postSvc.DeletePost(context.Background(), owner.ID, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListPublished_ExcludesDraftsAndDeleted(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	seedPublishedPost(t, env.db, owner.ID, "공개 1")
	doomed := seedPublishedPost(t, env.db, owner.ID, "곧 삭제")

	_, err := env.postSvc.CreateDraft(context.Background(), owner.ID, &dto.FeedDraftDTO{Content: "초안"})
	require.NoError(t, err)
	require.NoError(t, env.postSvc.DeletePost(context.Background(), owner.ID, doomed.ID))

	feeds, err := env.postSvc.ListPublished(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, "공개 1", feeds[0].Title)
}
