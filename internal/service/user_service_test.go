package service

import (
	"Revu/internal/api/config"
	"Revu/internal/api/dto"
	"Revu/internal/model"
	"Revu/internal/pkg/consts"
	"Revu/internal/repository"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserEnv(t *testing.T) (*testEnv, UserService) {
	t.Helper()

	config.Cfg = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpirationHours: 1},
	}

	env := newTestEnv(t)
	svc := NewUserService(
		env.db,
		repository.NewUserRepository(env.db),
		repository.NewPostRepository(env.db),
		repository.NewCommentRepository(env.db),
		repository.NewReactionRepository(env.db),
		env.uploadSvc,
	)
	return env, svc
}

func TestSignup_DuplicateNicknameAndEmail(t *testing.T) {
	_, svc := newUserEnv(t)

	_, err := svc.Signup(context.Background(), &dto.SignupDTO{
		Nickname: "미식가", Email: "foodie@test.com", Password: "password1",
	})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), &dto.SignupDTO{
		Nickname: "미식가", Email: "other@test.com", Password: "password1",
	})
	assert.ErrorIs(t, err, ErrNicknameExist)

	_, err = svc.Signup(context.Background(), &dto.SignupDTO{
		Nickname: "대식가", Email: "foodie@test.com", Password: "password1",
	})
	assert.ErrorIs(t, err, ErrEmailExist)
}

func TestSignin(t *testing.T) {
	_, svc := newUserEnv(t)

	_, err := svc.Signup(context.Background(), &dto.SignupDTO{
		Nickname: "미식가", Email: "foodie@test.com", Password: "password1",
	})
	require.NoError(t, err)

	token, err := svc.Signin(context.Background(), &dto.SigninDTO{
		Email: "foodie@test.com", Password: "password1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	_, err = svc.Signin(context.Background(), &dto.SigninDTO{
		Email: "foodie@test.com", Password: "wrongpass1",
	})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	_, err = svc.Signin(context.Background(), &dto.SigninDTO{
		Email: "nobody@test.com", Password: "password1",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteAccount_Cascades(t *testing.T) {
	env, svc := newUserEnv(t)

	out, err := svc.Signup(context.Background(), &dto.SignupDTO{
		Nickname: "탈퇴자", Email: "leaver@test.com", Password: "password1",
	})
	require.NoError(t, err)
	userID := out.ID

	file := seedFile(t, env.db, userID, "1/mine.jpg")
	post, err := env.postSvc.CreatePost(context.Background(), userID, &dto.FeedPublishDTO{
		Title:        "남기고 가는 글",
		Content:      "내용",
		CategoryID:   1,
		EstimationID: 1,
		FileLinks:    []string{file.URL},
	})
	require.NoError(t, err)

	require.NoError(t, env.db.Create(&model.Comment{
		PostID: post.ID, UserID: userID, Content: "셀프 댓글",
	}).Error)
	require.NoError(t, env.db.Create(&model.Reaction{
		PostID: post.ID, UserID: userID, SymbolID: 1,
	}).Error)

	require.NoError(t, svc.DeleteAccount(context.Background(), userID))

	// user row is soft-deleted with the email suffixed to free the constraint
	var user model.User
	require.NoError(t, env.db.Unscoped().First(&user, userID).Error)
	assert.True(t, user.DeletedAt.Valid)
	assert.True(t, strings.HasPrefix(user.Email, "leaver@test.com"+consts.DeletedEmailSuffix))

	// posts are both marked and soft-deleted
	var gotPost model.Post
	require.NoError(t, env.db.Unscoped().First(&gotPost, post.ID).Error)
	assert.Equal(t, consts.PostStatusDeleted, gotPost.Status)
	assert.True(t, gotPost.DeletedAt.Valid)

	// files purged, blob included
	assert.Contains(t, env.store.deleted, file.URL)

	// comments and reactions soft-deleted
	var count int64
	require.NoError(t, env.db.Model(&model.Comment{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, env.db.Model(&model.Reaction{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteAccount_FreesEmailForResignup(t *testing.T) {
	_, svc := newUserEnv(t)

	out, err := svc.Signup(context.Background(), &dto.SignupDTO{
		Nickname: "첫번째", Email: "again@test.com", Password: "password1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(context.Background(), out.ID))

	_, err = svc.Signup(context.Background(), &dto.SignupDTO{
		Nickname: "두번째", Email: "again@test.com", Password: "password1",
	})
	assert.NoError(t, err)
}

func TestDeleteAccount_RepeatNotFound(t *testing.T) {
	_, svc := newUserEnv(t)

	out, err := svc.Signup(context.Background(), &dto.SignupDTO{
		Nickname: "한번만", Email: "once@test.com", Password: "password1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(context.Background(), out.ID))
	err = svc.DeleteAccount(context.Background(), out.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
