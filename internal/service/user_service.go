package service

import (
	"Revu/internal/api/dto"
	"Revu/internal/model"
	"Revu/internal/pkg/consts"
	"Revu/internal/pkg/redis"
	"Revu/internal/pkg/security"
	"Revu/internal/pkg/util"
	"Revu/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"gorm.io/gorm"
)

type UserService interface {
	Signup(ctx context.Context, in *dto.SignupDTO) (*dto.UserDTO, error)
	Signin(ctx context.Context, in *dto.SigninDTO) (*dto.TokenDTO, error)
	Signout(ctx context.Context, token string) error
	// ValidateUser confirms the account exists and is not soft-deleted.
	ValidateUser(ctx context.Context, userID uint64) (*model.User, error)
	DeleteAccount(ctx context.Context, userID uint64) error
}

type userServiceImpl struct {
	db           *gorm.DB
	userRepo     repository.UserRepo
	postRepo     repository.PostRepo
	commentRepo  repository.CommentRepo
	reactionRepo repository.ReactionRepo
	uploadSvc    UploadService
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepo, postRepo repository.PostRepo, commentRepo repository.CommentRepo, reactionRepo repository.ReactionRepo, uploadSvc UploadService) UserService {
	return &userServiceImpl{
		db:           db,
		userRepo:     userRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
		uploadSvc:    uploadSvc,
	}
}

func (s *userServiceImpl) Signup(ctx context.Context, in *dto.SignupDTO) (*dto.UserDTO, error) {
	if err := util.ValidateDTO(in); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByNickname(ctx, in.Nickname)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNicknameExist
	}

	existing, err = s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExist
	}

	hashed, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Nickname: in.Nickname,
		Email:    in.Email,
		Password: hashed,
	}
	if err = s.userRepo.Create(ctx, user); err != nil {
		// a concurrent signup can slip past the lookup; the unique
		// constraint is authoritative
		if repository.IsDuplicateKey(err) {
			return nil, ErrEmailExist
		}
		return nil, err
	}

	return &dto.UserDTO{ID: user.ID, Nickname: user.Nickname, Email: user.Email}, nil
}

func (s *userServiceImpl) Signin(ctx context.Context, in *dto.SigninDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err = security.CheckPasswordHash(in.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.Nickname)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{Token: token}, nil
}

// Signout blacklists the token's signature until its natural expiry.
func (s *userServiceImpl) Signout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		return ErrParamInvalid
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", ttl)
}

func (s *userServiceImpl) ValidateUser(ctx context.Context, userID uint64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteAccount cascades the removal of everything the user owns in one
// transaction: the email is suffixed to free the unique constraint for a
// future signup, then the user row, posts, files, comments and reactions are
// soft-deleted together.
func (s *userServiceImpl) DeleteAccount(ctx context.Context, userID uint64) error {
	user, err := s.ValidateUser(ctx, userID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		freedEmail := fmt.Sprintf("%s%s%d", user.Email, consts.DeletedEmailSuffix, time.Now().Unix())
		if err := s.userRepo.UpdateEmail(ctx, tx, userID, freedEmail); err != nil {
			return err
		}
		if err := s.userRepo.SoftDelete(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.postRepo.SoftDeleteByUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.uploadSvc.PurgeOwned(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.commentRepo.SoftDeleteByUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.reactionRepo.SoftDeleteByUser(ctx, tx, userID); err != nil {
			return err
		}

		log.InfoContext(ctx, "account removed", "user_id", userID)
		return nil
	})
}
