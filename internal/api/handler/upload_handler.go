package handler

import (
	"Revu/internal/api/dto"
	"Revu/internal/model"
	"Revu/internal/pkg/consts"
	"Revu/internal/pkg/response"
	"Revu/internal/pkg/storage"
	"Revu/internal/pkg/util"
	"Revu/internal/service"
	"fmt"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	uploadSvc service.UploadService
	store     storage.Store
}

func NewUploadHandler(uploadSvc service.UploadService, store storage.Store) *UploadHandler {
	return &UploadHandler{
		uploadSvc: uploadSvc,
		store:     store,
	}
}

// Upload stores the blob under <userId>/<randomToken>.<ext> and records the
// file row as an orphan until a post write claims its URL.
func (s *UploadHandler) Upload(c *gin.Context) {
	userID := c.GetUint64("user_id")

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}

	isImage := strings.HasPrefix(contentType, consts.MimePrefixImage)

	var width, height int
	if isImage {
		width, height, err = util.ProbeImage(reader)
		if err != nil {
			response.Error(c, service.ErrFileNotSupported)
			return
		}
	}

	ext := path.Ext(file.Filename)
	objectName := fmt.Sprintf("%d/%s%s", userID, uuid.NewString(), ext)

	fileKey, err := s.store.Put(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "blob upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	uploaded := &model.UploadedFile{
		UserID:   userID,
		URL:      fileKey,
		IsImage:  isImage,
		FileName: file.Filename,
		FileSize: util.FormatFileSize(file.Size),
	}
	meta := &dto.MediaTempMetadata{
		MimeType:  contentType,
		Width:     width,
		Height:    height,
		CreatedAt: time.Now().Unix(),
	}
	if err = s.uploadSvc.RegisterUpload(c.Request.Context(), uploaded, meta); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "upload success", &dto.FileDTO{
		ID:       uploaded.ID,
		URL:      uploaded.URL,
		IsImage:  uploaded.IsImage,
		FileName: uploaded.FileName,
		FileSize: uploaded.FileSize,
	})
}
