package consts

const (
	MimePrefixImage = "image"
)

const (
	PostStatusDraft     int8 = 0
	PostStatusPublished int8 = 1
	PostStatusDeleted   int8 = 2
)

const (
	TitleMinLength   = 1
	TitleMaxLength   = 30
	ContentMaxLength = 10000
)

// User-facing markers. The platform ships Korean copy; these exact strings are
// part of the API contract with the web client.
const (
	DeletedCommentContent = "삭제된 댓글입니다"
	PrivateCommentContent = "## 비밀 댓글 입니다 ##"
	TempTitleSuffix       = "에 임시저장된 글입니다."
	TempTitleTimeLayout   = "2006년 1월 2일 15시 4분"
)

// DeletedEmailSuffix is inserted into a removed account's email so the unique
// constraint frees the address for a fresh signup.
const DeletedEmailSuffix = ".deleted."
