package consts

const (
	MediaTempKey      = "media:temp"
	TokenBlacklistKey = "token:blacklist:"
)
