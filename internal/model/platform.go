package model

import (
	"errors"
	"strings"
)

// Platform 支持的社交平台，闭集
type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// Platforms 每次工作流运行都会为这三个平台各生成一条帖子，顺序固定
var Platforms = []Platform{PlatformLinkedIn, PlatformTwitter, PlatformInstagram}

// ParsePlatform 入口处校验平台标签，不认识的直接拒绝
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", ErrUnknownPlatform
	}
	return p, nil
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformLinkedIn, PlatformTwitter, PlatformInstagram:
		return true
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}
