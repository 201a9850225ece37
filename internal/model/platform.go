package model

import "strings"

type PlatformType string

const (
	PlatformPC      PlatformType = "PC"
	PlatformConsole PlatformType = "CONSOLE"
	PlatformMobile  PlatformType = "MOBILE"
)

func ParsePlatformType(raw string) (PlatformType, bool) {
	switch PlatformType(strings.ToUpper(strings.TrimSpace(raw))) {
	case PlatformPC:
		return PlatformPC, true
	case PlatformConsole:
		return PlatformConsole, true
	case PlatformMobile:
		return PlatformMobile, true
	}
	return "", false
}

type Platform struct {
	ID   int64        `json:"platform_id"`
	Name string       `json:"name"`
	Type PlatformType `json:"type"`
}
