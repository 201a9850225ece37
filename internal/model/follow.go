package model

import "time"

type Follow struct {
	FollowerID  int64     `json:"follower_id"`
	FollowingID int64     `json:"following_id"`
	FollowTime  time.Time `json:"follow_time"`
}
