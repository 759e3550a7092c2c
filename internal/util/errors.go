package util

import "errors"

var (
	ErrCourseNotFound = errors.New("课程不存在")
	ErrInvalidQuota   = errors.New("每日配额必须为正整数")
)
