package util

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// ValidateMimeType 深度校验文件内容的 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "image/", "video/"
func ValidateMimeType(data []byte, allowedTypes []string) (string, error) {
	probe := data
	if len(probe) > 512 {
		probe = probe[:512]
	}
	mimeType := http.DetectContentType(probe)

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// EncodeImageDataURI 把本地图片编码为可直接内嵌到 <img> 的 data URI
// 非图片内容返回错误，由调用方降级为空 logo
func EncodeImageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mimeType, err := ValidateMimeType(data, []string{"image/"})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
