package server

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	minImageSize  = 150             // square, pixels
	maxImageBytes = 2 * 1024 * 1024 // decoded
)

type UploadImage struct {
	Data string `json:"data,omitempty"`
}

var ErrInvalidImage = errors.New("Invalid image!")

func saveImageToDisk(fileNameBase, data, id, suffix string, minWidth, minHeight int) (string, error) {
	idx := strings.Index(data, ";base64,")
	if idx < 0 {
		return "", ErrInvalidImage
	}

	os.MkdirAll(filepath.Dir(fileNameBase), 0755)

	reader := base64.NewDecoder(base64.StdEncoding, strings.NewReader(data[idx+8:]))
	buff := bytes.Buffer{}
	if _, err := buff.ReadFrom(reader); err != nil {
		return "", err
	}
	if buff.Len() > maxImageBytes {
		return "", ErrInvalidImage
	}

	imgCfg, fm, err := image.DecodeConfig(bytes.NewReader(buff.Bytes()))
	if err != nil {
		return "", err
	}

	if imgCfg.Width < minWidth || imgCfg.Height < minHeight {
		return "", fmt.Errorf("Invalid size (%dx%d), min size is %dx%d!", imgCfg.Width, imgCfg.Height, minWidth, minHeight)
	}

	fileName := fileNameBase + suffix + "." + fm
	err = os.WriteFile(fileName, buff.Bytes(), 0644)

	return id + suffix + "." + fm, err
}
