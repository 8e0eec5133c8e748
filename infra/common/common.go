package common

import (
	"crypto/md5"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// skipped directories never end up in the API image.
var skipped = map[string]bool{
	".git":      true,
	"infra":     true,
	"_examples": true,
}

// SourceHash fingerprints the Go sources under root so the image tag only
// changes when the code does.
func SourceHash(root string) (string, error) {
	var hash string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipped[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") && d.Name() != "go.mod" && d.Name() != "go.sum" && d.Name() != "Dockerfile" {
			return nil
		}

		fh, err := fileHash(path)
		if err != nil {
			return err
		}
		hash = chain(hash, fh)
		return nil
	})

	return hash, err
}

func fileHash(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func chain(prev, next string) string {
	h := md5.New()
	io.WriteString(h, prev+next)
	return fmt.Sprintf("%x", h.Sum(nil))
}
