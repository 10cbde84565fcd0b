package audio

import (
	"fmt"
	"os"
	"path/filepath"
)

// ClipExtensions поддерживаемые форматы в порядке приоритета поиска
var ClipExtensions = []string{".ogg", ".wav", ".mp3"}

// FindClip ищет файл клипа как <dir>/<категория>/<имя>.<расширение>
func FindClip(dir string, cat Category, name string) (string, error) {
	for _, ext := range ClipExtensions {
		path := filepath.Join(dir, string(cat), name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s/%s: %w", cat, name, ErrClipNotFound)
}
