package tuner

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"sound-tuner/internal/audio"
)

// DefaultFile имя файла настроек в каталоге данных
const DefaultFile = "SoundTuner.json"

// Record одна запись файла настроек
type Record struct {
	Type   audio.Category `mapstructure:"type"`
	Name   string         `mapstructure:"name"`
	Volume *float64       `mapstructure:"volume"`
	Pitch  *float64       `mapstructure:"pitch"`
	Pan    *float64       `mapstructure:"pan"`
}

// Document содержимое файла настроек.
//
//	{ "settings": [
//	  { "type": "bgm", "name": "Battle1", "volume": 100, "pitch": 100, "pan": 0 },
//	  { "type": "se",  "name": "Cursor2", "volume": 90 }
//	] }
type Document struct {
	Settings []Record `mapstructure:"settings"`
}

// LoadDocument читает файл настроек. Формат определяется по расширению
// (json, yaml, toml).
func LoadDocument(path string) (Document, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Document{}, fmt.Errorf("read sound tuner file: %w", err)
	}
	return decode(v)
}

// ReadDocument читает настройки из r в формате format ("json", "yaml", ...)
func ReadDocument(r io.Reader, format string) (Document, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return Document{}, fmt.Errorf("parse sound tuner settings: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (Document, error) {
	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return Document{}, fmt.Errorf("decode sound tuner settings: %w", err)
	}
	return doc, nil
}
