package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config содержит основные настройки игры
type Config struct {
	// Общие настройки
	WindowWidth  int    `mapstructure:"window_width"`
	WindowHeight int    `mapstructure:"window_height"`
	Title        string `mapstructure:"title"`
	TargetFPS    int    `mapstructure:"target_fps"`
	EnableVSync  bool   `mapstructure:"enable_vsync"`

	Audio AudioConfig `mapstructure:"audio"`
}

// AudioConfig настройки звука
type AudioConfig struct {
	Dir        string `mapstructure:"dir"`
	DataDir    string `mapstructure:"data_dir"`
	TunerFile  string `mapstructure:"tuner_file"`
	SampleRate int    `mapstructure:"sample_rate"`

	// Общая громкость категорий, 0..100
	BGMVolume int `mapstructure:"bgm_volume"`
	BGSVolume int `mapstructure:"bgs_volume"`
	MEVolume  int `mapstructure:"me_volume"`
	SEVolume  int `mapstructure:"se_volume"`

	// Клипы для стартового экрана
	TitleBGM string `mapstructure:"title_bgm"`
	TestBGS  string `mapstructure:"test_bgs"`
	TestME   string `mapstructure:"test_me"`
	TestSE   string `mapstructure:"test_se"`
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  816,
		WindowHeight: 624,
		Title:        "Sound Tuner",
		TargetFPS:    60,
		EnableVSync:  true,
		Audio: AudioConfig{
			Dir:        "audio",
			DataDir:    "data",
			TunerFile:  "SoundTuner.json",
			SampleRate: 48000,
			BGMVolume:  100,
			BGSVolume:  100,
			MEVolume:   100,
			SEVolume:   100,
			TitleBGM:   "Theme1",
			TestBGS:    "City",
			TestME:     "Victory1",
			TestSE:     "Cursor2",
		},
	}
}

// TunerPath возвращает путь к файлу настроек звуков
func (a AudioConfig) TunerPath() string {
	if filepath.IsAbs(a.TunerFile) {
		return a.TunerFile
	}
	return filepath.Join(a.DataDir, a.TunerFile)
}

// Load загружает конфигурацию из config.yaml в текущем каталоге или
// ./configs. Переменные окружения SOUNDTUNER_* перекрывают файл.
// Отсутствие файла не ошибка.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	return load(v)
}

// LoadFile загружает конфигурацию из указанного файла
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix("SOUNDTUNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// setDefaults регистрирует значения по умолчанию, чтобы AutomaticEnv
// видел все ключи
func setDefaults(v *viper.Viper, d *Config) {
	for key, value := range d.keys() {
		v.SetDefault(key, value)
	}
}

// Save сохраняет конфигурацию в файл, формат по расширению
func (c *Config) Save(path string) error {
	v := viper.New()
	for key, value := range c.keys() {
		v.Set(key, value)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) keys() map[string]any {
	return map[string]any{
		"window_width":  c.WindowWidth,
		"window_height": c.WindowHeight,
		"title":         c.Title,
		"target_fps":    c.TargetFPS,
		"enable_vsync":  c.EnableVSync,

		"audio.dir":         c.Audio.Dir,
		"audio.data_dir":    c.Audio.DataDir,
		"audio.tuner_file":  c.Audio.TunerFile,
		"audio.sample_rate": c.Audio.SampleRate,
		"audio.bgm_volume":  c.Audio.BGMVolume,
		"audio.bgs_volume":  c.Audio.BGSVolume,
		"audio.me_volume":   c.Audio.MEVolume,
		"audio.se_volume":   c.Audio.SEVolume,
		"audio.title_bgm":   c.Audio.TitleBGM,
		"audio.test_bgs":    c.Audio.TestBGS,
		"audio.test_me":     c.Audio.TestME,
		"audio.test_se":     c.Audio.TestSE,
	}
}
