// Package session создает игровые объекты одной игровой сессии.
package session

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"sound-tuner/internal/audio"
	"sound-tuner/internal/config"
	"sound-tuner/internal/tuner"
)

// Session набор объектов, которые пересоздаются для каждой новой игры
type Session struct {
	ID    uuid.UUID
	Tuner *tuner.Tuner
	Audio *audio.Manager
}

// New создает сессию: читает файл настроек звуков, строит таблицу
// и подключает тюнер к аудио менеджеру.
func New(cfg *config.Config, backend audio.Backend) (*Session, error) {
	table, err := LoadTable(cfg.Audio.TunerPath())
	if err != nil {
		return nil, err
	}

	t := tuner.New(table)
	mgr := audio.NewManager(backend, t)
	mgr.SetMasterVolume(audio.BGM, cfg.Audio.BGMVolume)
	mgr.SetMasterVolume(audio.BGS, cfg.Audio.BGSVolume)
	mgr.SetMasterVolume(audio.ME, cfg.Audio.MEVolume)
	mgr.SetMasterVolume(audio.SE, cfg.Audio.SEVolume)

	s := &Session{
		ID:    uuid.New(),
		Tuner: t,
		Audio: mgr,
	}
	log.Printf("Новая сессия %s: настроено звуков %d %v", s.ID, table.Len(), table.Categories())
	return s, nil
}

// LoadTable читает таблицу настроек. Если файла нет, возвращается пустая
// таблица: без настроек звуки играют как есть.
func LoadTable(path string) (*tuner.Table, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("Файл настроек звуков %s не найден, звуки не корректируются", path)
		return tuner.NewTable(tuner.Document{}), nil
	}
	doc, err := tuner.LoadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sound tuner: %w", err)
	}
	return tuner.NewTable(doc), nil
}

// Close останавливает звуки сессии
func (s *Session) Close() error {
	return s.Audio.StopAll()
}

// Status возвращает строки состояния для отладочного экрана:
// сессия и последний звук каждой категории после корректировки
func (s *Session) Status() []string {
	lines := []string{
		fmt.Sprintf("Сессия: %s", s.ID),
		fmt.Sprintf("Настроено звуков: %d", s.Tuner.Table().Len()),
	}
	if s.Audio.IsMuted() {
		lines = append(lines, "Звук выключен")
	}
	for _, cat := range audio.Categories() {
		last, ok := s.Audio.Last(cat)
		if !ok {
			lines = append(lines, fmt.Sprintf("%s: -", cat))
			continue
		}
		mark := ""
		if _, tuned := s.Tuner.Table().Lookup(cat, last.Name); tuned {
			mark = " *"
		}
		lines = append(lines, fmt.Sprintf("%s: %s%s", cat, last.String(), mark))
	}
	return lines
}
