package audio

import (
	"errors"
	"log"
)

// ErrClipNotFound возвращается, когда файл звука не найден
var ErrClipNotFound = errors.New("audio clip not found")

// Backend выполняет реальное воспроизведение звука
type Backend interface {
	// Play проигрывает звук категории cat с позиции pos (секунды, только BGM/BGS)
	Play(cat Category, s *Sound, pos float64) error
	// PlayStatic проигрывает эффект, который не останавливается StopSe
	PlayStatic(s *Sound) error
	// Stop останавливает все звуки категории (кроме фиксированных эффектов)
	Stop(cat Category) error
	// StopStatic останавливает фиксированные эффекты
	StopStatic() error
	// SetMasterVolume задает общую громкость категории, 0..1
	SetMasterVolume(cat Category, volume float64)
}

// Manager отвечает за аудио в игре
type Manager struct {
	backend  Backend
	adjuster Adjuster

	isMuted bool
	masters map[Category]int
	last    map[Category]Sound
}

// NewManager создает новый аудио менеджер.
// adjuster может быть nil, тогда параметры звуков не меняются.
func NewManager(backend Backend, adjuster Adjuster) *Manager {
	m := &Manager{
		backend:  backend,
		adjuster: adjuster,
		masters:  make(map[Category]int),
		last:     make(map[Category]Sound),
	}
	for _, cat := range Categories() {
		m.masters[cat] = 100
	}
	return m
}

// PlayBgm начинает проигрывание фоновой музыки.
// Пустое имя останавливает текущую музыку.
func (m *Manager) PlayBgm(bgm *Sound, pos float64) error {
	if bgm == nil || bgm.Name == "" {
		return m.StopBgm()
	}
	bgm = m.adjust(BGM, bgm)
	return m.play(BGM, bgm, pos)
}

// PlayBgs начинает проигрывание фоновых звуков
func (m *Manager) PlayBgs(bgs *Sound, pos float64) error {
	if bgs == nil || bgs.Name == "" {
		return m.StopBgs()
	}
	bgs = m.adjust(BGS, bgs)
	return m.play(BGS, bgs, pos)
}

// PlayMe проигрывает музыкальный эффект
func (m *Manager) PlayMe(me *Sound) error {
	if me == nil || me.Name == "" {
		return nil
	}
	me = m.adjust(ME, me)
	return m.play(ME, me, 0)
}

// PlaySe воспроизводит звуковой эффект
func (m *Manager) PlaySe(se *Sound) error {
	if se == nil || se.Name == "" {
		return nil
	}
	se = m.adjust(SE, se)
	return m.play(SE, se, 0)
}

// PlayStaticSe воспроизводит фиксированный звуковой эффект.
// Настройки берутся из категории SE.
func (m *Manager) PlayStaticSe(se *Sound) error {
	if se == nil || se.Name == "" {
		return nil
	}
	se = m.adjust(SE, se)
	m.last[SE] = *se
	if err := m.backend.PlayStatic(se); err != nil {
		log.Printf("Ошибка воспроизведения фиксированного эффекта %s: %v", se.Name, err)
		return err
	}
	return nil
}

// adjust применяет корректировку, если она задана.
// nil от корректора означает "без изменений".
func (m *Manager) adjust(cat Category, s *Sound) *Sound {
	if m.adjuster == nil {
		return s
	}
	if out := m.adjuster.Adjust(cat, s); out != nil {
		return out
	}
	return s
}

// play передает звук бэкенду и в режиме без звука: общая громкость
// категорий там уже 0, а смена BGM/BGS должна сработать
func (m *Manager) play(cat Category, s *Sound, pos float64) error {
	m.last[cat] = *s
	log.Printf("Проигрывание %s: %s", cat, s)
	if err := m.backend.Play(cat, s, pos); err != nil {
		log.Printf("Ошибка воспроизведения %s %s: %v", cat, s.Name, err)
		return err
	}
	return nil
}

// StopBgm останавливает фоновую музыку
func (m *Manager) StopBgm() error {
	delete(m.last, BGM)
	return m.backend.Stop(BGM)
}

// StopBgs останавливает фоновые звуки
func (m *Manager) StopBgs() error {
	delete(m.last, BGS)
	return m.backend.Stop(BGS)
}

// StopMe останавливает музыкальный эффект
func (m *Manager) StopMe() error {
	return m.backend.Stop(ME)
}

// StopSe останавливает звуковые эффекты, фиксированные продолжают звучать
func (m *Manager) StopSe() error {
	return m.backend.Stop(SE)
}

// StopAll останавливает все звуки
func (m *Manager) StopAll() error {
	var errs []error
	for _, cat := range Categories() {
		errs = append(errs, m.backend.Stop(cat))
	}
	errs = append(errs, m.backend.StopStatic())
	clear(m.last)
	return errors.Join(errs...)
}

// SetMasterVolume устанавливает общую громкость категории, 0..100
func (m *Manager) SetMasterVolume(cat Category, volume int) {
	volume = min(max(volume, 0), 100)
	m.masters[cat] = volume
	if !m.isMuted {
		m.backend.SetMasterVolume(cat, float64(volume)/100)
	}
}

// MasterVolume возвращает общую громкость категории
func (m *Manager) MasterVolume(cat Category) int {
	return m.masters[cat]
}

// Last возвращает последний звук категории после корректировки
func (m *Manager) Last(cat Category) (Sound, bool) {
	s, ok := m.last[cat]
	return s, ok
}

// Mute выключает звук
func (m *Manager) Mute() {
	m.isMuted = true
	for _, cat := range Categories() {
		m.backend.SetMasterVolume(cat, 0)
	}
}

// Unmute включает звук
func (m *Manager) Unmute() {
	m.isMuted = false
	for cat, v := range m.masters {
		m.backend.SetMasterVolume(cat, float64(v)/100)
	}
}

// IsMuted возвращает состояние звука
func (m *Manager) IsMuted() bool {
	return m.isMuted
}
