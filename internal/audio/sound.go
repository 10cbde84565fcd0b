package audio

import "fmt"

// Category определяет роль звука в игре
type Category string

const (
	// BGM фоновая музыка
	BGM Category = "bgm"
	// BGS фоновые звуки (дождь, ветер, город)
	BGS Category = "bgs"
	// ME короткие музыкальные фанфары
	ME Category = "me"
	// SE звуковые эффекты, в том числе фиксированные
	SE Category = "se"
)

// Categories возвращает все категории в порядке отображения
func Categories() []Category {
	return []Category{BGM, BGS, ME, SE}
}

// Sound описывает один запрос на воспроизведение.
// Volume 0..100, Pitch в процентах (100 = оригинал), Pan -100..100.
type Sound struct {
	Name   string
	Volume int
	Pitch  int
	Pan    int
}

// NewSound создает звук с параметрами по умолчанию
func NewSound(name string) *Sound {
	return &Sound{
		Name:   name,
		Volume: 90,
		Pitch:  100,
		Pan:    0,
	}
}

func (s *Sound) String() string {
	return fmt.Sprintf("%s (volume=%d pitch=%d pan=%d)", s.Name, s.Volume, s.Pitch, s.Pan)
}

// Adjuster корректирует параметры звука перед воспроизведением.
// Реализация не должна изменять переданный объект: если изменений нет,
// возвращается тот же указатель, иначе новая копия. Manager считает
// результат nil тем же, что и возврат s.
type Adjuster interface {
	Adjust(cat Category, s *Sound) *Sound
}

// AdjusterFunc позволяет использовать функцию как Adjuster
type AdjusterFunc func(cat Category, s *Sound) *Sound

// Adjust вызывает f(cat, s)
func (f AdjusterFunc) Adjust(cat Category, s *Sound) *Sound {
	return f(cat, s)
}
