// Package tuner применяет к звукам относительную громкость, высоту тона
// и панораму, заданные для каждого клипа в отдельном файле настроек.
package tuner

import (
	"math"

	"sound-tuner/internal/audio"
)

// Допустимые диапазоны параметров движка
const (
	MinVolume = 0
	MaxVolume = 100
	MinPitch  = 50
	MaxPitch  = 150
	MinPan    = -100
	MaxPan    = 100
)

// Tuner корректирует параметры звука по таблице настроек
type Tuner struct {
	table *Table
}

var _ audio.Adjuster = (*Tuner)(nil)

// New создает тюнер поверх готовой таблицы
func New(table *Table) *Tuner {
	return &Tuner{table: table}
}

// Table возвращает таблицу настроек
func (t *Tuner) Table() *Table {
	return t.table
}

// Adjust возвращает s без изменений, если клип не настроен.
// Иначе возвращает копию с новыми параметрами; s не меняется.
func (t *Tuner) Adjust(cat audio.Category, s *audio.Sound) *audio.Sound {
	if s == nil {
		return nil
	}
	setting, ok := t.table.Lookup(cat, s.Name)
	if !ok {
		return s
	}

	out := *s
	if setting.Volume != nil {
		out.Volume = clampFloor(float64(s.Volume)*(*setting.Volume/100), MinVolume, MaxVolume, s.Volume)
	}
	// высота тона и панорама задаются абсолютно, а не множителем
	if setting.Pitch != nil {
		out.Pitch = clampFloor(*setting.Pitch, MinPitch, MaxPitch, s.Pitch)
	}
	if setting.Pan != nil {
		out.Pan = clampFloor(*setting.Pan, MinPan, MaxPan, s.Pan)
	}
	return &out
}

// clampFloor округляет вниз и ограничивает диапазоном [lo, hi].
// Для NaN возвращается fallback.
func clampFloor(v float64, lo, hi, fallback int) int {
	if math.IsNaN(v) {
		return fallback
	}
	return int(math.Max(float64(lo), math.Min(float64(hi), math.Floor(v))))
}
