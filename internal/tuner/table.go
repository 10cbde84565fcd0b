package tuner

import (
	"sort"

	"sound-tuner/internal/audio"
)

// Setting настройка одного клипа. nil означает, что параметр не задан.
type Setting struct {
	Volume *float64 // относительная громкость, %
	Pitch  *float64 // высота тона, заменяет исходную
	Pan    *float64 // панорама, заменяет исходную
}

// Table таблица настроек категория -> имя клипа -> настройка.
// После создания не изменяется.
type Table struct {
	data map[audio.Category]map[string]Setting
}

// NewTable строит таблицу из документа. Записи применяются по порядку,
// повтор пары категория+имя перезаписывает предыдущую.
// Диапазоны значений не проверяются, они ограничиваются при применении.
func NewTable(doc Document) *Table {
	t := &Table{data: make(map[audio.Category]map[string]Setting)}
	for _, rec := range doc.Settings {
		byName, ok := t.data[rec.Type]
		if !ok {
			byName = make(map[string]Setting)
			t.data[rec.Type] = byName
		}
		byName[rec.Name] = Setting{
			Volume: rec.Volume,
			Pitch:  rec.Pitch,
			Pan:    rec.Pan,
		}
	}
	return t
}

// Lookup возвращает настройку клипа. Для пустого имени настройки нет никогда.
func (t *Table) Lookup(cat audio.Category, name string) (Setting, bool) {
	if t == nil || name == "" {
		return Setting{}, false
	}
	s, ok := t.data[cat][name]
	return s, ok
}

// Len возвращает число настроенных клипов
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, byName := range t.data {
		n += len(byName)
	}
	return n
}

// Categories возвращает категории, для которых есть настройки
func (t *Table) Categories() []audio.Category {
	if t == nil {
		return nil
	}
	cats := make([]audio.Category, 0, len(t.data))
	for cat := range t.data {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
