package audio

// PitchRate возвращает частоту, с которой читается клип при высоте тона
// pitch (в процентах): выше тон, быстрее чтение
func PitchRate(sampleRate, pitch int) int {
	if pitch <= 0 {
		return sampleRate
	}
	return sampleRate * pitch / 100
}

// PitchedLength возвращает длину потока в байтах после пересэмплирования,
// выровненную по кадру
func PitchedLength(length int64, pitch int) int64 {
	if pitch <= 0 {
		return length
	}
	return length * 100 / int64(pitch) / BytesPerFrame * BytesPerFrame
}
