package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"sound-tuner/internal/config"
)

const lineHeight = 16

// Renderer отвечает за отрисовку отладочного экрана
type Renderer struct {
	config         *config.Config
	backgroundTile *ebiten.Image
}

// NewRenderer создает новый рендерер
func NewRenderer(cfg *config.Config) *Renderer {
	// Базовый тайл для фона
	backgroundImage := ebiten.NewImage(64, 64)
	backgroundImage.Fill(color.RGBA{R: 30, G: 40, B: 60, A: 255})

	return &Renderer{
		config:         cfg,
		backgroundTile: backgroundImage,
	}
}

// Render рисует фон, строки состояния и подсказку по клавишам
func (r *Renderer) Render(screen *ebiten.Image, status []string) {
	screen.Fill(color.RGBA{R: 50, G: 50, B: 50, A: 255})
	r.renderBackground(screen)

	y := 10
	for _, line := range status {
		ebitenutil.DebugPrintAt(screen, line, 10, y)
		y += lineHeight
	}

	help := "1: BGS  2: ME  3: SE  4: static SE  M: mute  F5: new session"
	ebitenutil.DebugPrintAt(screen, help, 10, r.config.WindowHeight-lineHeight-10)
}

// renderBackground заполняет экран тайлами фона
func (r *Renderer) renderBackground(screen *ebiten.Image) {
	bounds := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	for x := 0; x < bounds.Dx(); x += 64 {
		for y := 0; y < bounds.Dy(); y += 64 {
			if (x/64+y/64)%2 == 0 {
				continue
			}
			op.GeoM.Reset()
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(r.backgroundTile, op)
		}
	}
}
