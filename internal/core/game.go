package core

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sound-tuner/internal/audio"
	"sound-tuner/internal/audio/backend"
	"sound-tuner/internal/config"
	"sound-tuner/internal/render"
	"sound-tuner/internal/session"
)

// Game представляет полную игровую структуру
type Game struct {
	config   *config.Config
	backend  audio.Backend
	session  *session.Session
	renderer *render.Renderer

	isRunning bool
}

// NewGame создает новый экземпляр игры
func NewGame(cfg *config.Config) (*Game, error) {
	// Аудио контекст живет весь процесс, сессии его переиспользуют
	be := backend.NewEbitenBackend(cfg.Audio.Dir, cfg.Audio.SampleRate)

	sess, err := session.New(cfg, be)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	game := &Game{
		config:    cfg,
		backend:   be,
		session:   sess,
		renderer:  render.NewRenderer(cfg),
		isRunning: false,
	}
	return game, nil
}

// Update обрабатывает ввод
func (g *Game) Update() error {
	a := g.session.Audio
	cfg := g.config.Audio

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		return g.newSession()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		if a.IsMuted() {
			a.Unmute()
		} else {
			a.Mute()
		}
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		_ = a.PlayBgs(audio.NewSound(cfg.TestBGS), 0)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		_ = a.PlayMe(audio.NewSound(cfg.TestME))
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		_ = a.PlaySe(audio.NewSound(cfg.TestSE))
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		_ = a.PlayStaticSe(audio.NewSound(cfg.TestSE))
	}
	// Ошибки воспроизведения уже записаны в лог менеджером
	return nil
}

// Draw отрисовывает состояние звука
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.session.Status())
}

// Layout определяет размер экрана
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.WindowWidth, g.config.WindowHeight
}

// Run запускает основной цикл игры
func (g *Game) Run() error {
	g.isRunning = true

	// Инициализируем Ebiten
	ebiten.SetWindowSize(g.config.WindowWidth, g.config.WindowHeight)
	ebiten.SetWindowTitle(g.config.Title)
	ebiten.SetTPS(g.config.TargetFPS)
	ebiten.SetVsyncEnabled(g.config.EnableVSync)

	g.playTitleBgm()

	// Запускаем игру
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop error: %v", err)
	}

	return nil
}

// Stop останавливает игру. Повторный вызов ничего не делает.
func (g *Game) Stop() {
	if !g.isRunning {
		return
	}
	g.isRunning = false
	if err := g.session.Close(); err != nil {
		log.Printf("Ошибка остановки звуков: %v", err)
	}
}

// newSession пересоздает игровые объекты, таблица настроек читается заново
func (g *Game) newSession() error {
	if err := g.session.Close(); err != nil {
		log.Printf("Ошибка остановки звуков: %v", err)
	}
	sess, err := session.New(g.config, g.backend)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	g.session = sess
	g.playTitleBgm()
	return nil
}

func (g *Game) playTitleBgm() {
	if g.config.Audio.TitleBGM == "" {
		return
	}
	_ = g.session.Audio.PlayBgm(audio.NewSound(g.config.Audio.TitleBGM), 0)
}
