package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/reversi/internal/board"
	"github.com/hailam/reversi/internal/engine"
	"github.com/hailam/reversi/internal/game"
	"github.com/hailam/reversi/internal/storage"
)

// UI Constants
const (
	BoardSize    = board.Size * SquareSize
	SquareSize   = 80
	ScreenWidth  = BoardSize
	ScreenHeight = BoardSize

	// AIDelay keeps the human's move on screen before the computer replies.
	AIDelay = time.Second

	// recentGames is how many past results the result screen lists.
	recentGames = 5
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by widgets and overlays.
var UIScale float64 = 1.0

// Options configures a new window game.
type Options struct {
	Depth   int  // search depth; negative uses the stored difficulty
	Mute    bool // start with sound disabled
	NoStore bool // do not open the preferences database
}

// Game implements ebiten.Game interface.
type Game struct {
	controller *game.Controller
	engine     *engine.Engine

	// Components
	renderer *Renderer
	input    *InputHandler
	feedback *FeedbackManager
	results  *ResultScreen

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences

	// Timing
	aiReadyAt time.Time
	startedAt time.Time

	hover board.Square
	quit  bool

	// HiDPI scaling
	scale float64
}

// NewGame creates a new Reversi game.
func NewGame(opts Options) *Game {
	g := &Game{
		engine:    engine.NewEngine(),
		renderer:  NewRenderer(BoardSize, SquareSize),
		input:     NewInputHandler(),
		feedback:  NewFeedbackManager(),
		hover:     board.NoSquare,
		startedAt: time.Now(),
		scale:     1.0,
	}
	g.results = NewResultScreen(func() { g.quit = true }, g.NewGameAction)

	if !opts.NoStore {
		var err error
		g.storage, err = storage.NewStorage()
		if err != nil {
			log.Printf("Warning: Failed to initialize storage: %v", err)
		}
	}

	g.loadPreferences()
	if opts.Depth >= 0 {
		g.engine.SetDepth(opts.Depth)
	}
	if opts.Mute {
		g.feedback.Audio().SetEnabled(false)
	}

	g.engine.OnInfo = func(info engine.SearchInfo) {
		log.Printf("[AI] depth %d move %s score %d nodes %d time %v",
			info.Depth, info.Move, info.Score, info.Nodes, info.Time)
	}

	g.controller = game.NewController(g.engine)
	g.controller.OnMove(func(ev game.MoveEvent) {
		g.feedback.OnMove(ev)
		g.aiReadyAt = time.Now().Add(AIDelay)
	})
	g.controller.OnPass(g.feedback.OnPass)
	g.controller.OnGameOver(g.gameOver)

	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
	} else {
		var err error
		g.prefs, err = g.storage.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
			g.prefs = storage.DefaultPreferences()
		}
	}

	g.engine.SetDifficulty(engineDifficulty(g.prefs.Difficulty))
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.SoundEnabled = g.feedback.Audio().IsEnabled()
	g.prefs.LastPlayed = time.Now()
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// engineDifficulty converts the stored difficulty to the engine preset.
func engineDifficulty(d storage.Difficulty) engine.Difficulty {
	switch d {
	case storage.DifficultyEasy:
		return engine.Easy
	case storage.DifficultyHard:
		return engine.Hard
	default:
		return engine.Medium
	}
}

// gameOver records the finished game and shows the result screen.
func (g *Game) gameOver(r game.Result) {
	g.feedback.OnGameOver(r)

	var stats *storage.GameStats
	var recent []storage.GameResult
	if g.storage != nil {
		_, err := g.storage.RecordGame(storage.GameResult{
			Black:      r.Black,
			White:      r.White,
			Difficulty: g.prefs.Difficulty,
			Duration:   time.Since(g.startedAt),
		})
		if err != nil {
			log.Printf("Warning: Failed to record game: %v", err)
		} else if stats, err = g.storage.LoadStats(); err != nil {
			log.Printf("Warning: Failed to load stats: %v", err)
			stats = nil
		}
		if recent, err = g.storage.RecentResults(recentGames); err != nil {
			log.Printf("Warning: Failed to load recent results: %v", err)
		}
	}

	g.results.Show(r, stats, recent)
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.input.Update()
	g.feedback.Update()

	// Result screen blocks board input
	if g.results.IsVisible() {
		g.results.Update(g.input)
		g.updateCursor()
		if g.quit {
			return ebiten.Termination
		}
		return nil
	}

	g.handleKeys()
	g.handleBoardInput()

	if !time.Now().Before(g.aiReadyAt) {
		g.controller.Step()
	}

	g.updateCursor()
	return nil
}

// handleKeys processes keyboard shortcuts.
func (g *Game) handleKeys() {
	switch {
	case IsKeyJustPressed(ebiten.KeyN):
		g.NewGameAction()
	case IsKeyJustPressed(ebiten.KeyM):
		g.feedback.Audio().SetEnabled(!g.feedback.Audio().IsEnabled())
		g.savePreferences()
	case IsKeyJustPressed(ebiten.Key1):
		g.SetDifficulty(storage.DifficultyEasy)
	case IsKeyJustPressed(ebiten.Key2):
		g.SetDifficulty(storage.DifficultyMedium)
	case IsKeyJustPressed(ebiten.Key3):
		g.SetDifficulty(storage.DifficultyHard)
	}
}

// handleBoardInput tracks the hovered square and forwards clicks to the
// controller. Clicks outside Black's turn are ignored by the controller.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()
	g.hover = g.renderer.ScreenToSquare(mx, my)

	if !g.input.IsLeftJustPressed() || !g.hover.Valid() {
		return
	}
	g.controller.Click(g.hover)
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	anyHovered := g.results.AnyButtonHovered()
	if !g.results.IsVisible() && g.controller.State() == game.BlackToMove && g.hover.Valid() {
		b := g.controller.Board()
		anyHovered = b.IsValidMove(g.hover, board.Black)
	}

	if anyHovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)
	g.renderer.DrawLastMove(screen, g.controller.LastMove())

	b := g.controller.Board()
	if g.controller.State() == game.BlackToMove {
		g.renderer.DrawLegalMoves(screen, b.ValidMoves(board.Black))
		if g.hover.Valid() {
			g.renderer.DrawFlipPreview(screen, b.Flips(g.hover, board.Black))
		}
	}

	g.renderer.DrawDiscs(screen, b, g.feedback.Animations())
	g.feedback.Draw(screen)
	g.results.Draw(screen, g.renderer.Theme())
}

// Layout returns the game's screen dimensions.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 2.0 on Retina, 1.0 on standard displays
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}

	UIScale = g.scale

	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// NewGameAction starts a new game.
func (g *Game) NewGameAction() {
	g.controller.Reset()
	g.results.Hide()
	g.aiReadyAt = time.Time{}
	g.startedAt = time.Now()
	log.Printf("[GAME] New game at depth %d", g.engine.Depth())
}

// SetDifficulty changes the engine strength and stores it.
func (g *Game) SetDifficulty(d storage.Difficulty) {
	g.prefs.Difficulty = d
	g.engine.SetDifficulty(engineDifficulty(d))
	g.feedback.toasts.Show(fmt.Sprintf("Difficulty: %s", d), ToastInfo, 1500*time.Millisecond)
	g.savePreferences()
}

// Controller returns the game controller.
func (g *Game) Controller() *game.Controller {
	return g.controller
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.savePreferences()
	if g.storage != nil {
		g.storage.Close()
	}
}
