package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"CitadelCommand/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorGround      = color.RGBA{30, 32, 48, 255}
	colorStation     = color.RGBA{116, 199, 236, 255}
	colorDeadStation = color.RGBA{69, 71, 90, 255}
	colorProjectile  = color.RGBA{243, 139, 168, 255}
	colorInterceptor = color.RGBA{249, 226, 175, 255}
	colorTrail       = color.RGBA{88, 91, 112, 255}
	colorText        = color.RGBA{205, 214, 244, 255}
	colorAmmo        = color.RGBA{166, 227, 161, 255}
)

// App is a local render collaborator: it drives the session from ebiten's
// display-refresh Update callback instead of the hub loop, reads a
// snapshot per frame, and forwards clicks into the fire entry point.
type App struct {
	session *game.Session
}

func (a *App) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if a.session.Snapshot().Phase == game.PhasePlaying {
			a.session.Fire(game.Vec2{X: float64(x), Y: float64(y)})
		} else {
			a.session.StartOrReset(time.Now())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.session.StartOrReset(time.Now())
	}
	a.session.Tick(time.Now())
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	snap := a.session.Snapshot()
	face := basicfont.Face7x13

	vector.DrawFilledRect(screen, 0, game.GroundY, game.PlayfieldW, game.GroundBandH, colorGround, false)

	for _, c := range snap.Structures {
		clr := colorStation
		if !c.Alive {
			clr = colorDeadStation
		}
		vector.DrawFilledRect(screen, float32(c.X)-13, game.GroundY-12, 26, 12, clr, false)
	}
	for _, b := range snap.Batteries {
		clr := colorStation
		if !b.Alive {
			clr = colorDeadStation
		}
		vector.DrawFilledRect(screen, float32(b.X)-18, game.GroundY-12, 36, 12, clr, false)
		text.Draw(screen, fmt.Sprintf("%d", b.Ammo), face, int(b.X)-6, int(game.GroundY)+14, colorAmmo)
	}

	for _, m := range snap.Interceptors {
		vector.StrokeLine(screen, float32(m.OX), float32(m.OY), float32(m.X), float32(m.Y), 1, colorTrail, true)
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), 2.5, colorInterceptor, true)
	}
	for _, p := range snap.Projectiles {
		tailX := p.X - math.Cos(p.Heading)*10
		tailY := p.Y - math.Sin(p.Heading)*10
		vector.StrokeLine(screen, float32(tailX), float32(tailY), float32(p.X), float32(p.Y), 1.5, colorProjectile, true)
	}
	for _, e := range snap.Explosions {
		clr := colorInterceptor
		if !e.Friendly {
			clr = colorProjectile
		}
		vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(math.Max(e.Radius, 0.5)), 1.5, clr, true)
	}

	text.Draw(screen, fmt.Sprintf("score %d", snap.Score), face, 10, 20, colorText)
	switch snap.Phase {
	case game.PhaseStart:
		text.Draw(screen, "click to start", face, game.PlayfieldW/2-48, game.PlayfieldH/2, colorText)
	case game.PhaseWin:
		text.Draw(screen, "you win - click to play again", face, game.PlayfieldW/2-100, game.PlayfieldH/2, colorText)
	case game.PhaseGameOver:
		text.Draw(screen, "game over - click to play again", face, game.PlayfieldW/2-108, game.PlayfieldH/2, colorText)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.PlayfieldW, game.PlayfieldH
}

func main() {
	seed := flag.Int64("seed", 0, "RNG seed (0 = wall clock)")
	flag.Parse()

	app := &App{
		session: game.NewSession("local", game.DefaultTuning(), *seed),
	}
	ebiten.SetWindowSize(game.PlayfieldW, game.PlayfieldH)
	ebiten.SetWindowTitle("Citadel Command")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
