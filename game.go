package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/ledgehop/common"
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/ecs/entity"
	"github.com/milk9111/ledgehop/ecs/system"
	"github.com/milk9111/ledgehop/levels"
	"github.com/milk9111/ledgehop/movement"
	"github.com/milk9111/ledgehop/physics"
	"github.com/milk9111/ledgehop/prefabs"
	"github.com/milk9111/ledgehop/save"
	"github.com/milk9111/ledgehop/sound"
	"github.com/milk9111/ledgehop/ui"
)

const frameDT = 1.0 / 60

type Options struct {
	Level   string
	Backend string
	Debug   bool
	Watch   bool
}

type Game struct {
	opts Options
	spec prefabs.GameSpec

	world     *ecs.World
	phys      physics.World
	level     *levels.Level
	levelName string
	fixed     *ecs.Scheduler
	frame     *ecs.Scheduler
	input     *system.InputSystem
	render    *system.RenderSystem
	steps     *movement.FixedStep

	store   *save.Store
	sound   *sound.Manager
	ui      *ui.Manager
	watcher *prefabs.Watcher

	frames int
	quit   bool
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	if opts.Level == "" {
		opts.Level = spec.Level
	}
	if opts.Backend == "" {
		opts.Backend = spec.Backend
	}

	g := &Game{
		opts:   opts,
		spec:   spec,
		input:  system.NewInputSystem(),
		render: system.NewRenderSystem(),
		steps:  movement.NewFixedStep(spec.FixedStep, spec.MaxSteps),
	}

	g.store, err = save.OpenDisk(spec.AppName, ui.MusicKey, ui.SoundKey)
	if err != nil {
		log.Printf("save: %v; settings will not persist", err)
		if g.store, err = save.Open(save.NewMemory(), ui.MusicKey, ui.SoundKey); err != nil {
			return nil, err
		}
	}

	g.sound = sound.NewManager(sound.NewEbitenBank(audio.NewContext(int(sound.SampleRate))))

	uiCfg, err := prefabs.LoadUISpec()
	if err != nil {
		return nil, err
	}
	g.ui, err = ui.NewManager(uiCfg, g.store, g.sound)
	if err != nil {
		return nil, err
	}
	g.ui.BuildMenus(ui.Actions{
		Play:    func() { g.showScreen(ui.Gameplay) },
		Restart: g.restart,
		Quit:    func() { g.quit = true },
	})
	g.ui.OnRootBack = func(cur ui.ScreenType) {
		switch cur {
		case ui.Gameplay:
			g.showScreen(ui.Pause)
		case ui.MainMenu:
			g.showScreen(ui.Quit)
		}
	}
	g.ui.ApplySavedSettings()

	if err := g.loadLevel(opts.Level); err != nil {
		return nil, err
	}

	if opts.Watch {
		g.watcher, err = prefabs.NewWatcher(prefabs.Dir, "levels")
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		}
	}

	if _, ok := g.ui.Screen(ui.MainMenu); ok {
		g.showScreen(ui.MainMenu)
	} else {
		g.showScreen(ui.Gameplay)
	}
	return g, nil
}

// loadLevel replaces the world, physics backend and schedulers with a fresh
// copy of the named level.
func (g *Game) loadLevel(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	camCfg, err := prefabs.LoadCameraSpec()
	if err != nil {
		return err
	}
	parallaxCfg, err := prefabs.LoadParallaxSpec()
	if err != nil {
		return err
	}

	width, height := lvl.Size()
	phys, err := physics.NewWorld(g.opts.Backend, width, height)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	if lvl.Music == "" {
		lvl.Music = g.spec.Music
	}
	if err := entity.LoadLevelToWorld(w, lvl, phys); err != nil {
		return err
	}
	spawn := lvl.Spawn()
	if _, err := entity.NewPlayerAt(w, playerSpec, phys, spawn); err != nil {
		return err
	}
	if _, err := entity.NewCameraAt(w, camCfg, "player", spawn); err != nil {
		return err
	}
	if _, err := entity.NewParallax(w, parallaxCfg); err != nil {
		return err
	}

	step := g.spec.FixedStep
	g.world = w
	g.phys = phys
	g.level = lvl
	g.levelName = name
	g.fixed = ecs.NewScheduler(
		system.NewPlayerControllerSystem(phys, step),
		system.NewPhysicsSystem(phys, step),
		system.NewRespawnSystem(phys),
		system.NewGoalSystem(),
	)
	g.frame = ecs.NewScheduler(
		system.NewCameraSystem(frameDT),
		system.NewParallaxSystem(frameDT),
		system.NewAudioSystem(g.sound),
		system.NewMusicSystem(g.sound),
	)
	g.steps = movement.NewFixedStep(step, g.spec.MaxSteps)
	log.Printf("level: loaded %s (%dx%d, %s)", lvl.Name, lvl.Width, lvl.Height, g.opts.Backend)
	return nil
}

func (g *Game) restart() {
	if err := g.loadLevel(g.levelName); err != nil {
		log.Printf("level: restart %s: %v", g.levelName, err)
		return
	}
	g.showScreen(ui.Gameplay)
}

func (g *Game) showScreen(t ui.ScreenType) {
	if err := g.ui.TransitionTo(t); err != nil {
		log.Printf("ui: %v", err)
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.pollReload()

	if system.BackPressed() {
		g.ui.Back()
	}
	g.ui.Update(frameDT)

	if !g.ui.Blocking() {
		g.input.Update(g.world)
		for n := g.steps.Advance(frameDT); n > 0; n-- {
			g.fixed.Update(g.world)
		}
	}
	g.frame.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventLevelCompleted:
			g.showScreen(ui.Completed)
		case ecs.EventRespawned:
			log.Printf("player: respawned at %v", evt.Data)
		}
	}
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Poll() {
		if err := g.reload(name); err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			continue
		}
		log.Printf("prefabs: reloaded %s", name)
	}
}

func (g *Game) reload(name string) error {
	switch name {
	case prefabs.PlayerFile:
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			return err
		}
		var rerr error
		ecs.ForEach(g.world, component.PlayerComponent, func(_ ecs.Entity, p *component.Player) {
			if err := p.Controller.Reconfigure(spec.Movement); err != nil {
				rerr = err
			}
		})
		return rerr
	case prefabs.CameraFile:
		cfg, err := prefabs.LoadCameraSpec()
		if err != nil {
			return err
		}
		var rerr error
		ecs.ForEach(g.world, component.CameraComponent, func(_ ecs.Entity, c *component.Camera) {
			if err := c.Follower.Reconfigure(cfg); err != nil {
				rerr = err
			}
		})
		return rerr
	case prefabs.ParallaxFile, strings.TrimSuffix(filepath.Base(g.levelName), ".yaml") + ".yaml":
		return g.loadLevel(g.levelName)
	default:
		return fmt.Errorf("restart to apply")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.opts.Debug {
		if space, ok := g.phys.(*physics.Space); ok {
			system.DrawPhysicsDebug(space.CP(), g.world, screen)
		}
		system.DrawPlayerStateDebug(g.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()), common.BaseWidth-90, 10)
	}
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
