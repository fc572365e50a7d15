package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/ecs/entity"
	"github.com/milk9111/ledgehop/ecs/system"
	"github.com/milk9111/ledgehop/levels"
	"github.com/milk9111/ledgehop/movement"
	"github.com/milk9111/ledgehop/physics"
	"github.com/milk9111/ledgehop/prefabs"
	"gopkg.in/yaml.v3"
)

const frameDT = 1.0 / 60

// segment holds one input pattern for a number of frames.
type segment struct {
	in     component.Input
	frames int
}

type frameRecord struct {
	Frame    int      `yaml:"frame"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	Mode     string   `yaml:"mode"`
	Grounded bool     `yaml:"grounded"`
	Events   []string `yaml:"events,omitempty"`
}

// parseScript reads "right+jump:10,idle:5,dash:1" style input scripts.
func parseScript(script string) ([]segment, error) {
	var out []segment
	for _, tok := range strings.Split(script, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		actions, count, ok := strings.Cut(tok, ":")
		frames := 1
		if ok {
			n, err := strconv.Atoi(count)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("bad frame count in %q", tok)
			}
			frames = n
		}
		var seg segment
		seg.frames = frames
		for _, a := range strings.Split(actions, "+") {
			switch strings.ToLower(strings.TrimSpace(a)) {
			case "idle":
			case "left":
				seg.in.MoveX -= 1
			case "right":
				seg.in.MoveX += 1
			case "up":
				seg.in.MoveY += 1
			case "down":
				seg.in.MoveY -= 1
			case "jump":
				seg.in.Jump = true
			case "dash":
				seg.in.DashPressed = true
			default:
				return nil, fmt.Errorf("unknown action %q", a)
			}
		}
		out = append(out, seg)
	}
	return out, nil
}

// sampler replays segments frame by frame. Jump presses are reported on the
// first frame the jump button goes down.
type sampler struct {
	segs     []segment
	seg      int
	frame    int
	prevJump bool
}

func (s *sampler) done() bool { return s.seg >= len(s.segs) }

func (s *sampler) next() component.Input {
	if s.done() {
		return component.Input{}
	}
	cur := s.segs[s.seg]
	in := cur.in
	in.JumpPressed = in.Jump && !s.prevJump
	in.DashPressed = cur.in.DashPressed && s.frame == 0
	s.prevJump = in.Jump

	s.frame++
	if s.frame >= cur.frames {
		s.seg++
		s.frame = 0
	}
	return in
}

func main() {
	levelName := flag.String("level", levels.DefaultLevel, "level name in levels/")
	backend := flag.String("backend", physics.BackendChipmunk, "physics backend: chipmunk or resolv")
	script := flag.String("script", "idle:30,right:40,right+jump:20,right:30,dash:1,idle:30", "input script")
	every := flag.Int("every", 10, "record every n frames (events are always recorded)")
	flag.Parse()
	if *every < 1 {
		*every = 1
	}

	segs, err := parseScript(*script)
	if err != nil {
		log.Fatalf("script: %v", err)
	}
	lvl, err := levels.Load(*levelName)
	if err != nil {
		log.Fatal(err)
	}
	gameSpec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}

	width, height := lvl.Size()
	phys, err := physics.NewWorld(*backend, width, height)
	if err != nil {
		log.Fatal(err)
	}
	w := ecs.NewWorld()
	lvl.Music = ""
	if err := entity.LoadLevelToWorld(w, lvl, phys); err != nil {
		log.Fatal(err)
	}
	player, err := entity.NewPlayerAt(w, playerSpec, phys, lvl.Spawn())
	if err != nil {
		log.Fatal(err)
	}

	feed := &sampler{segs: segs}
	input := &system.InputSystem{Sample: feed.next}
	fixed := ecs.NewScheduler(
		system.NewPlayerControllerSystem(phys, gameSpec.FixedStep),
		system.NewPhysicsSystem(phys, gameSpec.FixedStep),
		system.NewRespawnSystem(phys),
		system.NewGoalSystem(),
	)
	steps := movement.NewFixedStep(gameSpec.FixedStep, gameSpec.MaxSteps)

	var trace []frameRecord
	for frame := 0; !feed.done(); frame++ {
		input.Update(w)
		for n := steps.Advance(frameDT); n > 0; n-- {
			fixed.Update(w)
		}

		var names []string
		for _, evt := range w.Events().Drain() {
			name := string(evt.Type)
			if evt.Data != nil {
				name = fmt.Sprintf("%s(%v)", name, evt.Data)
			}
			names = append(names, name)
		}
		if len(names) == 0 && frame%*every != 0 {
			continue
		}
		p, _ := ecs.Get(w, player, component.PlayerComponent)
		t, _ := ecs.Get(w, player, component.TransformComponent)
		st := p.Controller.State()
		trace = append(trace, frameRecord{
			Frame:    frame,
			X:        t.X,
			Y:        t.Y,
			Mode:     st.Mode.String(),
			Grounded: st.Grounded,
			Events:   names,
		})
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(trace); err != nil {
		log.Fatal(err)
	}
	_ = enc.Close()
}
