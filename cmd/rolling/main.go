package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rolling/audio"
	"github.com/lixenwraith/rolling/core"
	"github.com/lixenwraith/rolling/engine"
	"github.com/lixenwraith/rolling/input"
	"github.com/lixenwraith/rolling/parameter"
	"github.com/lixenwraith/rolling/physics"
	"github.com/lixenwraith/rolling/render"
	"github.com/lixenwraith/rolling/render/renderers"
	"github.com/lixenwraith/rolling/scene"
	"github.com/lixenwraith/rolling/service"
	"github.com/lixenwraith/rolling/system"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	logFile := setupLogging(parameter.DebugLogging)
	if logFile != nil {
		defer logFile.Close()
	}

	tuning := parameter.DefaultTuning()

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	announce := newStdoutAnnouncer()
	core.SetCrashCleanup(crashCleanup(screen, announce, logFile))
	screen.SetTitle(parameter.WindowTitle)
	screen.SetStyle(render.StyleDefault)
	screen.HideCursor()

	err = run(screen, tuning, announce)

	// Normal exit terminal cleanup, then anything held back from stdout
	screen.Fini()
	if ferr := announce.Flush(); ferr != nil {
		log.Printf("announce: flush failed: %v", ferr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "rolling: %v\n", err)
		os.Exit(1)
	}
}

// crashCleanup restores the terminal and releases what deferred calls would have, since the crash handler exits directly
func crashCleanup(screen tcell.Screen, announce *announcer, logFile *os.File) func() {
	return func() {
		screen.Fini()
		if err := announce.Flush(); err != nil {
			log.Printf("announce: flush failed: %v", err)
		}
		if logFile != nil {
			logFile.Sync()
			logFile.Close()
		}
	}
}

// run wires the world and drives the frame loop until quit
func run(screen tcell.Screen, tuning parameter.Tuning, announce *announcer) error {
	world := engine.NewWorld()
	world.Resource.Tuning = &engine.TuningResource{Tuning: tuning}
	world.Resource.Input.Keys = input.NewKeyTracker(tuning.Input.KeyHold())

	// Services own the physics space and the audio device; audio failures degrade to silence
	hub := service.NewHub()
	physSvc := physics.NewService()
	if err := hub.Register(physSvc); err != nil {
		return err
	}
	if err := hub.Register(audio.NewService(parameter.AssetDir)); err != nil {
		return err
	}
	if err := hub.InitAll(tuning); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	hub.ContributeAll(func(r any) {
		if !world.Resource.Publish(r) {
			log.Printf("services: unrouted resource %T", r)
		}
	})
	phys := physSvc.World()

	if _, err := scene.Setup(world, phys, tuning); err != nil {
		return fmt.Errorf("scene setup: %w", err)
	}

	clock := engine.NewPausableClock(nil)
	sched := engine.NewScheduler(world, clock)
	system.RegisterAll(world, sched, announce)

	orchestrator := render.NewRenderOrchestrator(screen)
	renderers.RegisterAll(orchestrator, world, parameter.ShowContacts)

	// Terminal events arrive on their own goroutine and are drained at the start of each frame
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { screen.ChannelEvents(events, quit) })

	keyTable := input.DefaultKeyTable()
	inputRes := world.Resource.Input

	poll := func() {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					inputRes.PushIntent(input.IntentQuit)
					return
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if intent := keyTable.Classify(ev); intent != input.IntentNone {
						inputRes.PushIntent(intent)
					} else {
						inputRes.Keys.HandleKey(ev)
					}
				case *tcell.EventResize:
					orchestrator.Resize()
				}
			default:
				return
			}
		}
	}

	draw := func() {
		w, h := screen.Size()
		orchestrator.RenderFrame(render.NewRenderContext(world, w, h, sched.IsPaused()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	log.Printf("game: started, %d bodies", phys.Count())
	err := sched.Run(ctx, parameter.FrameUpdateInterval, engine.FrameHooks{Poll: poll, Render: draw})
	if err != nil && ctx.Err() != nil {
		// Terminated by signal
		return nil
	}
	return err
}
