// Package game orchestrates Well Hopper sessions: it owns the current
// level and body, feeds inputs into the physics step, and turns step
// outcomes into lives, score, and level transitions. Three session
// modes share the same core: campaign, daily challenge, and practice.
package game

import (
	"fmt"
	"time"

	"github.com/wellhopper/wellhopper/internal/config"
	"github.com/wellhopper/wellhopper/internal/core"
	"github.com/wellhopper/wellhopper/internal/levelgen"
	"github.com/wellhopper/wellhopper/internal/physics"
	"github.com/wellhopper/wellhopper/internal/registry"
)

// Mode selects the session bookkeeping around the shared core.
type Mode int

const (
	ModeCampaign Mode = iota // Start at level 1, limited lives
	ModeDaily                // One date-seeded gauntlet, one life
	ModePractice             // Any level on repeat, unlimited lives
)

// Session states.
const (
	StatePlaying    = "playing"
	StateLevelClear = "level_clear" // Short beat after reaching the goal
	StateDying      = "dying"      // Short beat after a black hole
	StateGameOver   = "gameover"
	StatePaused     = "paused"
)

// transitionTicks is the pause between a decisive outcome and the next
// level or respawn.
const transitionTicks = 45

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// practiceLevel stores the practice mode's level number set via CLI.
var practiceLevel = 1

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetPracticeLevel sets the level practice mode replays.
func SetPracticeLevel(level int) {
	if level > 0 {
		practiceLevel = level
	}
}

// Game runs one session of a mode.
type Game struct {
	mode Mode

	cfg    config.Config
	params physics.Params
	diff   *config.DifficultyManager

	runtime core.RuntimeConfig
	level   *levelgen.Level
	body    physics.Body

	levelNum int
	score    int
	lives    int
	deaths   int
	tick     uint64
	state    string
	delay    int

	pauseHeld bool
}

// New creates a session in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

func init() {
	registry.Register("campaign", func() registry.Game { return New(ModeCampaign) })
	registry.Register("daily", func() registry.Game { return New(ModeDaily) })
	registry.Register("practice", func() registry.Game { return New(ModePractice) })
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeDaily:
		return "daily"
	case ModePractice:
		return "practice"
	default:
		return "campaign"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeDaily:
		return "Well Hopper (Daily Challenge)"
	case ModePractice:
		return "Well Hopper (Practice)"
	default:
		return "Well Hopper"
	}
}

// Reset initializes or restarts the session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.params = cfg.Params()
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	g.score = 0
	g.deaths = 0
	g.tick = 0
	g.pauseHeld = false

	switch g.mode {
	case ModeDaily:
		g.levelNum = dailyLevelNumber(time.Now())
		if runtime.Seed != 0 {
			g.levelNum = int(runtime.Seed)
		}
		g.lives = 1
	case ModePractice:
		g.levelNum = practiceLevel
		if runtime.Seed != 0 {
			g.levelNum = int(runtime.Seed)
		}
		g.lives = 0 // Unlimited
	default:
		g.levelNum = 1
		if runtime.Seed != 0 {
			g.levelNum = int(runtime.Seed)
		}
		g.lives = cfg.Session.Lives
	}

	g.loadLevel(g.levelNum)
}

// dailyLevelNumber derives the shared level number for a UTC date.
// Everyone playing the daily on the same date gets the same layout.
func dailyLevelNumber(t time.Time) int {
	u := t.UTC()
	return u.Year()*10000 + int(u.Month())*100 + u.Day()
}

// loadLevel replaces the level and body wholesale. Nothing from the
// previous level survives the transition.
func (g *Game) loadLevel(number int) {
	g.level = levelgen.GenerateWithParams(number, g.params)
	g.body = physics.NewBody(&g.level.World, g.level.Start, g.params)
	g.state = StatePlaying
	g.delay = 0
}

// Step advances the session by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Edge-detect pause so key repeat doesn't flutter the state.
	if in.Has(core.ActionPause) {
		if !g.pauseHeld {
			g.togglePause()
		}
		g.pauseHeld = true
	} else {
		g.pauseHeld = false
	}

	switch g.state {
	case StatePaused, StateGameOver:
		return g.result()

	case StateLevelClear:
		g.delay--
		if g.delay <= 0 {
			g.levelNum++
			g.loadLevel(g.levelNum)
		}
		return g.result()

	case StateDying:
		g.delay--
		if g.delay <= 0 {
			// Same number, same seed: the rebuilt level is identical.
			g.loadLevel(g.levelNum)
		}
		return g.result()
	}

	pin := physics.Input{
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Launch: in.Has(core.ActionLaunch),
	}
	tun := g.diff.Tuning(g.cfg.Physics, g.levelNum)
	dt := 1.0 / float64(g.runtime.TickRate)

	switch physics.Step(&g.body, &g.level.World, pin, dt, tun, g.params) {
	case physics.ReachedGoal:
		g.score += g.cfg.Session.LevelBonus * g.levelNum
		g.state = StateLevelClear
		g.delay = transitionTicks

	case physics.Destroyed:
		g.deaths++
		if g.mode == ModePractice {
			g.state = StateDying
			g.delay = transitionTicks
			break
		}
		g.lives--
		if g.lives <= 0 {
			g.state = StateGameOver
		} else {
			g.state = StateDying
			g.delay = transitionTicks
		}

	case physics.Landed, physics.Continuing:
		// Nothing decisive; flight and running just continue.
	}

	return g.result()
}

func (g *Game) togglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}

// State returns the platform-visible session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelNum,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Level exposes the current level for the preview command and tests.
func (g *Game) Level() *levelgen.Level {
	return g.level
}

// Body exposes the current body state for tests.
func (g *Game) Body() *physics.Body {
	return &g.body
}

// SpeedRatio reports the player's running speed as a fraction of full,
// for the HUD meter.
func (g *Game) SpeedRatio() float64 {
	return g.body.SpeedRatio(g.params)
}

// statusLine formats the HUD summary.
func (g *Game) statusLine() string {
	return fmt.Sprintf("SCORE %06d  LEVEL %d (%s)", g.score, g.levelNum, g.level.Archetype)
}
