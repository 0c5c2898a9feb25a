package level

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// difficultyDispatch routes a call from Go into the functions a difficulty
// script defines. Missing functions fall back to the built-in ramp.
const difficultyDispatch = `
__result = __fallback
if __fn == "spike_up" && is_callable(spike_up) {
	__result = spike_up(__score, __rows, __row)
} else if __fn == "spike_down" && is_callable(spike_down) {
	__result = spike_down(__score, __rows, __row)
} else if __fn == "enemy" && is_callable(enemy) {
	__result = enemy(__score, __rows, __row, __slot)
} else if __fn == "enemy_row" && is_callable(enemy_row) {
	__result = enemy_row(__score, __row)
}
`

var difficultyFuncs = []string{"spike_up", "spike_down", "enemy", "enemy_row"}

// ScriptedDifficulty evaluates spawn chances with a tengo script. The script
// may define any of spike_up(score, rows, row), spike_down(score, rows, row),
// enemy(score, rows, row, slot) and enemy_row(score, row).
type ScriptedDifficulty struct {
	name     string
	compiled *tengo.Compiled
	fallback ScoreRamp
}

func NewScriptedDifficulty(name string, src []byte) (*ScriptedDifficulty, error) {
	prelude := ""
	for _, fn := range difficultyFuncs {
		prelude += fn + " := undefined\n"
	}
	script := tengo.NewScript([]byte(prelude + string(src) + "\n" + difficultyDispatch))
	if err := declareVars(script, []scriptVar{
		{"__fn", ""},
		{"__score", 0},
		{"__rows", 0},
		{"__row", 0},
		{"__slot", 0},
		{"__fallback", 0.0},
		{"__result", 0.0},
	}); err != nil {
		return nil, fmt.Errorf("difficulty script %q: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("difficulty script %q: compile: %w", name, err)
	}
	d := &ScriptedDifficulty{name: name, compiled: compiled}
	if _, err := d.call("spike_up", 1, 1, 0, 0, 0); err != nil {
		return nil, err
	}
	return d, nil
}

type scriptVar struct {
	name  string
	value any
}

func declareVars(script *tengo.Script, vars []scriptVar) error {
	for _, v := range vars {
		if err := script.Add(v.name, v.value); err != nil {
			return fmt.Errorf("add %s: %w", v.name, err)
		}
	}
	return nil
}

func (d *ScriptedDifficulty) call(fn string, score, rows, row, slot int, fallback any) (*tengo.Variable, error) {
	for name, v := range map[string]any{
		"__fn":       fn,
		"__score":    score,
		"__rows":     rows,
		"__row":      row,
		"__slot":     slot,
		"__fallback": fallback,
	} {
		if err := d.compiled.Set(name, v); err != nil {
			return nil, fmt.Errorf("difficulty script %q: set %s: %w", d.name, name, err)
		}
	}
	if err := d.compiled.Run(); err != nil {
		return nil, fmt.Errorf("difficulty script %q: %s: %w", d.name, fn, err)
	}
	return d.compiled.Get("__result"), nil
}

func (d *ScriptedDifficulty) percent(fn string, score, rows, row, slot int, fallback float64) float64 {
	v, err := d.call(fn, score, rows, row, slot, fallback)
	if err != nil {
		return fallback
	}
	return v.Float()
}

func (d *ScriptedDifficulty) SpikeUpChance(score, rows, row int) float64 {
	return d.percent("spike_up", score, rows, row, 0, d.fallback.SpikeUpChance(score, rows, row))
}

func (d *ScriptedDifficulty) SpikeDownChance(score, rows, row int) float64 {
	return d.percent("spike_down", score, rows, row, 0, d.fallback.SpikeDownChance(score, rows, row))
}

func (d *ScriptedDifficulty) EnemyChance(score, rows, row, slot int) float64 {
	return d.percent("enemy", score, rows, row, slot, d.fallback.EnemyChance(score, rows, row, slot))
}

func (d *ScriptedDifficulty) EnemyRowAllowed(score, row int) bool {
	fallback := d.fallback.EnemyRowAllowed(score, row)
	v, err := d.call("enemy_row", score, 0, row, 0, fallback)
	if err != nil {
		return fallback
	}
	return v.Bool()
}
